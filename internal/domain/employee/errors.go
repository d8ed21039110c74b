package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoPrimaryWallet  = errors.New("employee has no primary wallet")
)
