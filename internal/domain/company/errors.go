package company

import "errors"

var ErrAccountNotFound = errors.New("company account not found")
