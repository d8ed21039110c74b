package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveComponentAmount_FixedIgnoresBasisAndAttendance(t *testing.T) {
	t.Parallel()

	nominal := decimal.NewFromInt(300000)

	a := ResolveComponentAmount(KindFixed, nominal, decimal.NewFromInt(5000000), 20)
	b := ResolveComponentAmount(KindFixed, nominal, decimal.NewFromInt(99), 0)

	assert.True(t, nominal.Equal(a))
	assert.True(t, nominal.Equal(b))
}

func TestResolveComponentAmount_PercentageOfBaseSalary(t *testing.T) {
	t.Parallel()

	// 2.5% of 4,000,000 regardless of attendance.
	a := ResolveComponentAmount(KindPercentage, decimal.NewFromFloat(2.5), decimal.NewFromInt(4000000), 20)
	b := ResolveComponentAmount(KindPercentage, decimal.NewFromFloat(2.5), decimal.NewFromInt(4000000), 3)

	assert.True(t, decimal.NewFromInt(100000).Equal(a))
	assert.True(t, a.Equal(b))
}

func TestResolveComponentAmount_PerAttendanceDayScalesWithDays(t *testing.T) {
	t.Parallel()

	nominal := decimal.NewFromInt(25000)

	a := ResolveComponentAmount(KindPerAttendanceDay, nominal, decimal.NewFromInt(5000000), 12)
	zero := ResolveComponentAmount(KindPerAttendanceDay, nominal, decimal.NewFromInt(5000000), 0)

	assert.True(t, decimal.NewFromInt(300000).Equal(a))
	assert.True(t, zero.IsZero())
}

func TestResolveComponentAmount_UnknownKindResolvesToZero(t *testing.T) {
	t.Parallel()

	got := ResolveComponentAmount(ComponentKind("bogus"), decimal.NewFromInt(100000), decimal.NewFromInt(5000000), 20)

	assert.True(t, got.IsZero())
}
