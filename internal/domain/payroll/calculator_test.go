package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func basis(baseSalary, positionAllowance int64) CalculationBasis {
	return CalculationBasis{
		BaseSalary:        decimal.NewFromInt(baseSalary),
		PositionAllowance: decimal.NewFromInt(positionAllowance),
	}
}

func TestCalculate_FullAttendanceNoOvertime(t *testing.T) {
	t.Parallel()

	b := Calculate(basis(5000000, 500000), RunInput{AttendedDays: 20}, nil, nil)

	assert.True(t, decimal.NewFromInt(5000000).Equal(b.ProratedBasePay))
	assert.True(t, decimal.NewFromInt(500000).Equal(b.PositionAllowance))
	assert.True(t, b.TotalOvertimePay.IsZero())
	assert.True(t, decimal.NewFromInt(5500000).Equal(b.GrossPay))
	assert.True(t, decimal.NewFromInt(5500000).Equal(b.NetPay))
	assert.True(t, b.Shortfall.IsZero())
}

func TestCalculate_ProratesBaseByAttendance(t *testing.T) {
	t.Parallel()

	// 10 of 20 days: half the base, full position allowance.
	b := Calculate(basis(5000000, 500000), RunInput{AttendedDays: 10}, nil, nil)

	assert.True(t, decimal.NewFromInt(2500000).Equal(b.ProratedBasePay))
	assert.True(t, decimal.NewFromInt(3000000).Equal(b.GrossPay))
}

func TestCalculate_AttendanceAboveStandardIsCapped(t *testing.T) {
	t.Parallel()

	capped := Calculate(basis(5000000, 0), RunInput{AttendedDays: 25}, nil, nil)
	full := Calculate(basis(5000000, 0), RunInput{AttendedDays: 20}, nil, nil)

	assert.True(t, full.ProratedBasePay.Equal(capped.ProratedBasePay))
	assert.True(t, full.NetPay.Equal(capped.NetPay))
}

func TestCalculate_ZeroAttendanceZeroBasePay(t *testing.T) {
	t.Parallel()

	b := Calculate(basis(5000000, 500000), RunInput{AttendedDays: 0}, nil, nil)

	assert.True(t, b.ProratedBasePay.IsZero())
	// Position allowance is not prorated.
	assert.True(t, decimal.NewFromInt(500000).Equal(b.GrossPay))
}

func TestCalculate_OvertimeUsesHourlyDivisorAndRates(t *testing.T) {
	t.Parallel()

	in := RunInput{
		AttendedDays:         20,
		WeekdayOvertimeHours: decimal.NewFromInt(10),
		WeekendOvertimeHours: decimal.NewFromInt(4),
	}
	b := Calculate(basis(5190000, 0), in, nil, nil)

	// Hourly rate: 5,190,000 / 173 = 30,000.
	assert.True(t, decimal.NewFromInt(450000).Equal(b.WeekdayOvertimePay), "10h x 1.5 x 30,000")
	assert.True(t, decimal.NewFromInt(240000).Equal(b.WeekendOvertimePay), "4h x 2.0 x 30,000")
	assert.True(t, decimal.NewFromInt(690000).Equal(b.TotalOvertimePay))
}

func TestCalculate_OvertimeBasisIncludesPositionAllowance(t *testing.T) {
	t.Parallel()

	in := RunInput{AttendedDays: 20, WeekdayOvertimeHours: decimal.NewFromInt(1)}

	withAllowance := Calculate(basis(5000000, 190000), in, nil, nil)
	withoutAllowance := Calculate(basis(5000000, 0), in, nil, nil)

	assert.True(t, withAllowance.WeekdayOvertimePay.GreaterThan(withoutAllowance.WeekdayOvertimePay))
	// (5,190,000 / 173) * 1.5 = 45,000.
	assert.True(t, decimal.NewFromInt(45000).Equal(withAllowance.WeekdayOvertimePay))
}

func TestCalculate_ComponentsFlowIntoTotals(t *testing.T) {
	t.Parallel()

	allowances := []AssignedComponent{
		{TypeID: "alw-1", Name: "Uang Makan", Kind: KindPerAttendanceDay, DefaultNominal: decimal.NewFromInt(25000)},
		{TypeID: "alw-2", Name: "Tunjangan Transport", Kind: KindFixed, DefaultNominal: decimal.NewFromInt(300000)},
	}
	deductions := []AssignedComponent{
		{TypeID: "ded-1", Name: "BPJS", Kind: KindPercentage, DefaultNominal: decimal.NewFromInt(2)},
	}

	b := Calculate(basis(5000000, 0), RunInput{AttendedDays: 20}, allowances, deductions)

	// 20 x 25,000 + 300,000.
	assert.True(t, decimal.NewFromInt(800000).Equal(b.TotalAllowances))
	// 2% of 5,000,000.
	assert.True(t, decimal.NewFromInt(100000).Equal(b.TotalDeductions))
	assert.True(t, decimal.NewFromInt(5800000).Equal(b.GrossPay))
	assert.True(t, decimal.NewFromInt(5700000).Equal(b.NetPay))
	assert.Len(t, b.Allowances, 2)
	assert.Len(t, b.Deductions, 1)
}

func TestCalculate_NetPayClampsAtZeroWithShortfall(t *testing.T) {
	t.Parallel()

	deductions := []AssignedComponent{
		{TypeID: "ded-1", Name: "Potongan", Kind: KindFixed, DefaultNominal: decimal.NewFromInt(150000)},
	}

	// 100,000 gross against a 150,000 deduction.
	b := Calculate(basis(2000000, 0), RunInput{AttendedDays: 1}, nil, deductions)

	assert.True(t, decimal.NewFromInt(100000).Equal(b.GrossPay))
	assert.True(t, b.NetPay.IsZero())
	assert.True(t, decimal.NewFromInt(50000).Equal(b.Shortfall))
}

func TestCalculate_LineItemsFreezeResolvedAmounts(t *testing.T) {
	t.Parallel()

	allowances := []AssignedComponent{
		{TypeID: "alw-1", Name: "Uang Makan", Kind: KindPerAttendanceDay, DefaultNominal: decimal.NewFromInt(25000)},
	}

	b := Calculate(basis(5000000, 0), RunInput{AttendedDays: 12}, allowances, nil)

	assert.Equal(t, "alw-1", b.Allowances[0].TypeID)
	assert.Equal(t, "Uang Makan", b.Allowances[0].Name)
	assert.True(t, decimal.NewFromInt(300000).Equal(b.Allowances[0].Amount))
}
