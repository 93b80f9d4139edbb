package finance

import (
	"errors"
	"math"
)

var (
	// ErrZeroInterest indicates an interest rate of zero.
	ErrZeroInterest = errors.New("finance: interest rate is zero")
	// ErrPaymentPeriods indicates a non-positive number of interest
	// payments per period.
	ErrPaymentPeriods = errors.New("finance: interest payments per period must be positive")
)

// FutureValue computes the future value of a starting capital that
// receives compound interest annually: fv = pv(1 + i/100)^years. The
// interest is a percentage; supply 5.0 for 5%.
func FutureValue(presentValue, interest float64, years int) (float64, error) {
	if interest == 0 {
		return 0, ErrZeroInterest
	}
	return FutureValuePeriodic(presentValue, interest, 1, float64(years))
}

// FutureValuePeriodic computes the future value of a starting capital
// that receives compound interest paymentsPerPeriod times per period:
// fv = pv(1 + i/100/n)^(periods*n). For example, 1000 at 7% per year
// paid quarterly grows to roughly 1109.70 in a year and a half:
//
//	finance.FutureValuePeriodic(1000, 7, 4, 1.5)
func FutureValuePeriodic(presentValue, interest float64, paymentsPerPeriod int, periods float64) (float64, error) {
	if interest == 0 {
		return 0, ErrZeroInterest
	}
	if paymentsPerPeriod < 1 {
		return 0, ErrPaymentPeriods
	}
	rate := 1 + interest/100/float64(paymentsPerPeriod)
	return presentValue * math.Pow(rate, float64(paymentsPerPeriod)*periods), nil
}

// PresentValue computes the capital that grows to the supplied future
// value when it receives compound interest annually:
// pv = fv / (1 + i/100)^years.
func PresentValue(futureValue, interest float64, years int) (float64, error) {
	if interest == 0 {
		return 0, ErrZeroInterest
	}
	return PresentValuePeriodic(futureValue, interest, 1, float64(years))
}

// PresentValuePeriodic computes the capital that grows to the supplied
// future value when it receives compound interest paymentsPerPeriod
// times per period: pv = fv / (1 + i/100/n)^(periods*n).
func PresentValuePeriodic(futureValue, interest float64, paymentsPerPeriod int, periods float64) (float64, error) {
	if interest == 0 {
		return 0, ErrZeroInterest
	}
	if paymentsPerPeriod < 1 {
		return 0, ErrPaymentPeriods
	}
	rate := 1 + interest/100/float64(paymentsPerPeriod)
	return futureValue / math.Pow(rate, periods*float64(paymentsPerPeriod)), nil
}
