package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dom "Bluecroft/internal/domain"
)

func TestCalculateRatios(t *testing.T) {
	m := Calculate(dom.LoanData{
		LoanAmount:    250000,
		PropertyValue: 400000,
		PurchasePrice: 300000,
		RefurbCost:    100000,
	})
	assert.InDelta(t, 62.5, m.LTV, 1e-9)
	assert.InDelta(t, 62.5, m.LTC, 1e-9)
}

func TestCalculateInterestAndGross(t *testing.T) {
	m := Calculate(dom.LoanData{
		LoanAmount:          450000,
		PropertyValue:       750000,
		InterestRateMonthly: 0.95,
		TermMonths:          9,
	})
	assert.InDelta(t, 4275, m.MonthlyInterest, 1e-9)
	assert.InDelta(t, 38475, m.TotalInterest, 1e-9)
	assert.InDelta(t, 488475, m.GrossLoan, 1e-9)
}

func TestCalculateZeroDenominators(t *testing.T) {
	m := Calculate(dom.LoanData{LoanAmount: 100000})
	assert.Zero(t, m.LTV)
	assert.Zero(t, m.LTC)

	m = Calculate(dom.LoanData{LoanAmount: 100000, PropertyValue: -1, PurchasePrice: -5})
	assert.Zero(t, m.LTV)
	assert.Zero(t, m.LTC)
}

func TestCalculateIsPure(t *testing.T) {
	in := dom.LoanData{LoanAmount: 123456, PropertyValue: 654321, InterestRateMonthly: 1.1, TermMonths: 12}
	a := Calculate(in)
	b := Calculate(in)
	assert.Equal(t, a, b)
}
