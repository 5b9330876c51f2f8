package metrics

import (
	"github.com/shopspring/decimal"

	dom "Bluecroft/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Calculate derives the loan metrics from raw inputs. Pure and total:
// ratio metrics are 0 when their denominator is not positive.
// Monetary math runs in decimals so figures like 0.95%/month come out exact.
func Calculate(d dom.LoanData) dom.CalculatedMetrics {
	loan := decimal.NewFromFloat(d.LoanAmount)
	propertyValue := decimal.NewFromFloat(d.PropertyValue)
	totalCost := decimal.NewFromFloat(d.PurchasePrice).Add(decimal.NewFromFloat(d.RefurbCost))
	rate := decimal.NewFromFloat(d.InterestRateMonthly).Div(hundred)
	term := decimal.NewFromInt(int64(d.TermMonths))

	var ltv, ltc decimal.Decimal
	if propertyValue.IsPositive() {
		ltv = loan.Div(propertyValue).Mul(hundred)
	}
	if totalCost.IsPositive() {
		ltc = loan.Div(totalCost).Mul(hundred)
	}

	monthlyInterest := loan.Mul(rate)
	totalInterest := monthlyInterest.Mul(term)
	grossLoan := loan.Add(totalInterest)

	return dom.CalculatedMetrics{
		LTV:             ltv.InexactFloat64(),
		LTC:             ltc.InexactFloat64(),
		MonthlyInterest: monthlyInterest.InexactFloat64(),
		TotalInterest:   totalInterest.InexactFloat64(),
		GrossLoan:       grossLoan.InexactFloat64(),
	}
}
