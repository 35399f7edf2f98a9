package calculator

import (
	"math"
	"time"

	"fundfolio/internal/domain"

	"github.com/shopspring/decimal"
)

// SimpleInterest accrues principal * rate * time, with the rate given as a
// percentage and time measured in 365-day years. Returns 0 for non-positive
// principal or negative inputs. Amounts are rounded to cents.
func SimpleInterest(principal, annualRate float64, days int) float64 {
	if principal <= 0 || annualRate < 0 || days < 0 {
		return 0
	}
	interest := principal * (annualRate / 100) * (float64(days) / 365)
	return roundCents(interest)
}

// CompoundInterest accrues P(1 + r/n)^(nt) - P, where n is the number of
// compounding periods implied by the payout frequency.
func CompoundInterest(principal, annualRate float64, days int, frequency domain.PayoutFrequency) float64 {
	if principal <= 0 || annualRate < 0 || days < 0 {
		return 0
	}
	n := float64(frequency.PeriodsPerYear())
	rate := annualRate / 100
	years := float64(days) / 365
	amount := principal * math.Pow(1+rate/n, n*years)
	return roundCents(amount - principal)
}

// DepositValue returns the fixed deposit's value as of a date: principal
// plus interest accrued so far, the accrued interest alone, and days until
// maturity (negative once matured). Accrual is capped at the maturity date;
// before the start date the deposit is worth its principal.
func DepositValue(fd domain.FixedDeposit, asOf time.Time) (currentValue, accruedInterest float64, daysToMaturity int) {
	daysToMaturity = int(fd.MaturityDate.Sub(asOf).Hours() / 24)

	effective := asOf
	if fd.MaturityDate.Before(effective) {
		effective = fd.MaturityDate
	}
	daysElapsed := int(effective.Sub(fd.StartDate).Hours() / 24)
	if daysElapsed < 0 {
		return fd.Principal, 0, daysToMaturity
	}

	if fd.InterestType == domain.InterestType_Simple {
		accruedInterest = SimpleInterest(fd.Principal, fd.AnnualRate, daysElapsed)
	} else {
		accruedInterest = CompoundInterest(fd.Principal, fd.AnnualRate, daysElapsed, fd.PayoutFrequency)
	}

	return roundCents(fd.Principal + accruedInterest), accruedInterest, daysToMaturity
}

func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
