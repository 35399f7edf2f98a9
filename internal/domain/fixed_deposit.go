package domain

import (
	"fmt"
	"time"
)

type PayoutFrequency string

const (
	PayoutFrequency_Monthly    PayoutFrequency = "monthly"
	PayoutFrequency_Quarterly  PayoutFrequency = "quarterly"
	PayoutFrequency_Annually   PayoutFrequency = "annually"
	PayoutFrequency_AtMaturity PayoutFrequency = "at_maturity"
)

// PeriodsPerYear maps the payout frequency to compounding periods. At-maturity
// deposits compound once a year.
func (f PayoutFrequency) PeriodsPerYear() int {
	switch f {
	case PayoutFrequency_Monthly:
		return 12
	case PayoutFrequency_Quarterly:
		return 4
	default:
		return 1
	}
}

func NewPayoutFrequency(s string) (*PayoutFrequency, error) {
	f := PayoutFrequency(s)
	switch f {
	case PayoutFrequency_Monthly, PayoutFrequency_Quarterly,
		PayoutFrequency_Annually, PayoutFrequency_AtMaturity:
		return &f, nil
	}
	return nil, fmt.Errorf("invalid payout frequency %q", s)
}

type InterestType string

const (
	InterestType_Simple   InterestType = "simple"
	InterestType_Compound InterestType = "compound"
)

func NewInterestType(s string) (*InterestType, error) {
	t := InterestType(s)
	switch t {
	case InterestType_Simple, InterestType_Compound:
		return &t, nil
	}
	return nil, fmt.Errorf("invalid interest calculation type %q", s)
}

// FixedDeposit is a term deposit held at a bank, accruing simple or
// compound interest until maturity.
type FixedDeposit struct {
	ID              int32
	Principal       float64
	AnnualRate      float64 // percentage, e.g. 8.5 for 8.5%
	StartDate       time.Time
	MaturityDate    time.Time
	InstitutionName string
	AccountNumber   string
	PayoutFrequency PayoutFrequency
	InterestType    InterestType
	AutoRenewal     bool
	Notes           *string
}
