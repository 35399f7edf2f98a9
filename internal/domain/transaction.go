package domain

import (
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionType_Buy  TransactionType = "buy"
	TransactionType_Sell TransactionType = "sell"
)

func NewTransactionType(s string) (*TransactionType, error) {
	t := TransactionType(s)
	switch t {
	case TransactionType_Buy, TransactionType_Sell:
		return &t, nil
	}
	return nil, fmt.Errorf("invalid transaction type %q", s)
}

// Transaction is a single buy or sell of a unit trust. The engine treats
// these as immutable events; recomputation always re-reads the full log.
type Transaction struct {
	UnitTrustID  int32
	Type         TransactionType
	Units        float64
	PricePerUnit float64
	Date         time.Time
	Notes        *string
}

// Amount is the cash value of the transaction.
func (t Transaction) Amount() float64 {
	return t.Units * t.PricePerUnit
}

// SignedUnits converts the transaction to a unit delta: buys add units,
// sells remove them.
func (t Transaction) SignedUnits() float64 {
	if t.Type == TransactionType_Sell {
		return -t.Units
	}
	return t.Units
}
