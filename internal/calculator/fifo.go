package calculator

import (
	"sort"

	"fundfolio/internal/domain"

	"github.com/shopspring/decimal"
)

// Lot is a batch of units acquired at a single purchase price. Lots for one
// fund form a queue ordered by acquisition date.
type Lot struct {
	Units    decimal.Decimal
	UnitCost decimal.Decimal
}

// FIFOCostBasis replays the transaction log and values the units still held
// at the price of the oldest unsold lots. Buys push a lot onto the fund's
// queue; sells drain from the front. A sell larger than the units available
// drains the queue and drops the excess - the upstream CRUD layer is
// responsible for rejecting oversells, so here it is treated as a data
// quirk, not a fatal error. Same for a sell with no prior buys: no lots to
// consume, no-op.
//
// Returns the total cost basis and a per-fund breakdown. A fund whose lots
// were fully sold stays in the map with a zero cost basis.
func FIFOCostBasis(txns []domain.Transaction) (decimal.Decimal, map[int32]decimal.Decimal) {
	ordered := make([]domain.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	lots := map[int32][]Lot{}

	for _, t := range ordered {
		units := decimal.NewFromFloat(t.Units)
		switch t.Type {
		case domain.TransactionType_Buy:
			lots[t.UnitTrustID] = append(lots[t.UnitTrustID], Lot{
				Units:    units,
				UnitCost: decimal.NewFromFloat(t.PricePerUnit),
			})
		case domain.TransactionType_Sell:
			remaining := units
			queue := lots[t.UnitTrustID]
			for remaining.IsPositive() && len(queue) > 0 {
				oldest := queue[0]
				if oldest.Units.LessThanOrEqual(remaining) {
					remaining = remaining.Sub(oldest.Units)
					queue = queue[1:]
				} else {
					queue[0].Units = oldest.Units.Sub(remaining)
					remaining = decimal.Zero
				}
			}
			lots[t.UnitTrustID] = queue
		}
	}

	total := decimal.Zero
	perFund := map[int32]decimal.Decimal{}
	for fundID, queue := range lots {
		fundCost := decimal.Zero
		for _, lot := range queue {
			fundCost = fundCost.Add(lot.Units.Mul(lot.UnitCost))
		}
		perFund[fundID] = fundCost
		total = total.Add(fundCost)
	}

	return total, perFund
}
