package domain

import "time"

// FundPrice is one historical price point for a unit trust. There is at most
// one price per (fund, date).
type FundPrice struct {
	UnitTrustID int32
	Date        time.Time
	Price       float64
}

// FetchedPrice is a price pulled from an external provider, not yet tied to
// a unit trust row.
type FetchedPrice struct {
	Date  time.Time
	Price float64
}
