package calculator

import (
	"fmt"
	"math"
	"time"

	"fundfolio/internal/util"
)

const (
	xirrMaxIterations = 100
	xirrTolerance     = 1e-9
)

// XIRR solves for the annualized rate r such that the net present value of
// the dated cash flows is zero:
//
//	sum(amount_i / (1+r)^(t_i/365)) == 0
//
// where t_i is the day offset of flow i from the earliest flow. Newton's
// method from a 10% guess converges for well-behaved flows; when it walks
// out of the domain or stalls, a bracketing bisection takes over. An error
// means no root was found, which callers should treat as "undefined", not
// as a failure to escalate.
func XIRR(dates []time.Time, amounts []float64) (float64, error) {
	if len(dates) != len(amounts) {
		return 0, fmt.Errorf("xirr: %d dates for %d amounts", len(dates), len(amounts))
	}
	if len(dates) < 2 {
		return 0, fmt.Errorf("xirr: need at least 2 cash flows, got %d", len(dates))
	}

	earliest := dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
	}
	years := make([]float64, len(dates))
	for i, d := range dates {
		years[i] = float64(util.DaysBetween(earliest, d)) / 365.0
	}

	npv := func(rate float64) float64 {
		total := 0.0
		for i, a := range amounts {
			total += a / math.Pow(1+rate, years[i])
		}
		return total
	}
	derivative := func(rate float64) float64 {
		total := 0.0
		for i, a := range amounts {
			if years[i] == 0 {
				continue
			}
			total -= a * years[i] / math.Pow(1+rate, years[i]+1)
		}
		return total
	}

	rate := 0.1
	for i := 0; i < xirrMaxIterations; i++ {
		value := npv(rate)
		if math.Abs(value) < xirrTolerance {
			return rate, nil
		}
		slope := derivative(rate)
		if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
			break
		}
		next := rate - value/slope
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		if math.Abs(next-rate) < xirrTolerance {
			return next, nil
		}
		rate = next
	}

	return bisectXIRR(npv)
}

func bisectXIRR(npv func(float64) float64) (float64, error) {
	lo, hi := -0.999999, 10.0
	fLo := npv(lo)
	fHi := npv(hi)
	for fLo*fHi > 0 && hi < 1e6 {
		hi *= 2
		fHi = npv(hi)
	}
	if fLo*fHi > 0 {
		return 0, fmt.Errorf("xirr: no sign change in bracket, rate undefined")
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fMid := npv(mid)
		if math.Abs(fMid) < xirrTolerance || (hi-lo)/2 < xirrTolerance {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}

	return 0, fmt.Errorf("xirr: failed to converge")
}
