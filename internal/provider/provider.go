// Package provider contains the external price-feed adapters. Providers are
// looked up through an explicit Registry built once at wiring time and
// passed to whoever needs it - there is no global registry.
package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"fundfolio/internal/domain"
)

type Name string

const (
	Name_Yahoo  Name = "yahoo"
	Name_CAL    Name = "cal"
	Name_Alpaca Name = "alpaca"
)

type Provider interface {
	FetchPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.FetchedPrice, error)
}

// ProviderError tags a fetch failure with the provider and symbol involved,
// so callers can report which upstream feed misbehaved.
type ProviderError struct {
	Provider Name
	Symbol   string
	Message  string
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("[%s] failed to fetch %s: %s", e.Provider, e.Symbol, e.Message)
}

type Registry map[Name]Provider

func (r Registry) Get(name string) (Provider, bool) {
	p, ok := r[Name(strings.ToLower(name))]
	return p, ok
}

func (r Registry) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
