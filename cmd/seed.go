package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fundfolio/api"
	"fundfolio/internal/db/models/postgres/public/model"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

type seedUnitTrustRow struct {
	Name        string `csv:"name"`
	Symbol      string `csv:"symbol"`
	Description string `csv:"description"`
}

type seedPriceRow struct {
	Symbol string  `csv:"symbol"`
	Date   string  `csv:"date"`
	Price  float64 `csv:"price"`
}

type seedTransactionRow struct {
	Symbol       string  `csv:"symbol"`
	Type         string  `csv:"type"`
	Units        float64 `csv:"units"`
	PricePerUnit float64 `csv:"pricePerUnit"`
	Date         string  `csv:"date"`
}

// runSeed loads demo funds, their price history and a transaction log from
// CSV files. Funds are keyed by symbol so the files stay re-runnable against
// a database that already holds them.
func runSeed(handler *api.ApiHandler, dir string) error {
	fundIDs, err := seedUnitTrusts(handler, filepath.Join(dir, "unit_trusts.csv"))
	if err != nil {
		return err
	}
	if err := seedPrices(handler, filepath.Join(dir, "prices.csv"), fundIDs); err != nil {
		return err
	}
	if err := seedTransactions(handler, filepath.Join(dir, "transactions.csv"), fundIDs); err != nil {
		return err
	}
	return nil
}

func seedUnitTrusts(handler *api.ApiHandler, path string) (map[string]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []seedUnitTrustRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	fundIDs := map[string]int32{}
	for _, row := range rows {
		existing, err := handler.UnitTrustRepository.GetBySymbol(row.Symbol)
		if err == nil {
			fundIDs[row.Symbol] = existing.ID
			continue
		}

		ut := model.UnitTrust{
			Name:   row.Name,
			Symbol: row.Symbol,
		}
		if row.Description != "" {
			description := row.Description
			ut.Description = &description
		}
		created, err := handler.UnitTrustRepository.Add(ut)
		if err != nil {
			return nil, err
		}
		fundIDs[row.Symbol] = created.ID
	}

	zap.S().Infow("seeded unit trusts", "count", len(fundIDs))
	return fundIDs, nil
}

func seedPrices(handler *api.ApiHandler, path string, fundIDs map[string]int32) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []seedPriceRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	prices := []model.Price{}
	for _, row := range rows {
		fundID, ok := fundIDs[row.Symbol]
		if !ok {
			return fmt.Errorf("price row references unknown symbol %q", row.Symbol)
		}
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q in %s: %w", row.Date, path, err)
		}
		prices = append(prices, model.Price{
			UnitTrustID: fundID,
			Date:        date,
			Price:       row.Price,
		})
	}

	if err := handler.PriceRepository.AddMany(prices); err != nil {
		return err
	}

	zap.S().Infow("seeded prices", "count", len(prices))
	return nil
}

func seedTransactions(handler *api.ApiHandler, path string, fundIDs map[string]int32) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []seedTransactionRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, row := range rows {
		fundID, ok := fundIDs[row.Symbol]
		if !ok {
			return fmt.Errorf("transaction row references unknown symbol %q", row.Symbol)
		}
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q in %s: %w", row.Date, path, err)
		}
		_, err = handler.TransactionRepository.Add(model.Transaction{
			UnitTrustID:     fundID,
			TransactionType: row.Type,
			Units:           row.Units,
			PricePerUnit:    row.PricePerUnit,
			TransactionDate: date,
		})
		if err != nil {
			return err
		}
	}

	zap.S().Infow("seeded transactions", "count", len(rows))
	return nil
}
