package api

import (
	"errors"
	"fmt"
	"strconv"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/domain"
	"fundfolio/internal/repository"

	"github.com/gin-gonic/gin"
)

type createTransactionRequest struct {
	UnitTrustID     int32    `json:"unitTrustId"`
	TransactionType string   `json:"transactionType"`
	Units           float64  `json:"units"`
	PricePerUnit    *float64 `json:"pricePerUnit"`
	TransactionDate string   `json:"transactionDate"`
	Notes           *string  `json:"notes"`
}

func (m ApiHandler) createTransaction(c *gin.Context) {
	var requestBody createTransactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	txnType, err := domain.NewTransactionType(requestBody.TransactionType)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Units <= 0 {
		returnErrorJsonCode(fmt.Errorf("units must be positive"), c, 400)
		return
	}
	date, err := parseDate(requestBody.TransactionDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if _, err := m.UnitTrustRepository.Get(requestBody.UnitTrustID); err != nil {
		returnErrorJson(err, c)
		return
	}

	// price defaults to the recorded closing price for that date
	var pricePerUnit float64
	if requestBody.PricePerUnit != nil {
		pricePerUnit = *requestBody.PricePerUnit
	} else {
		price, err := m.PriceRepository.GetByFundAndDate(requestBody.UnitTrustID, date)
		if errors.Is(err, repository.ErrNotFound) {
			returnErrorJsonCode(fmt.Errorf("no price recorded for the transaction date, pass pricePerUnit explicitly"), c, 400)
			return
		}
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		pricePerUnit = price.Price
	}
	if pricePerUnit <= 0 {
		returnErrorJsonCode(fmt.Errorf("pricePerUnit must be positive"), c, 400)
		return
	}

	if *txnType == domain.TransactionType_Sell {
		held, err := m.heldUnits(requestBody.UnitTrustID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		if requestBody.Units > held {
			returnErrorJsonCode(fmt.Errorf("cannot sell %.4f units, only %.4f held", requestBody.Units, held), c, 400)
			return
		}
	}

	out, err := m.TransactionRepository.Add(model.Transaction{
		UnitTrustID:     requestBody.UnitTrustID,
		TransactionType: string(*txnType),
		Units:           requestBody.Units,
		PricePerUnit:    pricePerUnit,
		TransactionDate: date,
		Notes:           requestBody.Notes,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(201, out)
}

// heldUnits sums the signed unit deltas for one fund over the whole log.
func (m ApiHandler) heldUnits(unitTrustID int32) (float64, error) {
	txns, err := m.TransactionRepository.ListChronological()
	if err != nil {
		return 0, err
	}
	held := 0.0
	for _, t := range txns {
		if t.UnitTrustID == unitTrustID {
			held += t.SignedUnits()
		}
	}
	return held, nil
}

func (m ApiHandler) listTransactions(c *gin.Context) {
	var unitTrustID *int32
	if raw := c.Query("unitTrustId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid unitTrustId %q", raw), c, 400)
			return
		}
		id32 := int32(id)
		unitTrustID = &id32
	}

	out, err := m.TransactionRepository.List(unitTrustID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

type updateTransactionRequest struct {
	Units           *float64 `json:"units"`
	PricePerUnit    *float64 `json:"pricePerUnit"`
	TransactionDate *string  `json:"transactionDate"`
	Notes           *string  `json:"notes"`
}

func (m ApiHandler) updateTransaction(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody updateTransactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	existing, err := m.TransactionRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if requestBody.Units != nil {
		if *requestBody.Units <= 0 {
			returnErrorJsonCode(fmt.Errorf("units must be positive"), c, 400)
			return
		}
		existing.Units = *requestBody.Units
	}
	if requestBody.PricePerUnit != nil {
		if *requestBody.PricePerUnit <= 0 {
			returnErrorJsonCode(fmt.Errorf("pricePerUnit must be positive"), c, 400)
			return
		}
		existing.PricePerUnit = *requestBody.PricePerUnit
	}
	if requestBody.TransactionDate != nil {
		date, err := parseDate(*requestBody.TransactionDate)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		existing.TransactionDate = date
	}
	if requestBody.Notes != nil {
		existing.Notes = requestBody.Notes
	}

	out, err := m.TransactionRepository.Update(*existing)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) deleteTransaction(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.TransactionRepository.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}
