package api

import (
	"fmt"
	"strconv"
	"time"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type createPriceRequest struct {
	UnitTrustID int32   `json:"unitTrustId"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}

func (m ApiHandler) createPrice(c *gin.Context) {
	var requestBody createPriceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	date, err := parseDate(requestBody.Date)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Price <= 0 {
		returnErrorJsonCode(fmt.Errorf("price must be positive"), c, 400)
		return
	}
	// confirm the fund exists so a stray id fails with 404 instead of an fk error
	if _, err := m.UnitTrustRepository.Get(requestBody.UnitTrustID); err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.PriceRepository.Add(model.Price{
		UnitTrustID: requestBody.UnitTrustID,
		Date:        date,
		Price:       requestBody.Price,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(201, out)
}

func (m ApiHandler) listPrices(c *gin.Context) {
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

	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		end = &t
	}

	out, err := m.PriceRepository.List(unitTrustID, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

type updatePriceRequest struct {
	Date  *string  `json:"date"`
	Price *float64 `json:"price"`
}

func (m ApiHandler) updatePrice(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody updatePriceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	existing, err := m.PriceRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if requestBody.Date != nil {
		date, err := parseDate(*requestBody.Date)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		existing.Date = date
	}
	if requestBody.Price != nil {
		if *requestBody.Price <= 0 {
			returnErrorJsonCode(fmt.Errorf("price must be positive"), c, 400)
			return
		}
		existing.Price = *requestBody.Price
	}

	out, err := m.PriceRepository.Update(*existing)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) deletePrice(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.PriceRepository.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}

type fetchPricesRequest struct {
	UnitTrustID int32   `json:"unitTrustId"`
	Provider    string  `json:"provider"`
	Symbol      *string `json:"symbol"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
}

func (m ApiHandler) fetchPrices(c *gin.Context) {
	var requestBody fetchPricesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	start, err := parseDate(requestBody.Start)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := parseDate(requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if end.Before(start) {
		returnErrorJsonCode(fmt.Errorf("end date precedes start date"), c, 400)
		return
	}

	out, err := m.PriceFetchService.FetchPrices(c.Request.Context(), service.FetchPricesInput{
		UnitTrustID: requestBody.UnitTrustID,
		Provider:    requestBody.Provider,
		Symbol:      requestBody.Symbol,
		Start:       start,
		End:         end,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
