package api

import (
	"fmt"
	"strings"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/domain"
	"fundfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type fixedDepositRequest struct {
	PrincipalAmount         float64 `json:"principalAmount"`
	InterestRate            float64 `json:"interestRate"`
	StartDate               string  `json:"startDate"`
	MaturityDate            string  `json:"maturityDate"`
	InstitutionName         string  `json:"institutionName"`
	AccountNumber           string  `json:"accountNumber"`
	InterestPayoutFrequency string  `json:"interestPayoutFrequency"`
	InterestCalculationType string  `json:"interestCalculationType"`
	AutoRenewal             bool    `json:"autoRenewal"`
	Notes                   *string `json:"notes"`
}

func (r fixedDepositRequest) toModel() (*model.FixedDeposit, error) {
	if r.PrincipalAmount <= 0 {
		return nil, fmt.Errorf("principalAmount must be positive")
	}
	if r.InterestRate < 0 || r.InterestRate > 100 {
		return nil, fmt.Errorf("interestRate must be between 0 and 100")
	}
	if strings.TrimSpace(r.InstitutionName) == "" {
		return nil, fmt.Errorf("institutionName is required")
	}

	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	maturityDate, err := parseDate(r.MaturityDate)
	if err != nil {
		return nil, err
	}
	if !maturityDate.After(startDate) {
		return nil, fmt.Errorf("maturity date must be after start date")
	}

	if _, err := domain.NewPayoutFrequency(r.InterestPayoutFrequency); err != nil {
		return nil, err
	}
	if _, err := domain.NewInterestType(r.InterestCalculationType); err != nil {
		return nil, err
	}

	return &model.FixedDeposit{
		PrincipalAmount:         r.PrincipalAmount,
		InterestRate:            r.InterestRate,
		StartDate:               startDate,
		MaturityDate:            maturityDate,
		InstitutionName:         r.InstitutionName,
		AccountNumber:           r.AccountNumber,
		InterestPayoutFrequency: r.InterestPayoutFrequency,
		InterestCalculationType: r.InterestCalculationType,
		AutoRenewal:             r.AutoRenewal,
		Notes:                   r.Notes,
	}, nil
}

func (m ApiHandler) createFixedDeposit(c *gin.Context) {
	var requestBody fixedDepositRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	fd, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.FixedDepositService.Create(c.Request.Context(), *fd)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(201, out)
}

func (m ApiHandler) listFixedDeposits(c *gin.Context) {
	out, err := m.FixedDepositService.List(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) getFixedDeposit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.FixedDepositService.Get(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) updateFixedDeposit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody fixedDepositRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	fd, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	fd.ID = id

	out, err := m.FixedDepositService.Update(c.Request.Context(), *fd)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) deleteFixedDeposit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.FixedDepositService.Delete(c.Request.Context(), id); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}

type calculateInterestRequest struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annualRate"`
	StartDate       string  `json:"startDate"`
	MaturityDate    string  `json:"maturityDate"`
	CalculationType string  `json:"calculationType"`
	PayoutFrequency string  `json:"payoutFrequency"`
}

// calculateInterest previews deposit math without persisting anything.
func (m ApiHandler) calculateInterest(c *gin.Context) {
	var requestBody calculateInterestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.Principal <= 0 {
		returnErrorJsonCode(fmt.Errorf("principal must be positive"), c, 400)
		return
	}
	if requestBody.AnnualRate < 0 || requestBody.AnnualRate > 100 {
		returnErrorJsonCode(fmt.Errorf("annualRate must be between 0 and 100"), c, 400)
		return
	}

	startDate, err := parseDate(requestBody.StartDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	maturityDate, err := parseDate(requestBody.MaturityDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	interestType, err := domain.NewInterestType(requestBody.CalculationType)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	frequency, err := domain.NewPayoutFrequency(requestBody.PayoutFrequency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.FixedDepositService.PreviewInterest(c.Request.Context(), service.InterestPreviewInput{
		Principal:       requestBody.Principal,
		AnnualRate:      requestBody.AnnualRate,
		StartDate:       startDate,
		MaturityDate:    maturityDate,
		InterestType:    *interestType,
		PayoutFrequency: *frequency,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	c.JSON(200, out)
}
