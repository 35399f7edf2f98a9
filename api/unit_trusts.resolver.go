package api

import (
	"fmt"
	"strings"

	"fundfolio/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

type createUnitTrustRequest struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description *string `json:"description"`
}

func (m ApiHandler) createUnitTrust(c *gin.Context) {
	var requestBody createUnitTrustRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if strings.TrimSpace(requestBody.Name) == "" {
		returnErrorJsonCode(fmt.Errorf("name is required"), c, 400)
		return
	}
	if strings.TrimSpace(requestBody.Symbol) == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	out, err := m.UnitTrustRepository.Add(model.UnitTrust{
		Name:        requestBody.Name,
		Symbol:      strings.ToUpper(requestBody.Symbol),
		Description: requestBody.Description,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, out)
}

func (m ApiHandler) listUnitTrusts(c *gin.Context) {
	out, err := m.UnitTrustRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) getUnitTrust(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.UnitTrustRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

type updateUnitTrustRequest struct {
	Name        *string `json:"name"`
	Symbol      *string `json:"symbol"`
	Description *string `json:"description"`
}

func (m ApiHandler) updateUnitTrust(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody updateUnitTrustRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	existing, err := m.UnitTrustRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if requestBody.Name != nil {
		existing.Name = *requestBody.Name
	}
	if requestBody.Symbol != nil {
		existing.Symbol = strings.ToUpper(*requestBody.Symbol)
	}
	if requestBody.Description != nil {
		existing.Description = requestBody.Description
	}

	out, err := m.UnitTrustRepository.Update(*existing)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) deleteUnitTrust(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.UnitTrustRepository.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"message": "ok"})
}
