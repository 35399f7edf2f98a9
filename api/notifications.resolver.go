package api

import (
	"fmt"

	"fundfolio/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getNotificationSettings(c *gin.Context) {
	out, err := m.NotificationService.GetSettings(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

type updateNotificationSettingsRequest struct {
	NotifyDaysBefore30        bool    `json:"notifyDaysBefore30"`
	NotifyDaysBefore7         bool    `json:"notifyDaysBefore7"`
	NotifyOnMaturity          bool    `json:"notifyOnMaturity"`
	EmailNotificationsEnabled bool    `json:"emailNotificationsEnabled"`
	EmailAddress              *string `json:"emailAddress"`
}

func (m ApiHandler) updateNotificationSettings(c *gin.Context) {
	var requestBody updateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if requestBody.EmailNotificationsEnabled && requestBody.EmailAddress == nil {
		returnErrorJsonCode(fmt.Errorf("emailAddress is required when email notifications are enabled"), c, 400)
		return
	}

	out, err := m.NotificationService.UpdateSettings(c.Request.Context(), model.NotificationSetting{
		NotifyDaysBefore30:        requestBody.NotifyDaysBefore30,
		NotifyDaysBefore7:         requestBody.NotifyDaysBefore7,
		NotifyOnMaturity:          requestBody.NotifyOnMaturity,
		EmailNotificationsEnabled: requestBody.EmailNotificationsEnabled,
		EmailAddress:              requestBody.EmailAddress,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) generateNotifications(c *gin.Context) {
	created, err := m.NotificationService.Generate(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{
		"notificationsCreated": created,
		"message":              fmt.Sprintf("generated %d notification(s)", created),
	})
}

func (m ApiHandler) listPendingNotifications(c *gin.Context) {
	out, err := m.NotificationService.ListPending(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) displayNotification(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.NotificationService.MarkDisplayed(c.Request.Context(), id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

type dismissNotificationsRequest struct {
	NotificationIDs []int32 `json:"notificationIds"`
}

func (m ApiHandler) dismissNotifications(c *gin.Context) {
	var requestBody dismissNotificationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	dismissed, err := m.NotificationService.Dismiss(c.Request.Context(), requestBody.NotificationIDs)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{
		"dismissedCount": dismissed,
		"message":        fmt.Sprintf("dismissed %d notification(s)", dismissed),
	})
}
