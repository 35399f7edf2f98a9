package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/domain"
	"fundfolio/internal/logger"
	"fundfolio/internal/repository"
)

// NotificationService turns upcoming fixed deposit maturities into pending
// notifications, driven by the singleton settings row.
type NotificationService interface {
	GetSettings(ctx context.Context) (*model.NotificationSetting, error)
	UpdateSettings(ctx context.Context, s model.NotificationSetting) (*model.NotificationSetting, error)
	Generate(ctx context.Context) (int, error)
	ListPending(ctx context.Context) ([]repository.PendingNotification, error)
	MarkDisplayed(ctx context.Context, id int32) (*model.NotificationLog, error)
	Dismiss(ctx context.Context, ids []int32) (int64, error)
}

type notificationServiceHandler struct {
	NotificationRepository repository.NotificationRepository
	FixedDepositRepository repository.FixedDepositRepository
}

func NewNotificationService(
	notificationRepository repository.NotificationRepository,
	fixedDepositRepository repository.FixedDepositRepository,
) NotificationService {
	return notificationServiceHandler{
		NotificationRepository: notificationRepository,
		FixedDepositRepository: fixedDepositRepository,
	}
}

func defaultSettings() model.NotificationSetting {
	return model.NotificationSetting{
		NotifyDaysBefore30:        true,
		NotifyDaysBefore7:         true,
		NotifyOnMaturity:          true,
		EmailNotificationsEnabled: false,
	}
}

// GetSettings returns the settings row, creating the defaults on first use.
func (h notificationServiceHandler) GetSettings(ctx context.Context) (*model.NotificationSetting, error) {
	settings, err := h.NotificationRepository.GetSettings()
	if errors.Is(err, repository.ErrNotFound) {
		return h.NotificationRepository.UpsertSettings(defaultSettings())
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (h notificationServiceHandler) UpdateSettings(ctx context.Context, s model.NotificationSetting) (*model.NotificationSetting, error) {
	s.UpdatedAt = time.Now().UTC()
	return h.NotificationRepository.UpsertSettings(s)
}

// Generate scans active deposits and records a notification for each one
// inside a maturity window that the settings enable. The windows carry a
// couple days of tolerance so a generation run that skips a day does not
// miss its slot. A deposit+type pair is only ever recorded once.
func (h notificationServiceHandler) Generate(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	settings, err := h.GetSettings(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	activeFds, err := h.FixedDepositRepository.ListActive(now)
	if err != nil {
		return 0, fmt.Errorf("failed to list active deposits: %w", err)
	}

	created := 0
	for _, fd := range activeFds {
		daysToMaturity := int(fd.MaturityDate.Sub(now).Hours() / 24)

		types := []domain.NotificationType{}
		if settings.NotifyDaysBefore30 && daysToMaturity >= 28 && daysToMaturity <= 32 {
			types = append(types, domain.NotificationType_Maturity30Days)
		}
		if settings.NotifyDaysBefore7 && daysToMaturity >= 5 && daysToMaturity <= 9 {
			types = append(types, domain.NotificationType_Maturity7Days)
		}
		if settings.NotifyOnMaturity && daysToMaturity >= 0 && daysToMaturity <= 1 {
			types = append(types, domain.NotificationType_MaturityToday)
		}

		for _, t := range types {
			exists, err := h.NotificationRepository.LogExists(fd.ID, string(t))
			if err != nil {
				return created, err
			}
			if exists {
				continue
			}
			_, err = h.NotificationRepository.AddLog(model.NotificationLog{
				FixedDepositID:   fd.ID,
				NotificationType: string(t),
				Status:           string(domain.NotificationStatus_Pending),
			})
			if err != nil {
				return created, err
			}
			created++
		}
	}

	log.Infow("generated maturity notifications", "activeDeposits", len(activeFds), "created", created)
	return created, nil
}

func (h notificationServiceHandler) ListPending(ctx context.Context) ([]repository.PendingNotification, error) {
	return h.NotificationRepository.ListPending()
}

func (h notificationServiceHandler) MarkDisplayed(ctx context.Context, id int32) (*model.NotificationLog, error) {
	return h.NotificationRepository.MarkDisplayed(id, time.Now().UTC())
}

func (h notificationServiceHandler) Dismiss(ctx context.Context, ids []int32) (int64, error) {
	return h.NotificationRepository.Dismiss(ids, time.Now().UTC())
}
