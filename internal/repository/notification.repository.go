package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// PendingNotification joins a notification row with the fixed deposit it
// refers to, so the UI can render the maturity details inline.
type PendingNotification struct {
	model.NotificationLog

	FixedDeposit model.FixedDeposit
}

type NotificationRepository interface {
	GetSettings() (*model.NotificationSetting, error)
	UpsertSettings(s model.NotificationSetting) (*model.NotificationSetting, error)
	AddLog(l model.NotificationLog) (*model.NotificationLog, error)
	LogExists(fixedDepositID int32, notificationType string) (bool, error)
	ListPending() ([]PendingNotification, error)
	MarkDisplayed(id int32, at time.Time) (*model.NotificationLog, error)
	Dismiss(ids []int32, at time.Time) (int64, error)
}

type notificationRepositoryHandler struct {
	Db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return notificationRepositoryHandler{Db: db}
}

// settings live in a singleton row with id 1
const settingsRowID = 1

func (h notificationRepositoryHandler) GetSettings() (*model.NotificationSetting, error) {
	query := table.NotificationSetting.
		SELECT(table.NotificationSetting.AllColumns).
		WHERE(table.NotificationSetting.ID.EQ(postgres.Int32(settingsRowID)))

	out := model.NotificationSetting{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}

	return &out, nil
}

func (h notificationRepositoryHandler) UpsertSettings(s model.NotificationSetting) (*model.NotificationSetting, error) {
	s.ID = settingsRowID
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}
	query := table.NotificationSetting.
		INSERT(table.NotificationSetting.AllColumns).
		MODEL(s).
		ON_CONFLICT(table.NotificationSetting.ID).
		DO_UPDATE(postgres.SET(
			table.NotificationSetting.NotifyDaysBefore30.SET(table.NotificationSetting.EXCLUDED.NotifyDaysBefore30),
			table.NotificationSetting.NotifyDaysBefore7.SET(table.NotificationSetting.EXCLUDED.NotifyDaysBefore7),
			table.NotificationSetting.NotifyOnMaturity.SET(table.NotificationSetting.EXCLUDED.NotifyOnMaturity),
			table.NotificationSetting.EmailNotificationsEnabled.SET(table.NotificationSetting.EXCLUDED.EmailNotificationsEnabled),
			table.NotificationSetting.EmailAddress.SET(table.NotificationSetting.EXCLUDED.EmailAddress),
			table.NotificationSetting.UpdatedAt.SET(table.NotificationSetting.EXCLUDED.UpdatedAt),
		)).
		RETURNING(table.NotificationSetting.AllColumns)

	out := model.NotificationSetting{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert notification settings: %w", err)
	}

	return &out, nil
}

func (h notificationRepositoryHandler) AddLog(l model.NotificationLog) (*model.NotificationLog, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	query := table.NotificationLog.
		INSERT(table.NotificationLog.MutableColumns).
		MODEL(l).
		RETURNING(table.NotificationLog.AllColumns)

	out := model.NotificationLog{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return &out, nil
}

func (h notificationRepositoryHandler) LogExists(fixedDepositID int32, notificationType string) (bool, error) {
	query := table.NotificationLog.
		SELECT(table.NotificationLog.ID).
		WHERE(postgres.AND(
			table.NotificationLog.FixedDepositID.EQ(postgres.Int32(fixedDepositID)),
			table.NotificationLog.NotificationType.EQ(postgres.String(notificationType)),
		)).
		LIMIT(1)

	out := model.NotificationLog{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}

	return true, nil
}

func (h notificationRepositoryHandler) ListPending() ([]PendingNotification, error) {
	query := table.NotificationLog.
		INNER_JOIN(table.FixedDeposit, table.NotificationLog.FixedDepositID.EQ(table.FixedDeposit.ID)).
		SELECT(table.NotificationLog.AllColumns, table.FixedDeposit.AllColumns).
		WHERE(table.NotificationLog.Status.EQ(postgres.String("pending"))).
		ORDER_BY(table.NotificationLog.CreatedAt.DESC())

	out := []PendingNotification{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}

	return out, nil
}

func (h notificationRepositoryHandler) MarkDisplayed(id int32, at time.Time) (*model.NotificationLog, error) {
	query := table.NotificationLog.
		UPDATE(table.NotificationLog.Status, table.NotificationLog.DisplayedAt).
		SET(postgres.String("displayed"), postgres.TimestampT(at)).
		WHERE(table.NotificationLog.ID.EQ(postgres.Int32(id))).
		RETURNING(table.NotificationLog.AllColumns)

	out := model.NotificationLog{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification %d displayed: %w", id, err)
	}

	return &out, nil
}

func (h notificationRepositoryHandler) Dismiss(ids []int32, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	idExprs := make([]postgres.Expression, 0, len(ids))
	for _, id := range ids {
		idExprs = append(idExprs, postgres.Int32(id))
	}

	query := table.NotificationLog.
		UPDATE(table.NotificationLog.Status, table.NotificationLog.DismissedAt).
		SET(postgres.String("dismissed"), postgres.TimestampT(at)).
		WHERE(table.NotificationLog.ID.IN(idExprs...))

	result, err := query.Exec(h.Db)
	if err != nil {
		return 0, fmt.Errorf("failed to dismiss notifications: %w", err)
	}

	return result.RowsAffected()
}
