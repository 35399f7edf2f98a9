package service

import (
	"context"
	"testing"
	"time"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/repository"
	mock_repository "fundfolio/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func activeDeposit(id int32, maturesInDays int) model.FixedDeposit {
	now := time.Now().UTC()
	return model.FixedDeposit{
		ID:                      id,
		PrincipalAmount:         100000,
		InterestRate:            9.5,
		StartDate:               now.AddDate(-1, 0, 0),
		MaturityDate:            now.AddDate(0, 0, maturesInDays),
		InstitutionName:         "Commercial Bank",
		InterestPayoutFrequency: "at_maturity",
		InterestCalculationType: "simple",
	}
}

func TestNotificationService_GetSettings(t *testing.T) {
	t.Run("returns the stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notificationRepository := mock_repository.NewMockNotificationRepository(ctrl)

		handler := notificationServiceHandler{
			NotificationRepository: notificationRepository,
			FixedDepositRepository: mock_repository.NewMockFixedDepositRepository(ctrl),
		}

		stored := model.NotificationSetting{ID: 1, NotifyDaysBefore30: false, NotifyOnMaturity: true}
		notificationRepository.EXPECT().GetSettings().Return(&stored, nil)

		settings, err := handler.GetSettings(context.Background())
		require.NoError(t, err)
		require.Equal(t, &stored, settings)
	})

	t.Run("creates the defaults on first use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notificationRepository := mock_repository.NewMockNotificationRepository(ctrl)

		handler := notificationServiceHandler{
			NotificationRepository: notificationRepository,
			FixedDepositRepository: mock_repository.NewMockFixedDepositRepository(ctrl),
		}

		notificationRepository.EXPECT().GetSettings().Return(nil, repository.ErrNotFound)
		notificationRepository.EXPECT().UpsertSettings(defaultSettings()).DoAndReturn(
			func(s model.NotificationSetting) (*model.NotificationSetting, error) {
				s.ID = 1
				return &s, nil
			})

		settings, err := handler.GetSettings(context.Background())
		require.NoError(t, err)
		require.True(t, settings.NotifyDaysBefore30)
		require.True(t, settings.NotifyDaysBefore7)
		require.True(t, settings.NotifyOnMaturity)
		require.False(t, settings.EmailNotificationsEnabled)
	})
}

func TestNotificationService_Generate(t *testing.T) {
	allOn := model.NotificationSetting{
		ID:                 1,
		NotifyDaysBefore30: true,
		NotifyDaysBefore7:  true,
		NotifyOnMaturity:   true,
	}

	t.Run("records a notification per matching window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notificationRepository := mock_repository.NewMockNotificationRepository(ctrl)
		fixedDepositRepository := mock_repository.NewMockFixedDepositRepository(ctrl)

		handler := notificationServiceHandler{
			NotificationRepository: notificationRepository,
			FixedDepositRepository: fixedDepositRepository,
		}

		notificationRepository.EXPECT().GetSettings().Return(&allOn, nil)
		fixedDepositRepository.EXPECT().ListActive(gomock.Any()).Return([]model.FixedDeposit{
			activeDeposit(1, 30),
			activeDeposit(2, 7),
			activeDeposit(3, 0),
			activeDeposit(4, 120),
		}, nil)

		notificationRepository.EXPECT().LogExists(int32(1), "maturity_30_days").Return(false, nil)
		notificationRepository.EXPECT().LogExists(int32(2), "maturity_7_days").Return(false, nil)
		notificationRepository.EXPECT().LogExists(int32(3), "maturity_today").Return(false, nil)

		notificationRepository.EXPECT().AddLog(gomock.Any()).DoAndReturn(
			func(l model.NotificationLog) (*model.NotificationLog, error) {
				require.Equal(t, "pending", l.Status)
				return &l, nil
			}).Times(3)

		created, err := handler.Generate(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, created)
	})

	t.Run("never records the same deposit and type twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notificationRepository := mock_repository.NewMockNotificationRepository(ctrl)
		fixedDepositRepository := mock_repository.NewMockFixedDepositRepository(ctrl)

		handler := notificationServiceHandler{
			NotificationRepository: notificationRepository,
			FixedDepositRepository: fixedDepositRepository,
		}

		notificationRepository.EXPECT().GetSettings().Return(&allOn, nil)
		fixedDepositRepository.EXPECT().ListActive(gomock.Any()).Return([]model.FixedDeposit{
			activeDeposit(1, 30),
		}, nil)
		notificationRepository.EXPECT().LogExists(int32(1), "maturity_30_days").Return(true, nil)

		created, err := handler.Generate(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, created)
	})

	t.Run("disabled windows are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notificationRepository := mock_repository.NewMockNotificationRepository(ctrl)
		fixedDepositRepository := mock_repository.NewMockFixedDepositRepository(ctrl)

		handler := notificationServiceHandler{
			NotificationRepository: notificationRepository,
			FixedDepositRepository: fixedDepositRepository,
		}

		onlyMaturity := model.NotificationSetting{ID: 1, NotifyOnMaturity: true}
		notificationRepository.EXPECT().GetSettings().Return(&onlyMaturity, nil)
		fixedDepositRepository.EXPECT().ListActive(gomock.Any()).Return([]model.FixedDeposit{
			activeDeposit(1, 30),
			activeDeposit(2, 7),
		}, nil)

		created, err := handler.Generate(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, created)
	})
}
