package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/db/models/postgres/public/table"
	"fundfolio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceRepository interface {
	Add(p model.Price) (*model.Price, error)
	// AddMany upserts on (unit_trust_id, date), so re-fetching a date range
	// from a provider is idempotent.
	AddMany(prices []model.Price) error
	Get(id int32) (*model.Price, error)
	GetByFundAndDate(unitTrustID int32, date time.Time) (*model.Price, error)
	List(unitTrustID *int32, start, end *time.Time) ([]model.Price, error)
	// ListChronological returns the full price history in date order, in the
	// shape the performance engine consumes.
	ListChronological() ([]domain.FundPrice, error)
	Update(p model.Price) (*model.Price, error)
	Delete(id int32) error
}

type priceRepositoryHandler struct {
	Db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return priceRepositoryHandler{Db: db}
}

func (h priceRepositoryHandler) Add(p model.Price) (*model.Price, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	query := table.Price.
		INSERT(table.Price.MutableColumns).
		MODEL(p).
		RETURNING(table.Price.AllColumns)

	out := model.Price{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert price: %w", err)
	}

	return &out, nil
}

func (h priceRepositoryHandler) AddMany(prices []model.Price) error {
	if len(prices) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range prices {
		if prices[i].CreatedAt.IsZero() {
			prices[i].CreatedAt = now
		}
	}
	query := table.Price.
		INSERT(table.Price.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(table.Price.UnitTrustID, table.Price.Date).
		DO_UPDATE(postgres.SET(
			table.Price.Price.SET(table.Price.EXCLUDED.Price),
		))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert %d prices: %w", len(prices), err)
	}

	return nil
}

func (h priceRepositoryHandler) Get(id int32) (*model.Price, error) {
	query := table.Price.
		SELECT(table.Price.AllColumns).
		WHERE(table.Price.ID.EQ(postgres.Int32(id)))

	out := model.Price{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price %d: %w", id, err)
	}

	return &out, nil
}

func (h priceRepositoryHandler) GetByFundAndDate(unitTrustID int32, date time.Time) (*model.Price, error) {
	query := table.Price.
		SELECT(table.Price.AllColumns).
		WHERE(postgres.AND(
			table.Price.UnitTrustID.EQ(postgres.Int32(unitTrustID)),
			table.Price.Date.EQ(postgres.DateT(date)),
		))

	out := model.Price{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get price for fund %d on %s: %w", unitTrustID, date.Format(time.DateOnly), err)
	}

	return &out, nil
}

func (h priceRepositoryHandler) List(unitTrustID *int32, start, end *time.Time) ([]model.Price, error) {
	conditions := []postgres.BoolExpression{}
	if unitTrustID != nil {
		conditions = append(conditions, table.Price.UnitTrustID.EQ(postgres.Int32(*unitTrustID)))
	}
	if start != nil {
		conditions = append(conditions, table.Price.Date.GT_EQ(postgres.DateT(*start)))
	}
	if end != nil {
		conditions = append(conditions, table.Price.Date.LT_EQ(postgres.DateT(*end)))
	}

	query := table.Price.SELECT(table.Price.AllColumns)
	if len(conditions) > 0 {
		query = query.WHERE(postgres.AND(conditions...))
	}
	query = query.ORDER_BY(table.Price.Date.DESC())

	out := []model.Price{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	return out, nil
}

func (h priceRepositoryHandler) ListChronological() ([]domain.FundPrice, error) {
	query := table.Price.
		SELECT(table.Price.AllColumns).
		ORDER_BY(table.Price.Date.ASC(), table.Price.ID.ASC())

	rows := []model.Price{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list price history: %w", err)
	}

	out := make([]domain.FundPrice, 0, len(rows))
	for _, p := range rows {
		out = append(out, domain.FundPrice{
			UnitTrustID: p.UnitTrustID,
			Date:        p.Date,
			Price:       p.Price,
		})
	}

	return out, nil
}

func (h priceRepositoryHandler) Update(p model.Price) (*model.Price, error) {
	query := table.Price.
		UPDATE(table.Price.MutableColumns).
		MODEL(p).
		WHERE(table.Price.ID.EQ(postgres.Int32(p.ID))).
		RETURNING(table.Price.AllColumns)

	out := model.Price{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update price %d: %w", p.ID, err)
	}

	return &out, nil
}

func (h priceRepositoryHandler) Delete(id int32) error {
	query := table.Price.
		DELETE().
		WHERE(table.Price.ID.EQ(postgres.Int32(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete price %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
