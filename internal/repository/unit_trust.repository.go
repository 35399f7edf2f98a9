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

var ErrNotFound = errors.New("not found")

type UnitTrustRepository interface {
	Add(ut model.UnitTrust) (*model.UnitTrust, error)
	Get(id int32) (*model.UnitTrust, error)
	GetBySymbol(symbol string) (*model.UnitTrust, error)
	List() ([]model.UnitTrust, error)
	Update(ut model.UnitTrust) (*model.UnitTrust, error)
	Delete(id int32) error
}

type unitTrustRepositoryHandler struct {
	Db *sql.DB
}

func NewUnitTrustRepository(db *sql.DB) UnitTrustRepository {
	return unitTrustRepositoryHandler{Db: db}
}

func (h unitTrustRepositoryHandler) Add(ut model.UnitTrust) (*model.UnitTrust, error) {
	if ut.CreatedAt.IsZero() {
		ut.CreatedAt = time.Now().UTC()
	}
	query := table.UnitTrust.
		INSERT(table.UnitTrust.MutableColumns).
		MODEL(ut).
		RETURNING(table.UnitTrust.AllColumns)

	out := model.UnitTrust{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert unit trust: %w", err)
	}

	return &out, nil
}

func (h unitTrustRepositoryHandler) Get(id int32) (*model.UnitTrust, error) {
	query := table.UnitTrust.
		SELECT(table.UnitTrust.AllColumns).
		WHERE(table.UnitTrust.ID.EQ(postgres.Int32(id)))

	out := model.UnitTrust{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unit trust %d: %w", id, err)
	}

	return &out, nil
}

func (h unitTrustRepositoryHandler) GetBySymbol(symbol string) (*model.UnitTrust, error) {
	query := table.UnitTrust.
		SELECT(table.UnitTrust.AllColumns).
		WHERE(table.UnitTrust.Symbol.EQ(postgres.String(symbol)))

	out := model.UnitTrust{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unit trust %s: %w", symbol, err)
	}

	return &out, nil
}

func (h unitTrustRepositoryHandler) List() ([]model.UnitTrust, error) {
	query := table.UnitTrust.
		SELECT(table.UnitTrust.AllColumns).
		ORDER_BY(table.UnitTrust.Name.ASC())

	out := []model.UnitTrust{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list unit trusts: %w", err)
	}

	return out, nil
}

func (h unitTrustRepositoryHandler) Update(ut model.UnitTrust) (*model.UnitTrust, error) {
	query := table.UnitTrust.
		UPDATE(table.UnitTrust.MutableColumns).
		MODEL(ut).
		WHERE(table.UnitTrust.ID.EQ(postgres.Int32(ut.ID))).
		RETURNING(table.UnitTrust.AllColumns)

	out := model.UnitTrust{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update unit trust %d: %w", ut.ID, err)
	}

	return &out, nil
}

func (h unitTrustRepositoryHandler) Delete(id int32) error {
	query := table.UnitTrust.
		DELETE().
		WHERE(table.UnitTrust.ID.EQ(postgres.Int32(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete unit trust %d: %w", id, err)
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
