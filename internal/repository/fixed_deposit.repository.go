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

type FixedDepositRepository interface {
	Add(fd model.FixedDeposit) (*model.FixedDeposit, error)
	Get(id int32) (*model.FixedDeposit, error)
	List() ([]model.FixedDeposit, error)
	// ListActive returns deposits that have not yet matured as of the given
	// time, soonest maturity first.
	ListActive(asOf time.Time) ([]model.FixedDeposit, error)
	Update(fd model.FixedDeposit) (*model.FixedDeposit, error)
	Delete(id int32) error
}

type fixedDepositRepositoryHandler struct {
	Db *sql.DB
}

func NewFixedDepositRepository(db *sql.DB) FixedDepositRepository {
	return fixedDepositRepositoryHandler{Db: db}
}

func (h fixedDepositRepositoryHandler) Add(fd model.FixedDeposit) (*model.FixedDeposit, error) {
	now := time.Now().UTC()
	if fd.CreatedAt.IsZero() {
		fd.CreatedAt = now
	}
	fd.UpdatedAt = now
	query := table.FixedDeposit.
		INSERT(table.FixedDeposit.MutableColumns).
		MODEL(fd).
		RETURNING(table.FixedDeposit.AllColumns)

	out := model.FixedDeposit{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fixed deposit: %w", err)
	}

	return &out, nil
}

func (h fixedDepositRepositoryHandler) Get(id int32) (*model.FixedDeposit, error) {
	query := table.FixedDeposit.
		SELECT(table.FixedDeposit.AllColumns).
		WHERE(table.FixedDeposit.ID.EQ(postgres.Int32(id)))

	out := model.FixedDeposit{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fixed deposit %d: %w", id, err)
	}

	return &out, nil
}

func (h fixedDepositRepositoryHandler) List() ([]model.FixedDeposit, error) {
	query := table.FixedDeposit.
		SELECT(table.FixedDeposit.AllColumns).
		ORDER_BY(table.FixedDeposit.MaturityDate.ASC())

	out := []model.FixedDeposit{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed deposits: %w", err)
	}

	return out, nil
}

func (h fixedDepositRepositoryHandler) ListActive(asOf time.Time) ([]model.FixedDeposit, error) {
	query := table.FixedDeposit.
		SELECT(table.FixedDeposit.AllColumns).
		WHERE(table.FixedDeposit.MaturityDate.GT(postgres.TimestampT(asOf))).
		ORDER_BY(table.FixedDeposit.MaturityDate.ASC())

	out := []model.FixedDeposit{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list active fixed deposits: %w", err)
	}

	return out, nil
}

func (h fixedDepositRepositoryHandler) Update(fd model.FixedDeposit) (*model.FixedDeposit, error) {
	fd.UpdatedAt = time.Now().UTC()
	query := table.FixedDeposit.
		UPDATE(table.FixedDeposit.MutableColumns).
		MODEL(fd).
		WHERE(table.FixedDeposit.ID.EQ(postgres.Int32(fd.ID))).
		RETURNING(table.FixedDeposit.AllColumns)

	out := model.FixedDeposit{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update fixed deposit %d: %w", fd.ID, err)
	}

	return &out, nil
}

func (h fixedDepositRepositoryHandler) Delete(id int32) error {
	query := table.FixedDeposit.
		DELETE().
		WHERE(table.FixedDeposit.ID.EQ(postgres.Int32(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete fixed deposit %d: %w", id, err)
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
