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

type TransactionRepository interface {
	Add(t model.Transaction) (*model.Transaction, error)
	Get(id int32) (*model.Transaction, error)
	List(unitTrustID *int32) ([]model.Transaction, error)
	// ListChronological returns the full log ordered by transaction date with
	// insertion order breaking ties - exactly the ordering the FIFO ledger
	// and equity curve assume.
	ListChronological() ([]domain.Transaction, error)
	Update(t model.Transaction) (*model.Transaction, error)
	Delete(id int32) error
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(t model.Transaction) (*model.Transaction, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	query := table.Transaction.
		INSERT(table.Transaction.MutableColumns).
		MODEL(t).
		RETURNING(table.Transaction.AllColumns)

	out := model.Transaction{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) Get(id int32) (*model.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		WHERE(table.Transaction.ID.EQ(postgres.Int32(id)))

	out := model.Transaction{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) List(unitTrustID *int32) ([]model.Transaction, error) {
	query := table.Transaction.SELECT(table.Transaction.AllColumns)
	if unitTrustID != nil {
		query = query.WHERE(table.Transaction.UnitTrustID.EQ(postgres.Int32(*unitTrustID)))
	}
	query = query.ORDER_BY(table.Transaction.TransactionDate.DESC(), table.Transaction.ID.DESC())

	out := []model.Transaction{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return out, nil
}

func (h transactionRepositoryHandler) ListChronological() ([]domain.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		ORDER_BY(table.Transaction.TransactionDate.ASC(), table.Transaction.ID.ASC())

	rows := []model.Transaction{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction log: %w", err)
	}

	out := make([]domain.Transaction, 0, len(rows))
	for _, t := range rows {
		out = append(out, domain.Transaction{
			UnitTrustID:  t.UnitTrustID,
			Type:         domain.TransactionType(t.TransactionType),
			Units:        t.Units,
			PricePerUnit: t.PricePerUnit,
			Date:         t.TransactionDate,
			Notes:        t.Notes,
		})
	}

	return out, nil
}

func (h transactionRepositoryHandler) Update(t model.Transaction) (*model.Transaction, error) {
	query := table.Transaction.
		UPDATE(table.Transaction.MutableColumns).
		MODEL(t).
		WHERE(table.Transaction.ID.EQ(postgres.Int32(t.ID))).
		RETURNING(table.Transaction.AllColumns)

	out := model.Transaction{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %d: %w", t.ID, err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) Delete(id int32) error {
	query := table.Transaction.
		DELETE().
		WHERE(table.Transaction.ID.EQ(postgres.Int32(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
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
