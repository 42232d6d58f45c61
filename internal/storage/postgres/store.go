package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/asadbukhari/bank-ledger-service/internal/interfaces"
	"github.com/asadbukhari/bank-ledger-service/internal/ledger"
	"github.com/asadbukhari/bank-ledger-service/internal/models"
)

// AccountStore is the Postgres-backed implementation of
// interfaces.AccountStore. It expects the table:
//
//	CREATE TABLE accounts (
//	    id         TEXT PRIMARY KEY,
//	    holder     TEXT NOT NULL,
//	    balance    BIGINT NOT NULL CHECK (balance >= 0),
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) CreateAccount(ctx context.Context, account models.Account) error {
	const query = `INSERT INTO accounts (id, holder, balance, created_at)
	VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query, account.ID, account.Holder, account.Balance, account.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return ledger.ErrDuplicateAccount
	}
	return err
}

func (s *AccountStore) GetAccount(ctx context.Context, id string) (models.Account, error) {
	const query = `SELECT id, holder, balance, created_at FROM accounts WHERE id = $1`

	var account models.Account
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Holder,
		&account.Balance,
		&account.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ledger.ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id string, balance int64) error {
	const query = `UPDATE accounts SET balance = $2 WHERE id = $1`

	res, err := s.db.ExecContext(ctx, query, id, balance)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

// ApplyTransfer updates both rows inside one database transaction so the
// transfer commits fully or not at all.
func (s *AccountStore) ApplyTransfer(ctx context.Context, from, to models.Account) (err error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	const query = `UPDATE accounts SET balance = $2 WHERE id = $1`

	for _, account := range []models.Account{from, to} {
		var res sql.Result
		res, err = dbTx.ExecContext(ctx, query, account.ID, account.Balance)
		if err != nil {
			return err
		}
		if n, raErr := res.RowsAffected(); raErr == nil && n == 0 {
			err = ledger.ErrAccountNotFound
			return err
		}
	}

	err = dbTx.Commit()
	return err
}

func (s *AccountStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	const query = `SELECT id, holder, balance, created_at FROM accounts ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Holder, &account.Balance, &account.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

var _ interfaces.AccountStore = (*AccountStore)(nil)
