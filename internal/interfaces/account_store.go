package interfaces

import (
	"context"

	"github.com/asadbukhari/bank-ledger-service/internal/models"
)

// AccountStore is the persistence boundary of the ledger. Implementations
// must report missing accounts with ledger.ErrAccountNotFound and duplicate
// identifiers with ledger.ErrDuplicateAccount so callers can match on them.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account) error
	GetAccount(ctx context.Context, id string) (models.Account, error)
	UpdateBalance(ctx context.Context, id string, balance int64) error
	// ApplyTransfer writes both post-transfer balances. Either both
	// accounts are updated or neither is.
	ApplyTransfer(ctx context.Context, from, to models.Account) error
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
