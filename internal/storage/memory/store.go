package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/asadbukhari/bank-ledger-service/internal/interfaces"
	"github.com/asadbukhari/bank-ledger-service/internal/ledger"
	"github.com/asadbukhari/bank-ledger-service/internal/models"
)

// AccountStore is the in-memory implementation of interfaces.AccountStore
// and the default backend: the ledger is process-scoped and nothing here
// touches disk. Safe for concurrent use.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]models.Account),
	}
}

func (s *AccountStore) CreateAccount(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return ledger.ErrDuplicateAccount
	}
	s.accounts[account.ID] = account
	return nil
}

func (s *AccountStore) GetAccount(ctx context.Context, id string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ledger.ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountStore) UpdateBalance(ctx context.Context, id string, balance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return ledger.ErrAccountNotFound
	}
	account.Balance = balance
	s.accounts[id] = account
	return nil
}

// ApplyTransfer writes both post-transfer balances under one lock, so no
// reader ever sees a transfer with only one leg applied.
func (s *AccountStore) ApplyTransfer(ctx context.Context, from, to models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[from.ID]; !ok {
		return ledger.ErrAccountNotFound
	}
	if _, ok := s.accounts[to.ID]; !ok {
		return ledger.ErrAccountNotFound
	}
	s.accounts[from.ID] = from
	s.accounts[to.ID] = to
	return nil
}

func (s *AccountStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ interfaces.AccountStore = (*AccountStore)(nil)
