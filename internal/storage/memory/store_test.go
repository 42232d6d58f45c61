package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadbukhari/bank-ledger-service/internal/ledger"
	"github.com/asadbukhari/bank-ledger-service/internal/models"
)

func account(id, holder string, balance int64) models.Account {
	return models.Account{ID: id, Holder: holder, Balance: balance, CreatedAt: time.Now()}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()

	require.NoError(t, s.CreateAccount(ctx, account("A1", "Alice", 0)))

	got, err := s.GetAccount(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Holder)

	_, err = s.GetAccount(ctx, "A2")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	err = s.CreateAccount(ctx, account("A1", "Mallory", 0))
	assert.ErrorIs(t, err, ledger.ErrDuplicateAccount)
}

func TestUpdateBalance(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	require.NoError(t, s.CreateAccount(ctx, account("A1", "Alice", 100)))

	require.NoError(t, s.UpdateBalance(ctx, "A1", 250))
	got, _ := s.GetAccount(ctx, "A1")
	assert.Equal(t, int64(250), got.Balance)

	assert.ErrorIs(t, s.UpdateBalance(ctx, "missing", 1), ledger.ErrAccountNotFound)
}

func TestApplyTransfer(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	require.NoError(t, s.CreateAccount(ctx, account("A1", "Alice", 100)))
	require.NoError(t, s.CreateAccount(ctx, account("A2", "Bob", 0)))

	from, _ := s.GetAccount(ctx, "A1")
	to, _ := s.GetAccount(ctx, "A2")
	from.Balance = 60
	to.Balance = 40
	require.NoError(t, s.ApplyTransfer(ctx, from, to))

	a1, _ := s.GetAccount(ctx, "A1")
	a2, _ := s.GetAccount(ctx, "A2")
	assert.Equal(t, int64(60), a1.Balance)
	assert.Equal(t, int64(40), a2.Balance)

	// Either leg missing fails the whole write.
	err := s.ApplyTransfer(ctx, from, account("missing", "X", 1))
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	a1, _ = s.GetAccount(ctx, "A1")
	assert.Equal(t, int64(60), a1.Balance)
}

func TestListAccountsSorted(t *testing.T) {
	ctx := context.Background()
	s := NewAccountStore()
	require.NoError(t, s.CreateAccount(ctx, account("B", "Bob", 0)))
	require.NoError(t, s.CreateAccount(ctx, account("A", "Alice", 0)))
	require.NoError(t, s.CreateAccount(ctx, account("C", "Carol", 0)))

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "A", accounts[0].ID)
	assert.Equal(t, "B", accounts[1].ID)
	assert.Equal(t, "C", accounts[2].ID)
}
