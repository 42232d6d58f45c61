package ledger

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asadbukhari/bank-ledger-service/internal/events"
	"github.com/asadbukhari/bank-ledger-service/internal/interfaces"
	"github.com/asadbukhari/bank-ledger-service/internal/models"
	modelevents "github.com/asadbukhari/bank-ledger-service/internal/models/events"
	"github.com/asadbukhari/bank-ledger-service/internal/money"
)

// DefaultTransferTopic is where TransferCompleted events go unless the
// deployment overrides it.
const DefaultTransferTopic = "transfer_completed"

// Ledger owns the set of accounts and enforces the balance invariants:
// balances never go negative, failed operations leave the store untouched,
// and a transfer is never observable with only one leg applied.
//
// Mutating operations take a per-account mutex around their
// read-modify-write of the store; Transfer takes both, in ascending
// account-id order so two opposite transfers cannot deadlock.
type Ledger struct {
	store interfaces.AccountStore
	pub   interfaces.EventPublisher
	topic string
	log   *zap.Logger

	muMap map[string]*sync.Mutex // one mutex per account id
	mapMu sync.Mutex             // protects muMap itself
}

// NewLedger wires the ledger to a store and an event publisher. pub may be
// nil (events are dropped) and log may be nil (logging is disabled); an
// empty topic falls back to DefaultTransferTopic.
func NewLedger(store interfaces.AccountStore, pub interfaces.EventPublisher, topic string, log *zap.Logger) *Ledger {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if topic == "" {
		topic = DefaultTransferTopic
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		store: store,
		pub:   pub,
		topic: topic,
		log:   log,
		muMap: make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) accountLock(id string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	mu, ok := l.muMap[id]
	if !ok {
		mu = &sync.Mutex{}
		l.muMap[id] = mu
	}
	return mu
}

// CreateAccount inserts a new account with balance zero. A non-empty id is
// taken as-is and fails with ErrDuplicateAccount if already present; an
// empty id gets a generated UUID.
func (l *Ledger) CreateAccount(ctx context.Context, id, holder string) (models.Account, error) {
	if strings.TrimSpace(holder) == "" {
		return models.Account{}, ErrInvalidHolder
	}
	if id == "" {
		id = uuid.NewString()
	}

	account := models.Account{
		ID:        id,
		Holder:    holder,
		Balance:   0,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.store.CreateAccount(ctx, account); err != nil {
		return models.Account{}, err
	}

	l.log.Info("account created", zap.String("account_id", id), zap.String("holder", holder))
	return account, nil
}

// Deposit increases the account balance by amount (minor units) and
// returns the new balance.
func (l *Ledger) Deposit(ctx context.Context, id string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	mu := l.accountLock(id)
	mu.Lock()
	defer mu.Unlock()

	account, err := l.store.GetAccount(ctx, id)
	if err != nil {
		return 0, err
	}
	if account.Balance > math.MaxInt64-amount {
		return 0, ErrAmountOverflow
	}

	newBalance := account.Balance + amount
	if err := l.store.UpdateBalance(ctx, id, newBalance); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Withdraw decreases the account balance by amount (minor units) and
// returns the new balance. The balance never goes negative: a withdrawal
// past the current balance fails with ErrInsufficientFunds and changes
// nothing.
func (l *Ledger) Withdraw(ctx context.Context, id string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	mu := l.accountLock(id)
	mu.Lock()
	defer mu.Unlock()

	account, err := l.store.GetAccount(ctx, id)
	if err != nil {
		return 0, err
	}
	if account.Balance < amount {
		return 0, ErrInsufficientFunds
	}

	newBalance := account.Balance - amount
	if err := l.store.UpdateBalance(ctx, id, newBalance); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Transfer atomically moves amount (minor units) between two distinct
// accounts: either both balances change or neither does. On success a
// TransferCompleted event is published; publish failures are logged, not
// surfaced, because the transfer itself has already been applied.
func (l *Ledger) Transfer(ctx context.Context, fromID, toID string, amount int64) (models.TransferResult, error) {
	if amount <= 0 {
		return models.TransferResult{}, ErrInvalidAmount
	}
	if fromID == toID {
		return models.TransferResult{}, ErrSameAccount
	}

	fromMu := l.accountLock(fromID)
	toMu := l.accountLock(toID)

	// Lock in ascending id order to avoid deadlocks between concurrent
	// transfers running in opposite directions.
	if fromID < toID {
		fromMu.Lock()
		toMu.Lock()
	} else {
		toMu.Lock()
		fromMu.Lock()
	}
	defer fromMu.Unlock()
	defer toMu.Unlock()

	from, err := l.store.GetAccount(ctx, fromID)
	if err != nil {
		return models.TransferResult{}, err
	}
	to, err := l.store.GetAccount(ctx, toID)
	if err != nil {
		return models.TransferResult{}, err
	}

	if from.Balance < amount {
		return models.TransferResult{}, ErrInsufficientFunds
	}
	if to.Balance > math.MaxInt64-amount {
		return models.TransferResult{}, ErrAmountOverflow
	}

	from.Balance -= amount
	to.Balance += amount
	if err := l.store.ApplyTransfer(ctx, from, to); err != nil {
		return models.TransferResult{}, err
	}

	result := models.TransferResult{
		TransferID:  uuid.NewString(),
		FromAccount: fromID,
		ToAccount:   toID,
		FromBalance: from.Balance,
		ToBalance:   to.Balance,
	}

	event := modelevents.TransferCompleted{
		TransferID:  result.TransferID,
		FromAccount: fromID,
		ToAccount:   toID,
		Amount:      money.FromMinorUnits(amount),
		OccurredAt:  time.Now().UTC(),
	}
	if err := l.pub.Publish(ctx, l.topic, event); err != nil {
		l.log.Warn("publish transfer event failed",
			zap.String("transfer_id", result.TransferID), zap.Error(err))
	}

	return result, nil
}

// GetAccount returns the current state of one account.
func (l *Ledger) GetAccount(ctx context.Context, id string) (models.Account, error) {
	return l.store.GetAccount(ctx, id)
}

// GetBalance returns the current balance of one account in minor units.
func (l *Ledger) GetBalance(ctx context.Context, id string) (int64, error) {
	account, err := l.store.GetAccount(ctx, id)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// ListAccounts returns all accounts ordered by id.
func (l *Ledger) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return l.store.ListAccounts(ctx)
}

// TotalBalance sums every account balance, in minor units.
func (l *Ledger) TotalBalance(ctx context.Context) (int64, error) {
	accounts, err := l.store.ListAccounts(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, account := range accounts {
		total += account.Balance
	}
	return total, nil
}
