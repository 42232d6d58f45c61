package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCompleted is published after a transfer has been applied to
// both accounts. Amount is in major currency units.
type TransferCompleted struct {
	TransferID  string          `json:"transfer_id"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
