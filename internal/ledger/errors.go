package ledger

import "errors"

// Domain errors. The HTTP layer maps these to status codes; everything
// here is a recoverable caller error, never a process fault.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("source and destination accounts cannot be the same")
	ErrInvalidHolder     = errors.New("holder name must not be empty")
	ErrAmountOverflow    = errors.New("amount overflows account balance")
)
