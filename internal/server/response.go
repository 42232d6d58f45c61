package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asadbukhari/bank-ledger-service/internal/ledger"
	"github.com/asadbukhari/bank-ledger-service/internal/money"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes. Insufficient funds
// and duplicates are conflicts with current account state, not malformed
// requests, hence 409.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateAccount),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrAmountOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrSameAccount),
		errors.Is(err, ledger.ErrInvalidHolder),
		errors.Is(err, money.ErrPrecision),
		errors.Is(err, money.ErrRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
