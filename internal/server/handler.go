// Package server is the HTTP layer over the ledger. Handlers validate and
// decode requests, call the ledger, and translate domain errors to status
// codes; no business logic lives here.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadbukhari/bank-ledger-service/internal/ledger"
	"github.com/asadbukhari/bank-ledger-service/internal/models"
	"github.com/asadbukhari/bank-ledger-service/internal/money"
)

type Server struct {
	ledger *ledger.Ledger
	log    *zap.Logger
}

// NewServer wraps a ledger; log may be nil.
func NewServer(l *ledger.Ledger, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{ledger: l, log: log}
}

// accountResponse renders balances in major units; the int64 minor-unit
// representation stays internal.
type accountResponse struct {
	ID        string          `json:"id"`
	Holder    string          `json:"holder"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
}

func toAccountResponse(a models.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Holder:    a.Holder,
		Balance:   money.FromMinorUnits(a.Balance),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

type balanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// accounts handles:
//
//	POST /accounts → create account
//	GET  /accounts → list accounts
func (s *Server) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req struct {
			ID     string `json:"id"`
			Holder string `json:"holder"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		account, err := s.ledger.CreateAccount(r.Context(), req.ID, req.Holder)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAccountResponse(account))

	case http.MethodGet:
		accounts, err := s.ledger.ListAccounts(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		out := make([]accountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, toAccountResponse(a))
		}
		writeJSON(w, http.StatusOK, out)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// accountSubroutes handles:
//
//	GET  /accounts/{id}
//	POST /accounts/{id}/deposit
//	POST /accounts/{id}/withdraw
func (s *Server) accountSubroutes(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/accounts/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	id := parts[0]

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		account, err := s.ledger.GetAccount(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(account))
		return
	}

	switch parts[1] {
	case "deposit":
		s.move(w, r, id, s.ledger.Deposit)
	case "withdraw":
		s.move(w, r, id, s.ledger.Withdraw)
	default:
		http.NotFound(w, r)
	}
}

// move is the shared deposit/withdraw handler; op is the ledger operation
// to apply.
func (s *Server) move(w http.ResponseWriter, r *http.Request, id string, op func(ctx context.Context, id string, amount int64) (int64, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	amount, err := money.ToMinorUnits(req.Amount)
	if err != nil {
		writeErr(w, err)
		return
	}

	balance, err := op(r.Context(), id, amount)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{
		AccountID: id,
		Balance:   money.FromMinorUnits(balance),
	})
}

// balance handles GET /accounts/balance?account_id=...
func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	accountID := r.URL.Query().Get("account_id")
	if accountID == "" {
		http.Error(w, "account_id is a mandatory field", http.StatusBadRequest)
		return
	}

	balance, err := s.ledger.GetBalance(r.Context(), accountID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{
		AccountID: accountID,
		Balance:   money.FromMinorUnits(balance),
	})
}

// transfer handles POST /transfer. On success both post-transfer balances
// come back, so callers never need a follow-up read to observe the result.
func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		FromAccount string          `json:"from_account"`
		ToAccount   string          `json:"to_account"`
		Amount      decimal.Decimal `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	amount, err := money.ToMinorUnits(req.Amount)
	if err != nil {
		writeErr(w, err)
		return
	}

	result, err := s.ledger.Transfer(r.Context(), req.FromAccount, req.ToAccount, amount)
	if err != nil {
		writeErr(w, err)
		return
	}

	s.log.Info("transfer completed",
		zap.String("transfer_id", result.TransferID),
		zap.String("from_account", result.FromAccount),
		zap.String("to_account", result.ToAccount))

	writeJSON(w, http.StatusOK, struct {
		TransferID  string          `json:"transfer_id"`
		FromAccount string          `json:"from_account"`
		ToAccount   string          `json:"to_account"`
		FromBalance decimal.Decimal `json:"from_balance"`
		ToBalance   decimal.Decimal `json:"to_balance"`
	}{
		TransferID:  result.TransferID,
		FromAccount: result.FromAccount,
		ToAccount:   result.ToAccount,
		FromBalance: money.FromMinorUnits(result.FromBalance),
		ToBalance:   money.FromMinorUnits(result.ToBalance),
	})
}

// summary handles GET /summary: one display line per account plus the
// bank-wide total.
func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	accounts, err := s.ledger.ListAccounts(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}

	type line struct {
		AccountID string          `json:"account_id"`
		Holder    string          `json:"holder"`
		Balance   decimal.Decimal `json:"balance"`
		Display   string          `json:"display"`
	}

	var total int64
	lines := make([]line, 0, len(accounts))
	for _, a := range accounts {
		total += a.Balance
		lines = append(lines, line{
			AccountID: a.ID,
			Holder:    a.Holder,
			Balance:   money.FromMinorUnits(a.Balance),
			Display:   fmt.Sprintf("Account %s (%s) has a balance of %s", a.ID, a.Holder, money.Format(a.Balance)),
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Accounts     []line          `json:"accounts"`
		TotalBalance decimal.Decimal `json:"total_balance"`
	}{
		Accounts:     lines,
		TotalBalance: money.FromMinorUnits(total),
	})
}

// health handles GET /health, for probes.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
