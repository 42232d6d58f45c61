package models

// TransferResult reports the outcome of a successful transfer:
// both post-transfer balances, in minor units, plus the generated
// transfer identifier.
type TransferResult struct {
	TransferID  string `json:"transfer_id"`
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	FromBalance int64  `json:"from_balance"`
	ToBalance   int64  `json:"to_balance"`
}
