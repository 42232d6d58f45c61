package models

import "time"

// Account is a named holder of a non-negative balance.
// Balance is an exact integer count of minor currency units (cents),
// never a float, so arithmetic is free of rounding error.
type Account struct {
	ID        string    `json:"id"`
	Holder    string    `json:"holder"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
