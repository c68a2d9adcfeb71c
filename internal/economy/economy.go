// Package economy tracks the player's coin balance.
package economy

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("negative amount")
)

// Economy is the coin balance. The balance never goes negative.
type Economy struct {
	balance int
}

func New(initial int) *Economy {
	if initial < 0 {
		initial = 0
	}
	return &Economy{balance: initial}
}

func (e *Economy) Balance() int { return e.balance }

func (e *Economy) CanAfford(cost int) bool { return cost >= 0 && e.balance >= cost }

// Spend deducts cost. On error the balance is left untouched.
func (e *Economy) Spend(cost int) error {
	if cost < 0 {
		return fmt.Errorf("spend %d: %w", cost, ErrNegativeAmount)
	}
	if e.balance < cost {
		return fmt.Errorf("spend %d with balance %d: %w", cost, e.balance, ErrInsufficientFunds)
	}
	e.balance -= cost
	return nil
}

// Reward credits amount. Non-positive amounts are ignored.
func (e *Economy) Reward(amount int) {
	if amount > 0 {
		e.balance += amount
	}
}
