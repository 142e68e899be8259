package engine

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// walletEpsilon absorbs float accumulation error when locking and unlocking many orders.
const walletEpsilon = 1e-9

// Wallet tracks the balance and the funds locked against pending orders.
// free balance = balance - locked, and neither locked nor free balance may go negative.
type Wallet struct {
	initialBalance float64
	balance        float64
	locked         float64
}

// NewWallet creates a wallet. The initial balance must be positive.
func NewWallet(initialBalance float64) (*Wallet, error) {
	if initialBalance <= 0 || math.IsNaN(initialBalance) || math.IsInf(initialBalance, 0) {
		return nil, errors.Newf(errors.ErrCodeNonPositiveBalance, "initial balance must be positive, got %f", initialBalance)
	}

	return &Wallet{
		initialBalance: initialBalance,
		balance:        initialBalance,
		locked:         0,
	}, nil
}

func (w *Wallet) Balance() float64 {
	return w.balance
}

func (w *Wallet) Locked() float64 {
	return w.locked
}

func (w *Wallet) InitialBalance() float64 {
	return w.initialBalance
}

// FreeBalance returns the balance available for new orders.
func (w *Wallet) FreeBalance() (float64, error) {
	return checkFree(w.balance, w.locked)
}

// Lock reserves amount for a pending order.
func (w *Wallet) Lock(amount float64) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}

	return w.apply(w.balance, w.locked+amount)
}

// Unlock releases a reservation made by Lock.
func (w *Wallet) Unlock(amount float64) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}

	return w.apply(w.balance, w.locked-amount)
}

// Sub debits both balance and locked, used when a locked order fills.
func (w *Wallet) Sub(amount float64) (float64, error) {
	if err := checkAmount(amount); err != nil {
		return 0, err
	}

	return w.apply(w.balance-amount, w.locked-amount)
}

// Add credits the balance, used when a position closes.
// amount may be negative when a short closes far above its entry.
func (w *Wallet) Add(amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "wallet amount must be finite, got %f", amount)
	}

	return w.apply(w.balance+amount, w.locked)
}

// Reset restores the initial balance and releases every reservation.
func (w *Wallet) Reset() {
	w.balance = w.initialBalance
	w.locked = 0
}

// apply commits the new state only when it keeps the invariants.
func (w *Wallet) apply(balance float64, locked float64) (float64, error) {
	locked = snap(locked)
	if locked < 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidWalletState, "locked funds would become negative: %f", locked)
	}

	free, err := checkFree(balance, locked)
	if err != nil {
		return 0, err
	}

	w.balance = balance
	w.locked = locked

	return free, nil
}

func checkFree(balance float64, locked float64) (float64, error) {
	free := snap(balance - locked)
	if free < 0 {
		return 0, errors.Newf(errors.ErrCodeInsufficientFunds, "insufficient funds: free balance would be %f", free)
	}

	return free, nil
}

func checkAmount(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errors.Newf(errors.ErrCodeInvalidParameter, "wallet amount must be a finite non-negative number, got %f", amount)
	}

	return nil
}

func snap(value float64) float64 {
	if math.Abs(value) < walletEpsilon {
		return 0
	}

	return value
}
