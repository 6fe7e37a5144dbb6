package error

import (
	"errors"
	"fmt"
)

// Base error types. Validation errors are user-visible chat replies and never
// logged as system faults; store errors are logged and surfaced as a generic
// failure reply.
var (
	// ErrZeroAmount is returned when a transfer of exactly zero is requested
	ErrZeroAmount = errors.New("zero-amount transfer")

	// ErrWithdrawalNotAllowed is returned when a non-privileged actor tries to
	// move a negative amount
	ErrWithdrawalNotAllowed = errors.New("withdrawal not permitted for non-privileged actor")

	// ErrSelfTransfer is returned when sender and receiver are the same account
	ErrSelfTransfer = errors.New("self-transfer")

	// ErrInsufficientFunds is returned when a transfer would push the sender
	// below its minimum-balance floor
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownRecipient is returned when a non-privileged actor targets an
	// account the ledger has never seen
	ErrUnknownRecipient = errors.New("unknown recipient")

	// ErrInvalidAmount is returned when an amount string cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotAuthorized is returned when a non-privileged actor uses a
	// privileged operation
	ErrNotAuthorized = errors.New("not authorized")

	// ErrMissingReceiver is returned when a transaction has no receiver
	ErrMissingReceiver = errors.New("transaction receiver is required")

	// ErrNonPositiveAmount is returned when a transaction would be stored with
	// a non-positive amount; stored amounts are always positive magnitudes
	ErrNonPositiveAmount = errors.New("stored amount must be positive")

	// ErrStoreUnavailable is returned when the underlying storage medium
	// cannot be reached or written
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)

// IsValidation reports whether the error is one of the user-facing rejection
// signals, as opposed to a system fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrWithdrawalNotAllowed) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrUnknownRecipient) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNotAuthorized)
}

// IsStoreError reports whether the error came from the storage medium.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// InsufficientFundsError carries the numbers behind an insufficient-funds
// rejection so tests and logs can see exactly which floor was hit.
type InsufficientFundsError struct {
	Account string
	Amount  int64
	Balance int64
	Floor   int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for %s: sending %d from balance %d would cross floor %d",
		e.Account, e.Amount, e.Balance, e.Floor)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account":    e.Account,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"floor":      e.Floor,
	}
}

// NewInsufficientFundsError creates a detailed insufficient funds error
func NewInsufficientFundsError(account string, amount, balance, floor int64) error {
	return &InsufficientFundsError{
		Account: account,
		Amount:  amount,
		Balance: balance,
		Floor:   floor,
	}
}

// TransferError wraps a failure inside the transfer critical section with the
// transfer's parameters.
type TransferError struct {
	Actor    string
	Sender   string
	Receiver string
	Amount   int64
	Err      error
}

// Error implements the error interface
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %d from %s to %s (actor %s) failed: %v",
		e.Amount, e.Sender, e.Receiver, e.Actor, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transfer_error",
		"actor":      e.Actor,
		"sender":     e.Sender,
		"receiver":   e.Receiver,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(actor, sender, receiver string, amount int64, err error) error {
	return &TransferError{
		Actor:    actor,
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
		Err:      err,
	}
}
