package entity

import (
	"time"

	errs "github.com/pkulak/moneybot/internal/domain/error"
	tport "github.com/pkulak/moneybot/internal/domain/port/core"
)

// MintedSender is the sender value of a transaction that creates money out of
// nothing (the seed transactions). An empty sender means minted.
const MintedSender = ""

// SeedMemo annotates the two transactions written on first-run initialization.
const SeedMemo = "seed value"

// SeedAmount is the starting balance minted for each seed account, in minor
// units.
const SeedAmount = 100_000

// Transaction is one immutable row of the append-only ledger. The log of
// transactions is the sole source of truth; balances are always derived from
// it and never stored.
type Transaction struct {
	ID       uint64    // assigned by the store, monotonically increasing
	Sender   string    // empty means minted (seed/system-issued funds)
	Receiver string    // always present
	Amount   int64     // minor units, always positive; direction lives in Sender/Receiver
	Date     time.Time // UTC commit instant
	Memo     string    // optional annotation
}

// NewTransaction builds an unsaved transaction with basic validation. Amount
// must already be a positive magnitude; direction is expressed only through
// the sender and receiver.
func NewTransaction(sender, receiver string, amount int64, memo string, timeProvider tport.TimeProvider) (*Transaction, error) {
	if receiver == "" {
		return nil, errs.ErrMissingReceiver
	}
	if amount <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}

	return &Transaction{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
		Date:     timeProvider.Now().UTC(),
		Memo:     memo,
	}, nil
}

// Minted reports whether this transaction created funds rather than moving
// them between accounts.
func (t *Transaction) Minted() bool {
	return t.Sender == MintedSender
}

// SignedAmount returns the amount from the given account's point of view:
// positive if the account received the funds, negative if it sent them.
func (t *Transaction) SignedAmount(account string) int64 {
	if t.Receiver == account {
		return t.Amount
	}
	return -t.Amount
}

// Counterparty returns the account on the other side of the transaction from
// the given account. For minted funds there is no counterparty and the empty
// string is returned.
func (t *Transaction) Counterparty(account string) string {
	if t.Receiver == account {
		return t.Sender
	}
	return t.Receiver
}

// Touches reports whether the account appears on either side.
func (t *Transaction) Touches(account string) bool {
	return t.Sender == account || t.Receiver == account
}
