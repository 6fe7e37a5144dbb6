package persistence

import (
	"context"

	"github.com/pkulak/moneybot/internal/domain/entity"
)

// LedgerRepository is the contract for the append-only transaction log and
// the minimum-balance upsert table. All methods are safe for concurrent use;
// the implementation serializes access to the single underlying connection.
type LedgerRepository interface {
	// Append durably persists a new transaction and returns its assigned id.
	// A crash leaves either the full record or none of it.
	Append(ctx context.Context, transaction *entity.Transaction) (uint64, error)

	// SumSent returns the total amount the account has sent, 0 if none.
	SumSent(ctx context.Context, account string) (int64, error)

	// SumReceived returns the total amount the account has received, 0 if none.
	SumReceived(ctx context.Context, account string) (int64, error)

	// MinimumBalance returns the account's floor, defaulting to 0.
	MinimumBalance(ctx context.Context, account string) (int64, error)

	// SetMinimumBalance upserts the account's floor; idempotent.
	SetMinimumBalance(ctx context.Context, account string, floor int64) error

	// RecentTransactions returns the most recent transactions touching the
	// account, newest first, ordered by date with ties broken by id.
	RecentTransactions(ctx context.Context, account string, limit int) ([]entity.Transaction, error)

	// AccountKnown reports whether the account appears as sender or receiver
	// in at least one transaction.
	AccountKnown(ctx context.Context, account string) (bool, error)
}
