package ledger

import (
	"context"
	"sync"

	"github.com/pkulak/moneybot/internal/domain/entity"
	errs "github.com/pkulak/moneybot/internal/domain/error"
	"github.com/pkulak/moneybot/internal/domain/identity"
	coreport "github.com/pkulak/moneybot/internal/domain/port/core"
	"github.com/pkulak/moneybot/internal/domain/port/persistence"
)

// Service is the single code path for reading balances and moving money.
// Interactive commands and the allowance scheduler both go through it, so the
// policy checks below apply to every transfer in the system.
type Service struct {
	repo         persistence.LedgerRepository
	directory    *identity.Directory
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	// mu makes the balance-check-then-append sequence one critical section;
	// without it two concurrent transfers could both pass the floor check
	// against a stale balance before either commits.
	mu sync.Mutex
}

// NewService creates a ledger service.
func NewService(
	repo persistence.LedgerRepository,
	directory *identity.Directory,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:         repo,
		directory:    directory,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Balance derives the account's current balance from the full transaction
// log. It is recomputed on every call; caching it across a write would let it
// drift from the log, which is a correctness bug here, not a performance
// nuisance.
func (s *Service) Balance(ctx context.Context, account string) (int64, error) {
	received, err := s.repo.SumReceived(ctx, account)
	if err != nil {
		return 0, err
	}

	sent, err := s.repo.SumSent(ctx, account)
	if err != nil {
		return 0, err
	}

	return received - sent, nil
}

// MinimumBalance returns the account's floor, 0 when none has been set.
func (s *Service) MinimumBalance(ctx context.Context, account string) (int64, error) {
	return s.repo.MinimumBalance(ctx, account)
}

// SetMinimumBalance upserts the account's floor. Only privileged actors may
// do this; the floor may be negative, allowing the account to overdraw up to
// it.
func (s *Service) SetMinimumBalance(ctx context.Context, actor, account string, floor int64) error {
	if !s.directory.IsPrivileged(actor) {
		return errs.ErrNotAuthorized
	}

	if err := s.repo.SetMinimumBalance(ctx, account, floor); err != nil {
		return err
	}

	s.logger.Info("minimum balance updated", map[string]any{
		"actor":   actor,
		"account": account,
		"floor":   floor,
	})
	return nil
}

// Known reports whether the account has ever appeared in the log or sits on
// the savings allow-list.
func (s *Service) Known(ctx context.Context, account string) (bool, error) {
	if s.directory.IsSavings(account) {
		return true, nil
	}
	return s.repo.AccountKnown(ctx, account)
}

// Transfer validates and commits a movement of funds. The checks run in a
// fixed order and the first failure wins, each with its own rejection signal:
//
//  1. a zero amount is a no-op and writes nothing
//  2. a negative amount is a withdrawal, allowed only for privileged actors
//  3. self-transfers are rejected regardless of privilege
//  4. non-privileged transfers may not push the sender below its floor
//  5. non-privileged transfers may only target known accounts
//
// A negative amount is normalized before commit: the sender and receiver
// swap roles and the stored transaction carries the positive magnitude, so
// the log never contains a negative amount.
func (s *Service) Transfer(ctx context.Context, actor, sender, receiver string, amount int64, memo string) (*entity.Transaction, error) {
	if amount == 0 {
		return nil, errs.ErrZeroAmount
	}

	privileged := s.directory.IsPrivileged(actor)
	if amount < 0 && !privileged {
		return nil, errs.ErrWithdrawalNotAllowed
	}

	if sender == receiver {
		return nil, errs.ErrSelfTransfer
	}

	from, to := sender, receiver
	if amount < 0 {
		from, to = receiver, sender
		amount = -amount
	}

	// everything from the first read to the append is one critical section
	s.mu.Lock()
	defer s.mu.Unlock()

	if !privileged {
		balance, err := s.Balance(ctx, sender)
		if err != nil {
			return nil, s.storeFailure(actor, sender, receiver, amount, err)
		}

		floor, err := s.repo.MinimumBalance(ctx, sender)
		if err != nil {
			return nil, s.storeFailure(actor, sender, receiver, amount, err)
		}

		if balance-amount < floor {
			return nil, errs.NewInsufficientFundsError(sender, amount, balance, floor)
		}

		known, err := s.Known(ctx, receiver)
		if err != nil {
			return nil, s.storeFailure(actor, sender, receiver, amount, err)
		}
		if !known {
			return nil, errs.ErrUnknownRecipient
		}
	}

	transaction, err := entity.NewTransaction(from, to, amount, memo, s.timeProvider)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Append(ctx, transaction)
	if err != nil {
		return nil, s.storeFailure(actor, sender, receiver, amount, err)
	}
	transaction.ID = id

	s.logger.Info("transfer committed", map[string]any{
		"id":       id,
		"actor":    actor,
		"sender":   from,
		"receiver": to,
		"amount":   amount,
	})

	return transaction, nil
}

// storeFailure logs a storage fault during a transfer and wraps it with the
// transfer's parameters. Validation rejections never come through here.
func (s *Service) storeFailure(actor, sender, receiver string, amount int64, err error) error {
	wrapped := errs.NewTransferError(actor, sender, receiver, amount, err)

	var fields map[string]any
	if logged, ok := wrapped.(*errs.TransferError); ok {
		fields = logged.LogFields()
	}
	s.logger.Error("transfer failed on store access", fields)

	return wrapped
}
