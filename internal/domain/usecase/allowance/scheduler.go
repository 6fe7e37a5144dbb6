package allowance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkulak/moneybot/internal/domain/entity"
	"github.com/pkulak/moneybot/internal/domain/identity"
	"github.com/pkulak/moneybot/internal/domain/port/chat"
	coreport "github.com/pkulak/moneybot/internal/domain/port/core"
	"github.com/pkulak/moneybot/internal/domain/usecase/ledger"
)

const (
	// Memo carried by every allowance transaction.
	Memo = "allowance"

	// disbursements happen at 09:00 local time on Fridays
	disburseHour = 9

	// after a disbursement the loop pauses before recomputing the next due
	// instant, so clock or arithmetic edge effects cannot land it on the same
	// Friday twice
	postDisburseBuffer = time.Minute
)

// Payment is one fixed weekly disbursement.
type Payment struct {
	Recipient string
	Amount    int64 // minor units
}

// Scheduler wakes every Friday at 09:00 in its reference timezone and moves
// the week's allowances through the same transfer service the interactive
// commands use. It alternates between waiting and disbursing forever; the
// only way out is process shutdown.
type Scheduler struct {
	ledger       *ledger.Service
	messenger    chat.Messenger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	location     *time.Location
	source       string
	payments     []Payment
}

// NewScheduler creates a scheduler paying the given payments from the source
// account.
func NewScheduler(
	ledgerService *ledger.Service,
	messenger chat.Messenger,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	location *time.Location,
	source string,
	payments []Payment,
) *Scheduler {
	return &Scheduler{
		ledger:       ledgerService,
		messenger:    messenger,
		timeProvider: timeProvider,
		logger:       logger,
		location:     location,
		source:       source,
		payments:     payments,
	}
}

// NextDisbursement returns the next Friday 09:00:00 in loc at or after now.
// If now is a Friday past 09:00 local time, it rolls to the following Friday,
// which keeps the cadence at exactly one disbursement per seven-day period no
// matter when the scheduler starts.
func NextDisbursement(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	morning := time.Date(local.Year(), local.Month(), local.Day(), disburseHour, 0, 0, 0, loc)

	days := (int(time.Friday) - int(local.Weekday()) + 7) % 7
	due := morning.AddDate(0, 0, days)

	if due.Before(local) {
		due = due.AddDate(0, 0, 7)
	}
	return due
}

// Run loops waiting and disbursing until the context is canceled. A failed
// transfer or announcement never stops the loop: a missed allowance is
// recoverable, a dead scheduler is not.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		now := s.timeProvider.Now()
		due := NextDisbursement(now, s.location)
		wait := due.Sub(now)

		s.logger.Info("allowance due", map[string]any{
			"due":     due,
			"minutes": int(wait.Minutes()),
		})

		select {
		case <-ctx.Done():
			return
		case <-s.timeProvider.After(wait):
		}

		if err := s.disburse(ctx); err != nil {
			s.logger.Error("could not send allowance", map[string]any{
				"error": err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			return
		case <-s.timeProvider.After(postDisburseBuffer):
		}
	}
}

// disburse performs the fixed transfers, then announces them. A transfer
// failure aborts and is reported to the caller; an announcement failure is
// only logged, because the transactions are already durable and only the
// notification was lost.
func (s *Scheduler) disburse(ctx context.Context) error {
	parts := make([]string, 0, len(s.payments))

	for _, payment := range s.payments {
		if _, err := s.ledger.Transfer(ctx, s.source, s.source, payment.Recipient, payment.Amount, Memo); err != nil {
			return err
		}

		parts = append(parts, fmt.Sprintf("%s to %s",
			entity.FormatMinor(payment.Amount), identity.DisplayName(payment.Recipient)))
	}

	if err := s.messenger.Send(ctx, fmt.Sprintf("Sent %s.", strings.Join(parts, " and "))); err != nil {
		s.logger.Error("allowance sent but announcement failed", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
