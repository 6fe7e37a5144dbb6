package statement

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/pkulak/moneybot/internal/domain/entity"
	"github.com/pkulak/moneybot/internal/domain/identity"
	"github.com/pkulak/moneybot/internal/domain/port/persistence"
	"github.com/pkulak/moneybot/internal/domain/usecase/ledger"
)

// DefaultLimit is the number of rows a statement shows unless asked otherwise.
const DefaultLimit = 5

const dateFormat = "Jan 02"

// Entry is one row of a statement: the running balance as of the entry's
// transaction, plus the transaction seen from the statement account's side.
type Entry struct {
	Balance      int64 // balance as of this transaction
	Counterparty string
	Amount       int64 // signed: positive received, negative sent
	Memo         string
	Date         time.Time
}

// Formatter reconstructs a running balance over a recent window of
// transactions and renders it for chat.
type Formatter struct {
	ledger   *ledger.Service
	repo     persistence.LedgerRepository
	location *time.Location
}

// NewFormatter creates a formatter. Dates are displayed in the given
// location.
func NewFormatter(ledgerService *ledger.Service, repo persistence.LedgerRepository, location *time.Location) *Formatter {
	return &Formatter{
		ledger:   ledgerService,
		repo:     repo,
		location: location,
	}
}

// Statement walks the account's most recent transactions newest first. Each
// row shows the balance as of that transaction, so the top row always equals
// the current balance and each older row peels one signed amount back off.
// Read top to bottom it is a correct historical balance trail for any window
// size.
func (f *Formatter) Statement(ctx context.Context, account string, limit int) ([]Entry, error) {
	running, err := f.ledger.Balance(ctx, account)
	if err != nil {
		return nil, err
	}

	transactions, err := f.repo.RecentTransactions(ctx, account, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(transactions))
	for _, transaction := range transactions {
		signed := transaction.SignedAmount(account)

		entries = append(entries, Entry{
			Balance:      running,
			Counterparty: transaction.Counterparty(account),
			Amount:       signed,
			Memo:         transaction.Memo,
			Date:         transaction.Date.In(f.location),
		})

		running -= signed
	}

	return entries, nil
}

// RenderPlain renders entries as sentences, one per line.
func RenderPlain(entries []Entry) string {
	var b strings.Builder

	for _, entry := range entries {
		memo := ""
		if entry.Memo != "" {
			memo = " for " + entry.Memo
		}

		who := identity.DisplayName(entry.Counterparty)

		if entry.Amount < 0 {
			fmt.Fprintf(&b, "On %s you sent %s %s%s.\n",
				entry.Date.Format(dateFormat), who, entity.FormatMinor(-entry.Amount), memo)
		} else if entry.Counterparty == entity.MintedSender {
			fmt.Fprintf(&b, "On %s you received %s%s.\n",
				entry.Date.Format(dateFormat), entity.FormatMinor(entry.Amount), memo)
		} else {
			fmt.Fprintf(&b, "On %s %s sent you %s%s.\n",
				entry.Date.Format(dateFormat), who, entity.FormatMinor(entry.Amount), memo)
		}
	}

	return b.String()
}

// RenderHTML renders entries as a table for transports that support rich
// bodies.
func RenderHTML(entries []Entry) string {
	var b strings.Builder

	b.WriteString("<table>")
	b.WriteString("<tr><th>Balance</th><th>Amount</th><th>To/From</th><th>For</th><th>Date</th></tr>")

	for _, entry := range entries {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			entity.FormatMinor(entry.Balance),
			entity.FormatMinor(entry.Amount),
			html.EscapeString(identity.DisplayName(entry.Counterparty)),
			html.EscapeString(entry.Memo),
			entry.Date.Format(dateFormat))
	}

	b.WriteString("</table>")
	return b.String()
}
