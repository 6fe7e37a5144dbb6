package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkulak/moneybot/internal/domain/entity"
	errs "github.com/pkulak/moneybot/internal/domain/error"
	"github.com/pkulak/moneybot/internal/domain/identity"
	"github.com/pkulak/moneybot/internal/domain/usecase/ledger"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/logger"
	"github.com/pkulak/moneybot/mocks/port/core"
)

func newTimeProvider(t *testing.T) *core.MockTimeProvider {
	t.Helper()

	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(time.Date(2023, 6, 2, 16, 0, 0, 0, time.UTC))
	return tp
}

func openTestRepository(t *testing.T) (*LedgerRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	repo, err := Open(path, newTimeProvider(t), logger.NewNoopLogger())
	require.NoError(t, err)
	return repo, path
}

func TestOpenSeedsOnce(t *testing.T) {
	ctx := context.Background()
	repo, path := openTestRepository(t)

	for _, account := range []string{identity.AccountGwen, identity.AccountPhil} {
		received, err := repo.SumReceived(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(entity.SeedAmount), received, account)
	}

	// reopening the same file must not mint again
	reopened, err := Open(path, newTimeProvider(t), logger.NewNoopLogger())
	require.NoError(t, err)

	received, err := reopened.SumReceived(ctx, identity.AccountPhil)
	require.NoError(t, err)
	assert.Equal(t, int64(entity.SeedAmount), received)

	recent, err := reopened.RecentTransactions(ctx, identity.AccountPhil, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.SeedMemo, recent[0].Memo)
	assert.Equal(t, entity.MintedSender, recent[0].Sender)
}

func TestSums(t *testing.T) {
	ctx := context.Background()
	repo, _ := openTestRepository(t)
	tp := newTimeProvider(t)

	for _, transfer := range []struct {
		sender, receiver string
		amount           int64
	}{
		{"phil", "chase", 1000},
		{"phil", "chase", 250},
		{"chase", "charlie", 300},
	} {
		transaction, err := entity.NewTransaction(transfer.sender, transfer.receiver, transfer.amount, "", tp)
		require.NoError(t, err)
		_, err = repo.Append(ctx, transaction)
		require.NoError(t, err)
	}

	sent, err := repo.SumSent(ctx, "chase")
	require.NoError(t, err)
	assert.Equal(t, int64(300), sent)

	received, err := repo.SumReceived(ctx, "chase")
	require.NoError(t, err)
	assert.Equal(t, int64(1250), received)

	// accounts absent from the log sum to zero rather than erroring
	sent, err = repo.SumSent(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), sent)
}

func TestRecentTransactionsOrdering(t *testing.T) {
	ctx := context.Background()
	repo, _ := openTestRepository(t)

	base := time.Date(2023, 6, 5, 12, 0, 0, 0, time.UTC)
	dates := []time.Time{
		base,
		base.AddDate(0, 0, 1),
		base.AddDate(0, 0, 1), // same instant as the previous row
		base.AddDate(0, 0, 2),
	}

	var ids []uint64
	for i, date := range dates {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(date)

		transaction, err := entity.NewTransaction("phil", "chase", int64(100+i), "", tp)
		require.NoError(t, err)

		id, err := repo.Append(ctx, transaction)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	recent, err := repo.RecentTransactions(ctx, "chase", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// newest date first, equal dates broken by insertion order
	assert.Equal(t, ids[3], recent[0].ID)
	assert.Equal(t, ids[2], recent[1].ID)
	assert.Equal(t, ids[1], recent[2].ID)

	// the window only includes rows touching the account
	other, err := repo.RecentTransactions(ctx, "charlie", 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAccountKnown(t *testing.T) {
	ctx := context.Background()
	repo, _ := openTestRepository(t)
	tp := newTimeProvider(t)

	known, err := repo.AccountKnown(ctx, "chase")
	require.NoError(t, err)
	assert.False(t, known)

	transaction, err := entity.NewTransaction("phil", "chase", 100, "", tp)
	require.NoError(t, err)
	_, err = repo.Append(ctx, transaction)
	require.NoError(t, err)

	for _, account := range []string{"chase", "phil", "gwen"} {
		known, err = repo.AccountKnown(ctx, account)
		require.NoError(t, err)
		assert.True(t, known, account)
	}
}

func TestSetMinimumBalanceUpsert(t *testing.T) {
	ctx := context.Background()
	repo, _ := openTestRepository(t)

	floor, err := repo.MinimumBalance(ctx, "chase")
	require.NoError(t, err)
	assert.Equal(t, int64(0), floor)

	require.NoError(t, repo.SetMinimumBalance(ctx, "chase", -2000))
	require.NoError(t, repo.SetMinimumBalance(ctx, "chase", -2000))
	require.NoError(t, repo.SetMinimumBalance(ctx, "chase", -500))

	floor, err = repo.MinimumBalance(ctx, "chase")
	require.NoError(t, err)
	assert.Equal(t, int64(-500), floor)
}

// Walks a fresh store through a realistic week of activity end to end, with
// the transfer policy layered on top of the real database.
func TestLedgerScenario(t *testing.T) {
	ctx := context.Background()
	repo, _ := openTestRepository(t)

	service := ledger.NewService(repo, identity.NewDirectory(), newTimeProvider(t), logger.NewNoopLogger())

	// allowances make chase and charlie known
	_, err := service.Transfer(ctx, "phil", "phil", "chase", 1000, "allowance")
	require.NoError(t, err)
	_, err = service.Transfer(ctx, "phil", "phil", "charlie", 500, "allowance")
	require.NoError(t, err)

	// the kids can now pay each other
	_, err = service.Transfer(ctx, "chase", "chase", "charlie", 250, "candy")
	require.NoError(t, err)

	// but not overdraw
	_, err = service.Transfer(ctx, "chase", "chase", "charlie", 751, "")
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	// until a parent grants a negative floor
	require.NoError(t, service.SetMinimumBalance(ctx, "gwen", "chase", -100))
	_, err = service.Transfer(ctx, "chase", "chase", "charlie", 751, "")
	require.NoError(t, err)

	// savings deposits work without any prior history on the savings account
	_, err = service.Transfer(ctx, "charlie", "charlie", identity.AccountCharlieSavings, 1000, "")
	require.NoError(t, err)

	balances := map[string]int64{
		"phil":                         entity.SeedAmount - 1500,
		"gwen":                         entity.SeedAmount,
		"chase":                        -1,
		"charlie":                      501,
		identity.AccountCharlieSavings: 1000,
	}
	for account, want := range balances {
		balance, err := service.Balance(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, want, balance, account)
	}

	// every minor unit is conserved: the log only ever moved money around
	var total int64
	for account := range balances {
		balance, _ := service.Balance(ctx, account)
		total += balance
	}
	assert.Equal(t, int64(2*entity.SeedAmount), total)
}
