package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/pkulak/moneybot/internal/domain/error"
	"github.com/pkulak/moneybot/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 6, 2, 16, 0, 0, 0, time.UTC)

	t.Run("should stamp the commit instant in UTC", func(t *testing.T) {
		tp := new(core.MockTimeProvider)
		tp.On("Now").Return(fixedTime.In(time.FixedZone("PDT", -7*3600)))

		transaction, err := NewTransaction("phil", "chase", 500, "allowance", tp)

		assert.NoError(t, err)
		assert.Equal(t, fixedTime, transaction.Date)
		assert.Equal(t, time.UTC, transaction.Date.Location())
	})

	t.Run("should reject a missing receiver", func(t *testing.T) {
		tp := new(core.MockTimeProvider)

		_, err := NewTransaction("phil", "", 500, "", tp)
		assert.ErrorIs(t, err, errs.ErrMissingReceiver)
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		tp := new(core.MockTimeProvider)

		_, err := NewTransaction("phil", "chase", 0, "", tp)
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)

		_, err = NewTransaction("phil", "chase", -500, "", tp)
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
	})
}

func TestTransactionPerspective(t *testing.T) {
	transaction := Transaction{Sender: "phil", Receiver: "chase", Amount: 500}

	t.Run("signed amount follows the account's side", func(t *testing.T) {
		assert.Equal(t, int64(500), transaction.SignedAmount("chase"))
		assert.Equal(t, int64(-500), transaction.SignedAmount("phil"))
	})

	t.Run("counterparty is the other side", func(t *testing.T) {
		assert.Equal(t, "phil", transaction.Counterparty("chase"))
		assert.Equal(t, "chase", transaction.Counterparty("phil"))
	})

	t.Run("touches either side only", func(t *testing.T) {
		assert.True(t, transaction.Touches("phil"))
		assert.True(t, transaction.Touches("chase"))
		assert.False(t, transaction.Touches("gwen"))
	})
}

func TestMintedTransaction(t *testing.T) {
	seed := Transaction{Sender: MintedSender, Receiver: "gwen", Amount: SeedAmount, Memo: SeedMemo}

	assert.True(t, seed.Minted())
	assert.Equal(t, int64(SeedAmount), seed.SignedAmount("gwen"))
	assert.Equal(t, "", seed.Counterparty("gwen"))
}
