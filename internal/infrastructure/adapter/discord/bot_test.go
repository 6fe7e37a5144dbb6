package discord

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkulak/moneybot/internal/domain/identity"
	"github.com/pkulak/moneybot/internal/domain/usecase/ledger"
	"github.com/pkulak/moneybot/internal/domain/usecase/statement"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/logger"
	"github.com/pkulak/moneybot/mocks/port/core"
	"github.com/pkulak/moneybot/mocks/port/persistence"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()

	repo := new(persistence.MockLedgerRepository)
	tp := new(core.MockTimeProvider)
	directory := identity.NewDirectory()
	ledgerService := ledger.NewService(repo, directory, tp, logger.NewNoopLogger())
	formatter := statement.NewFormatter(ledgerService, repo, time.UTC)

	bot, err := NewBot("test-token", "channel-1", directory, ledgerService, formatter, logger.NewNoopLogger())
	require.NoError(t, err)
	return bot
}

// capturingTransport records outbound request bodies without touching the
// network.
type capturingTransport struct {
	bodies []string
}

func (c *capturingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		c.bodies = append(c.bodies, string(body))
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader("{}")),
	}, nil
}

func TestConnected(t *testing.T) {
	bot := newTestBot(t)

	// a freshly built session has no gateway connection yet
	assert.False(t, bot.Connected())

	bot.handleConnect(nil, nil)
	assert.True(t, bot.Connected())

	bot.handleDisconnect(nil, nil)
	assert.False(t, bot.Connected())
}

func TestSendFormattedFallsBackToPlain(t *testing.T) {
	bot := newTestBot(t)

	transport := new(capturingTransport)
	bot.session.Client = &http.Client{Transport: transport}

	plain := "On Jun 09 Phil sent you $10.00 for allowance."
	formatted := "<table><tr><td>$10.00</td></tr></table>"

	require.NoError(t, bot.SendFormatted(context.Background(), plain, formatted))

	require.Len(t, transport.bodies, 1)
	assert.Contains(t, transport.bodies[0], plain)
	// json escapes angle brackets, so look for the tag name itself
	assert.NotContains(t, transport.bodies[0], "table")
}
