package discord

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/pkulak/moneybot/internal/domain/command"
	"github.com/pkulak/moneybot/internal/domain/entity"
	errs "github.com/pkulak/moneybot/internal/domain/error"
	"github.com/pkulak/moneybot/internal/domain/identity"
	coreport "github.com/pkulak/moneybot/internal/domain/port/core"
	"github.com/pkulak/moneybot/internal/domain/usecase/ledger"
	"github.com/pkulak/moneybot/internal/domain/usecase/statement"
)

// Bot is the chat transport adapter: it turns discord messages into parsed
// commands, runs each one on its own worker goroutine, and writes replies
// back to the channel. It is also the Messenger the allowance scheduler
// announces through.
type Bot struct {
	session   *discordgo.Session
	channelID string
	directory *identity.Directory
	ledger    *ledger.Service
	formatter *statement.Formatter
	logger    coreport.Logger

	// connected tracks the gateway session, flipped by the Connect and
	// Disconnect events; the session struct itself exists from construction
	// and says nothing about the wire.
	connected atomic.Bool
}

// NewBot creates a discord session wired to the ledger. The session is not
// opened until Start.
func NewBot(
	token, channelID string,
	directory *identity.Directory,
	ledgerService *ledger.Service,
	formatter *statement.Formatter,
	logger coreport.Logger,
) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session:   session,
		channelID: channelID,
		directory: directory,
		ledger:    ledgerService,
		formatter: formatter,
		logger:    logger,
	}

	session.AddHandler(bot.handleMessage)
	session.AddHandler(bot.handleConnect)
	session.AddHandler(bot.handleDisconnect)
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	return bot, nil
}

// Start opens the discord connection.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}
	return nil
}

// Stop closes the discord connection.
func (b *Bot) Stop() {
	_ = b.session.Close()
	b.connected.Store(false)
}

// Connected reports whether the gateway session is up.
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

func (b *Bot) handleConnect(_ *discordgo.Session, _ *discordgo.Connect) {
	b.connected.Store(true)
	b.logger.Info("gateway connected", nil)
}

func (b *Bot) handleDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.connected.Store(false)
	b.logger.Warn("gateway disconnected", nil)
}

// Send delivers a plain-text message to the main channel.
func (b *Bot) Send(_ context.Context, text string) error {
	_, err := b.session.ChannelMessageSend(b.channelID, text)
	return err
}

// SendFormatted falls back to the plain body: discord renders neither HTML
// nor the table inside it, and the plain rendering reads well on its own. A
// transport with a rich body format would send the formatted one.
func (b *Bot) SendFormatted(ctx context.Context, plain, formatted string) error {
	return b.Send(ctx, plain)
}

// handleMessage filters inbound events and hands real commands to a worker.
// Nothing here may block: this callback shares its life with the event
// stream, and a slow disk write must never stall the whole bot.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return // the bot's own messages
	}
	if m.ChannelID != b.channelID {
		return
	}

	cmd := command.Parse(m.Content)
	if _, ok := cmd.(command.Unknown); ok {
		return // ordinary chatter, not ours
	}

	actor := b.directory.Canonical(m.Author.Username)

	go b.handle(context.Background(), actor, cmd)
}

// handle executes one parsed command and replies. The type switch is
// exhaustive over the command set.
func (b *Bot) handle(ctx context.Context, actor string, cmd command.Command) {
	commandID := uuid.NewString()

	b.logger.Debug("handling command", map[string]any{
		"command_id": commandID,
		"actor":      actor,
		"command":    fmt.Sprintf("%T", cmd),
	})

	switch c := cmd.(type) {
	case command.Balance:
		b.handleBalance(ctx, actor, c)
	case command.Send:
		b.handleSend(ctx, actor, c)
	case command.SetMin:
		b.handleSetMin(ctx, actor, c)
	case command.GetMin:
		b.handleGetMin(ctx, actor, c)
	case command.Ledger:
		b.handleLedger(ctx, actor, c)
	case command.Invalid:
		b.reply(ctx, c.Reply)
	case command.Unknown:
		// filtered before dispatch
	}
}

func (b *Bot) handleBalance(ctx context.Context, actor string, c command.Balance) {
	account := b.directory.Resolve(actor, c.Account)

	balance, err := b.ledger.Balance(ctx, account)
	if err != nil {
		b.storeFault(ctx, err)
		return
	}

	b.reply(ctx, entity.FormatMinor(balance))
}

func (b *Bot) handleSend(ctx context.Context, actor string, c command.Send) {
	receiver := b.directory.Canonical(c.Receiver)

	_, err := b.ledger.Transfer(ctx, actor, actor, receiver, c.Amount, c.Memo)
	if err != nil {
		b.rejectOrFault(ctx, receiver, err)
		return
	}

	confirmation := fmt.Sprintf("Sent %s to %s", entity.FormatMinor(c.Amount), identity.DisplayName(receiver))
	if c.Memo != "" {
		confirmation += " for " + c.Memo
	}
	b.reply(ctx, confirmation+".")
}

func (b *Bot) handleSetMin(ctx context.Context, actor string, c command.SetMin) {
	account := b.directory.Canonical(c.Account)

	if err := b.ledger.SetMinimumBalance(ctx, actor, account, c.Amount); err != nil {
		if errors.Is(err, errs.ErrNotAuthorized) {
			b.reply(ctx, "You are not allowed to set minimum balances.")
			return
		}
		b.storeFault(ctx, err)
		return
	}

	b.reply(ctx, fmt.Sprintf("Set minimum balance for %s to %s.",
		identity.DisplayName(account), entity.FormatMinor(c.Amount)))
}

func (b *Bot) handleGetMin(ctx context.Context, actor string, c command.GetMin) {
	account := b.directory.Canonical(c.Account)

	floor, err := b.ledger.MinimumBalance(ctx, account)
	if err != nil {
		b.storeFault(ctx, err)
		return
	}

	b.reply(ctx, entity.FormatMinor(floor))
}

func (b *Bot) handleLedger(ctx context.Context, actor string, c command.Ledger) {
	account := b.directory.Resolve(actor, c.Account)

	entries, err := b.formatter.Statement(ctx, account, statement.DefaultLimit)
	if err != nil {
		b.storeFault(ctx, err)
		return
	}

	plain := statement.RenderPlain(entries)
	if c.Plain {
		b.reply(ctx, plain)
		return
	}

	if err := b.SendFormatted(ctx, plain, statement.RenderHTML(entries)); err != nil {
		b.logger.Error("failed to send statement", map[string]any{
			"error": err.Error(),
		})
	}
}

// rejectOrFault translates a transfer error into the matching chat reply.
// Validation rejections get their specific wording; anything else is a system
// fault.
func (b *Bot) rejectOrFault(ctx context.Context, receiver string, err error) {
	switch {
	case errors.Is(err, errs.ErrZeroAmount):
		b.reply(ctx, "Wait... what's the point of that?")
	case errors.Is(err, errs.ErrWithdrawalNotAllowed):
		b.reply(ctx, "You are not allowed to take money, only send it.")
	case errors.Is(err, errs.ErrSelfTransfer):
		b.reply(ctx, "So... you want to send money to yourself, from yourself?")
	case errors.Is(err, errs.ErrInsufficientFunds):
		b.reply(ctx, "You don't have enough money!")
	case errors.Is(err, errs.ErrUnknownRecipient):
		b.reply(ctx, fmt.Sprintf("%s isn't a valid user.", identity.DisplayName(receiver)))
	default:
		b.storeFault(ctx, err)
	}
}

// storeFault logs a system fault and sends the generic failure reply.
func (b *Bot) storeFault(ctx context.Context, err error) {
	b.logger.Error("command failed on store access", map[string]any{
		"error": err.Error(),
	})
	b.reply(ctx, "Something went wrong. Please try again.")
}

func (b *Bot) reply(ctx context.Context, text string) {
	if err := b.Send(ctx, text); err != nil {
		b.logger.Error("failed to send reply", map[string]any{
			"error": err.Error(),
		})
	}
}
