// Package command turns raw chat text into a closed set of command variants.
// Parsing happens exactly once, here; everything downstream dispatches with an
// exhaustive type switch, so adding a command is a compile-time-checked change.
package command

import (
	"strings"

	"github.com/pkulak/moneybot/internal/domain/entity"
)

// Command is one parsed chat command.
type Command interface {
	isCommand()
}

// Balance asks for an account's current balance. Account is the raw argument
// and may be empty, meaning the actor's own account.
type Balance struct {
	Account string
}

// Send moves Amount minor units from the actor to Receiver.
type Send struct {
	Amount   int64
	Receiver string
	Memo     string
}

// SetMin updates an account's minimum-balance floor. Privileged only.
type SetMin struct {
	Account string
	Amount  int64
}

// GetMin reads an account's minimum-balance floor.
type GetMin struct {
	Account string
}

// Ledger asks for a recent-transactions statement.
type Ledger struct {
	Account string
	Plain   bool
}

// Invalid is a recognized verb with arguments the parser could not accept.
// Reply is the text to send back.
type Invalid struct {
	Reply string
}

// Unknown is any message that is not a command at all; it gets no reply.
type Unknown struct{}

func (Balance) isCommand() {}
func (Send) isCommand()    {}
func (SetMin) isCommand()  {}
func (GetMin) isCommand()  {}
func (Ledger) isCommand()  {}
func (Invalid) isCommand() {}
func (Unknown) isCommand() {}

// Parse classifies a chat message. Verbs match case-insensitively and
// tolerate a trailing period ("send. 5 to chase"), a habit autocorrect
// introduced in the original room.
func Parse(text string) Command {
	text = strings.TrimSpace(text)

	if rest, ok := match("set min", text); ok {
		return parseSetMin(rest)
	}
	if rest, ok := match("get min", text); ok {
		return parseGetMin(rest)
	}
	if rest, ok := match("balance", text); ok {
		return Balance{Account: rest}
	}
	if rest, ok := match("send", text); ok {
		return parseSend(rest)
	}
	if rest, ok := match("ledger", text); ok {
		return parseLedger(rest)
	}

	return Unknown{}
}

// match reports whether the message starts with the verb (or the verb plus a
// period) and returns the remainder.
func match(verb, text string) (string, bool) {
	lower := strings.ToLower(text)

	if lower == verb || lower == verb+"." {
		return "", true
	}
	if strings.HasPrefix(lower, verb+" ") {
		return strings.TrimSpace(text[len(verb)+1:]), true
	}
	if strings.HasPrefix(lower, verb+". ") {
		return strings.TrimSpace(text[len(verb)+2:]), true
	}

	return "", false
}

func parseSend(rest string) Command {
	// peel the memo off first so it never collides with the arguments
	head, memo, _ := strings.Cut(rest, " for ")

	var args []string
	for _, word := range strings.Fields(head) {
		if strings.EqualFold(word, "to") {
			continue
		}
		args = append(args, word)
	}

	if len(args) < 2 {
		return Invalid{Reply: "Usage: send [amount] to [user]."}
	}

	// amount and receiver may come in either order
	if amount, err := entity.ParseAmount(args[0]); err == nil {
		return Send{Amount: amount, Receiver: args[1], Memo: strings.TrimSpace(memo)}
	}
	if amount, err := entity.ParseAmount(args[1]); err == nil {
		return Send{Amount: amount, Receiver: args[0], Memo: strings.TrimSpace(memo)}
	}

	return Invalid{Reply: "Please use a valid amount."}
}

func parseSetMin(rest string) Command {
	args := strings.Fields(rest)
	if len(args) != 2 {
		return Invalid{Reply: "Usage: set min [user] [amount]."}
	}

	amount, err := entity.ParseAmount(args[1])
	if err != nil {
		return Invalid{Reply: "Invalid amount: " + args[1]}
	}

	return SetMin{Account: args[0], Amount: amount}
}

func parseGetMin(rest string) Command {
	args := strings.Fields(rest)
	if len(args) != 1 {
		return Invalid{Reply: "Usage: get min [user]."}
	}
	return GetMin{Account: args[0]}
}

func parseLedger(rest string) Command {
	var cmd Ledger
	for _, word := range strings.Fields(rest) {
		if strings.EqualFold(word, "plain") {
			cmd.Plain = true
		} else if cmd.Account == "" {
			cmd.Account = word
		}
	}
	return cmd
}
