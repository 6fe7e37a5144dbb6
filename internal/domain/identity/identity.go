package identity

import (
	"strings"
	"unicode"
)

// Well-known accounts. The canonical key for an account is its lowercase
// handle; everything user-facing goes through DisplayName.
const (
	AccountPhil           = "phil"
	AccountGwen           = "gwen"
	AccountChase          = "chase"
	AccountCharlie        = "charlie"
	AccountCharlieSavings = "charlie-savings"
)

// Directory resolves the small, fixed population of the family ledger: alias
// shorthands, the privileged allow-list and the savings accounts that are
// always valid transfer targets.
type Directory struct {
	aliases    map[string]string
	privileged map[string]bool
	savings    map[string]bool
}

// Option configures a Directory.
type Option func(*Directory)

// WithAliases replaces the default alias table.
func WithAliases(aliases map[string]string) Option {
	return func(d *Directory) {
		d.aliases = make(map[string]string, len(aliases))
		for alias, canonical := range aliases {
			d.aliases[strings.ToLower(alias)] = strings.ToLower(canonical)
		}
	}
}

// NewDirectory creates a directory with the household defaults: phil and gwen
// privileged, charlie-savings always a valid target, and two fixed nicknames.
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		aliases: map[string]string{
			"savings": AccountCharlieSavings,
			"dad":     AccountPhil,
		},
		privileged: map[string]bool{
			AccountPhil: true,
			AccountGwen: true,
		},
		savings: map[string]bool{
			AccountCharlieSavings: true,
		},
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Canonical normalizes a raw handle from chat ("@Chase", "savings") into the
// canonical account key.
func (d *Directory) Canonical(raw string) string {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "@"))
	if canonical, ok := d.aliases[key]; ok {
		return canonical
	}
	return key
}

// Resolve picks the account a command refers to: the explicit argument if one
// was given, otherwise the actor themselves.
func (d *Directory) Resolve(actor, argument string) string {
	if strings.TrimSpace(argument) == "" {
		return d.Canonical(actor)
	}
	return d.Canonical(argument)
}

// IsPrivileged reports whether the account may move funds in either
// direction, target unknown accounts and set minimum balances.
func (d *Directory) IsPrivileged(account string) bool {
	return d.privileged[d.Canonical(account)]
}

// IsSavings reports whether the account is on the savings allow-list and
// therefore always counts as known, even before its first transaction.
func (d *Directory) IsSavings(account string) bool {
	return d.savings[d.Canonical(account)]
}

// DisplayName renders a canonical key for humans: "charlie-savings" becomes
// "Charlie Savings".
func DisplayName(account string) string {
	if account == "" {
		return ""
	}

	words := strings.Split(account, "-")
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
