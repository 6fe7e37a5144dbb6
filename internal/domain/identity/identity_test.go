package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	d := NewDirectory()

	cases := []struct {
		raw  string
		want string
	}{
		{"chase", "chase"},
		{"Chase", "chase"},
		{"@Chase", "chase"},
		{"  @charlie ", "charlie"},
		{"savings", AccountCharlieSavings},
		{"SAVINGS", AccountCharlieSavings},
		{"dad", AccountPhil},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, d.Canonical(c.raw), "raw %q", c.raw)
	}
}

func TestResolve(t *testing.T) {
	d := NewDirectory()

	t.Run("empty argument means the actor", func(t *testing.T) {
		assert.Equal(t, "chase", d.Resolve("Chase", ""))
		assert.Equal(t, "chase", d.Resolve("chase", "   "))
	})

	t.Run("explicit argument wins", func(t *testing.T) {
		assert.Equal(t, "charlie", d.Resolve("chase", "charlie"))
	})
}

func TestPrivileged(t *testing.T) {
	d := NewDirectory()

	assert.True(t, d.IsPrivileged(AccountPhil))
	assert.True(t, d.IsPrivileged("Gwen"))
	assert.False(t, d.IsPrivileged(AccountChase))
	assert.False(t, d.IsPrivileged(AccountCharlie))
	assert.False(t, d.IsPrivileged("stranger"))
}

func TestSavings(t *testing.T) {
	d := NewDirectory()

	assert.True(t, d.IsSavings(AccountCharlieSavings))
	assert.True(t, d.IsSavings("savings"))
	assert.False(t, d.IsSavings(AccountCharlie))
}

func TestWithAliases(t *testing.T) {
	d := NewDirectory(WithAliases(map[string]string{"Kiddo": "Chase"}))

	assert.Equal(t, "chase", d.Canonical("kiddo"))
	// the default table was replaced
	assert.Equal(t, "savings", d.Canonical("savings"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Chase", DisplayName("chase"))
	assert.Equal(t, "Charlie Savings", DisplayName("charlie-savings"))
	assert.Equal(t, "", DisplayName(""))
}
