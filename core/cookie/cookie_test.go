package cookie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waferhq/wafer/core/cookie"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("two cookies", func(t *testing.T) {
		t.Parallel()
		got := cookie.Parse("session_id=abc123; theme=dark")
		assert.Equal(t, map[string]string{"session_id": "abc123", "theme": "dark"}, got)
	})

	t.Run("empty header", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, cookie.Parse(""))
	})

	t.Run("malformed entry dropped, others kept", func(t *testing.T) {
		t.Parallel()
		got := cookie.Parse("a=1; garbage; b=2")
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
	})

	t.Run("value may contain equals sign", func(t *testing.T) {
		t.Parallel()
		got := cookie.Parse("token=a=b=c")
		assert.Equal(t, "a=b=c", got["token"])
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		t.Parallel()
		got := cookie.Parse("k=first; k=second")
		assert.Equal(t, "second", got["k"])
	})

	t.Run("whitespace trimmed around entries", func(t *testing.T) {
		t.Parallel()
		got := cookie.Parse("  a=1 ;b=2")
		assert.Equal(t, "1", got["a"])
		assert.Equal(t, "2", got["b"])
	})
}

func TestSetCookie(t *testing.T) {
	t.Parallel()

	got := cookie.SetCookie("tok-123")
	assert.Equal(t, "session_id=tok-123; Path=/; HttpOnly; SameSite=Strict", got)
}
