package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	c, err := Open(Config{})
	require.NoError(t, err)
	defer c.Close()

	key := Key("# hi\n", "v1")
	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok, "miss before any Set")

	require.NoError(t, c.Set(key, "<h1>hi</h1>\n"))

	html, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "<h1>hi</h1>\n", html)
}

func TestKeyDiffersByFingerprint(t *testing.T) {
	a := Key("same text", "opts-a")
	b := Key("same text", "opts-b")
	assert.NotEqual(t, a, b)
}
