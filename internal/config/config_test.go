package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMergesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nlisten_addr: \":9090\"\n"), 0o644))

	c := New()
	require.NoError(t, c.Load(path))
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, ":9090", c.ListenAddr)
	assert.Equal(t, 100, c.MaxNestingDepth, "unset fields keep their default")
}

func TestLoadEmptyPathIsNoop(t *testing.T) {
	c := New()
	require.NoError(t, c.Load(""))
	assert.Equal(t, New(), c)
}

func TestRegisterFlagsOverridesDefault(t *testing.T) {
	c := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=warn"}))
	assert.Equal(t, "warn", c.LogLevel)
}
