package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// project writes a seed document and a config file naming it.
func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.yaml"), []byte("[a, [b, c], d]\n"), 0o644))
	cfg := filepath.Join(dir, "arbor.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("document = \"seed.yaml\"\n\n[log]\nlevel = \"error\"\n"), 0o644))
	return cfg
}

func TestReplayCommand(t *testing.T) {
	out, err := execute(t, "replay", "--config", project(t), "--keys", "Down Right Space x Esc")
	require.NoError(t, err)

	assert.Equal(t, "(a (b c) [x] d)\n", out)
}

func TestReplayScreen(t *testing.T) {
	out, err := execute(t, "replay", "-c", project(t), "-k", "Down", "--screen")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "(3)", lines[0])
	assert.Equal(t, "([a] (b c) d)", lines[len(lines)-1])
}

func TestReplayDocumentFlagOverridesConfig(t *testing.T) {
	cfg := project(t)
	other := filepath.Join(filepath.Dir(cfg), "other.lua")
	require.NoError(t, os.WriteFile(other, []byte(`return coll{"z"}`), 0o644))

	out, err := execute(t, "replay", "--config", cfg, "--document", other, "--keys", "Down")
	require.NoError(t, err)
	assert.Equal(t, "([z])\n", out)
}

func TestReplayKeysFile(t *testing.T) {
	cfg := project(t)
	keys := filepath.Join(filepath.Dir(cfg), "session.keys")
	require.NoError(t, os.WriteFile(keys, []byte("# recorded\nDown Right\nSpace x Esc\n"), 0o644))

	out, err := execute(t, "replay", "--config", cfg, "--keys-file", keys)
	require.NoError(t, err)
	assert.Equal(t, "(a (b c) [x] d)\n", out)

	_, err = execute(t, "replay", "--config", cfg, "--keys-file", keys, "--keys", "Down")
	assert.Error(t, err, "flags are mutually exclusive")
}

func TestReplayErrors(t *testing.T) {
	cfg := project(t)

	_, err := execute(t, "replay", "--config", cfg)
	assert.ErrorContains(t, err, "--keys or --keys-file")

	_, err = execute(t, "replay", "--config", cfg, "--keys", "Down Bogus")
	assert.Error(t, err)

	_, err = execute(t, "replay", "--config", cfg, "--log-level", "loud", "--keys", "Down")
	assert.ErrorContains(t, err, "log.level")

	_, err = execute(t, "replay", "--config", filepath.Join(t.TempDir(), "missing.toml"), "--keys", "Down")
	assert.ErrorContains(t, err, "config file not found")
}

func TestEditorRequiresTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	cfg := project(t)
	_, err := execute(t, "--config", cfg)
	assert.ErrorIs(t, err, errNotTerminal)

	keys := filepath.Join(filepath.Dir(cfg), "session.keys")
	_, err = execute(t, "--config", cfg, "--record", keys)
	assert.ErrorIs(t, err, errNotTerminal)
	assert.NoFileExists(t, keys, "nothing is recorded without a session")
}

func TestWatchSignalsStopsWithoutSignal(t *testing.T) {
	quits := 0
	stop := watchSignals(func() { quits++ })

	stop()

	assert.Zero(t, quits)
}

func TestWatchSignalsQuitsOnSignal(t *testing.T) {
	quit := make(chan struct{})
	stop := watchSignals(func() { close(quit) })
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))

	select {
	case <-quit:
	case <-time.After(5 * time.Second):
		t.Fatal("quit was not called")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "arbor dev\n"), out)
}
