package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "tetris")

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestShowConfigDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, false, ""))
	assert.Equal(t, string(config.DefaultTetrisYAML()), buf.String())
}

func TestShowConfigEffectiveRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 12\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, true, path))

	var cfg config.TetrisConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &cfg))
	assert.Equal(t, 12, cfg.Board.Width)
	assert.NoError(t, cfg.Validate())
}

func TestValidateConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("scoring:\n  lines_per_level: 5\n"), 0o600))
	var buf bytes.Buffer
	require.NoError(t, validateConfig(&buf, good))
	assert.Contains(t, buf.String(), "good.yaml: ok")
	assert.Contains(t, buf.String(), "level every 5 lines")
	assert.Contains(t, buf.String(), "pentomino, tetromino")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board:\n  width: 2\n"), 0o600))
	err := validateConfig(&buf, bad)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
}

func TestPrintTopScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	var buf bytes.Buffer
	now := time.Now()
	require.NoError(t, printTopScores(&buf, store, tetris.IDTetris, 10, now))
	assert.Contains(t, buf.String(), "No scores recorded yet.")

	_, err = store.SaveResult(storage.Result{GameID: tetris.IDTetris, Score: 123456, Level: 7, Lines: 64, Duration: 4 * time.Minute})
	require.NoError(t, err)
	_, err = store.SaveResult(storage.Result{GameID: tetris.IDTetris, Score: 900, Level: 1, Lines: 3, Duration: time.Minute})
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, printTopScores(&buf, store, tetris.IDTetris, 10, now))
	out := buf.String()
	assert.Contains(t, out, "High Scores - Tetris")
	assert.Contains(t, out, "123,456")
	assert.Contains(t, out, "4m0s")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("1st")), bytes.Index(buf.Bytes(), []byte("2nd")))
}

func TestPrintSummary(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveResult(storage.Result{GameID: tetris.IDPentris, Score: 2500, Level: 2, Lines: 12, Duration: time.Minute})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, store, time.Now()))
	out := buf.String()
	assert.Contains(t, out, "best 2,500")
	assert.Contains(t, out, "Tetris      no games yet")
}
