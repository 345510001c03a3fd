package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ryanvolz/radioconda/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoAndWarn(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("locking radioconda-linux-64")
	lg.Warn("constructor not found in builder lock")

	assert.Equal(t, "locking radioconda-linux-64\n! constructor not found in builder lock\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(zerr.Wrap(errors.New("conda-lock exited with status 1"), "resolve failed"))

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_JSONModeKeepsOutput(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.SetJSON(true)
	lg.SetJSON(false)
	lg.Info("plain again")

	assert.Equal(t, "plain again\n", buf.String())
}
