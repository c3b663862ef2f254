package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ulink/internal/adapters/logger"
	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Debug("not shown")
	lg.Info("generated 2 roots")
	lg.Warn("skipping root Assets")

	assert.Equal(t, "generated 2 roots\n! skipping root Assets\n", buf.String())
}

func TestLogger_SetVerbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetVerbose(true)

	lg.Debug("scan took 3ms")
	assert.Equal(t, "● scan took 3ms\n", buf.String())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("scan took 3ms")
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	cause := zerr.Wrap(errors.New("rename denied"), domain.ErrArtifactReplaceFailed.Error())
	err := zerr.With(zerr.Wrap(cause, "skipping root"), "root", "Assets/UI")

	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetJSON(true)

	lg.Info("generated")
	lg.Error(errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "generated", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_SetOutputKeepsJSON(t *testing.T) {
	lg := logger.New()
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("still json")

	assert.True(t, strings.HasPrefix(buf.String(), "{"))
}

func TestLogger_SetFile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	console := &bytes.Buffer{}
	file := &bytes.Buffer{}

	lg := logger.New()
	lg.SetOutput(console)
	lg.SetFile(file)

	lg.Debug("file only")
	lg.Info("both")

	assert.Equal(t, "both\n", console.String())

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"file only"`)
	assert.Contains(t, lines[1], `"msg":"both"`)

	lg.SetFile(nil)
	lg.Info("console again")
	assert.Len(t, strings.Split(strings.TrimSpace(file.String()), "\n"), 2)
}

func TestNewFileSink(t *testing.T) {
	assert.Nil(t, logger.NewFileSink(domain.LogSettings{}, t.TempDir()))

	dir := t.TempDir()
	sink := logger.NewFileSink(domain.LogSettings{File: "ulink.log", MaxSize: 1}, dir)
	require.NotNil(t, sink)

	_, err := sink.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())
	assert.FileExists(t, dir+"/ulink.log")
}
