package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/32bitkid/gedit/command"
	"github.com/32bitkid/gedit/internal/config"
)

func TestRun(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)

	var out bytes.Buffer
	in := strings.NewReader("I 3 2\nI 2 1\nL 2 1 Q\nS\nX\n")

	cfg := config.Default()
	cfg.AssumeYes = true
	require.NoError(t, run(cfg, log, in, &out))

	assert.True(t, strings.HasPrefix(out.String(), banner))
	assert.Contains(t, out.String(), command.Prompt+"OQ\n")
	assert.True(t, strings.HasSuffix(out.String(), command.Farewell))
	assert.NotContains(t, out.String(), "Are you sure")

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	session := entries[0].Data["session"]
	assert.NotEmpty(t, session)
	for _, e := range entries {
		assert.Equal(t, session, e.Data["session"])
	}
	assert.Equal(t, "session closed", hook.LastEntry().Message)
}

func TestRunColor(t *testing.T) {
	log, _ := test.NewNullLogger()

	var out bytes.Buffer
	cfg := config.Default()
	cfg.Banner = false
	cfg.Color = true
	require.NoError(t, run(cfg, log, strings.NewReader("I 1 1\nS\n"), &out))

	assert.True(t, strings.HasPrefix(out.String(), command.Prompt))
	assert.Contains(t, out.String(), "\x1b[48;2;255;255;255m")
}
