package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kid-maze/config"
)

var errClosed = errors.New("stdout closed")

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) { return 0, errClosed }

func TestDumpConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpConfig(&buf, config.Default()))
	assert.Contains(t, buf.String(), "[maze]")
	assert.Contains(t, buf.String(), "size = 15")
}

func TestDumpConfigWriteError(t *testing.T) {
	err := dumpConfig(closedWriter{}, config.Default())
	assert.ErrorIs(t, err, errClosed)
}
