package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-interior/config"
)

func TestPrintCensus(t *testing.T) {
	s, err := config.Default().Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	printCensus(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "cash_desk                4\n")
	assert.Contains(t, out, "ceiling_light           30\n")
	assert.Contains(t, out, "LIGHTS (38):")
	assert.Contains(t, out, "point                 35")
}

func TestLoadOptions(t *testing.T) {
	opts := &options{logLevel: "debug"}
	require.NoError(t, opts.load())
	assert.NotNil(t, opts.cfg)
	assert.NotNil(t, opts.logger)

	opts = &options{logLevel: "loud"}
	assert.Error(t, opts.load())
}
