package main

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/chip8web/httpd"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	var b bytes.Buffer

	opts, err := parseArgs(nil, &b)
	require.NoError(t, err)
	assert.Equal(t, httpd.DefaultPort, opts.port)

	opts, err = parseArgs([]string{"-p", "9000"}, &b)
	require.NoError(t, err)
	assert.Equal(t, 9000, opts.port)

	opts, err = parseArgs([]string{"--port=9001"}, &b)
	require.NoError(t, err)
	assert.Equal(t, 9001, opts.port)

	opts, err = parseArgs([]string{"--version"}, &b)
	require.NoError(t, err)
	assert.True(t, opts.version)
}

func TestParseArgs_errors(t *testing.T) {
	var b bytes.Buffer

	_, err := parseArgs([]string{"-p", "http"}, &b)
	assert.Error(t, err)

	_, err = parseArgs([]string{"www"}, &b)
	assert.Error(t, err)
	assert.Contains(t, b.String(), "usage: httpd")

	_, err = parseArgs([]string{"--help"}, &b)
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
