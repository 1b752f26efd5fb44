package protocol

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFrameThenReadFrameRoundTripsHandshake(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	hs := &Handshake{ProtocolVersion: 767, ServerAddress: "localhost", ServerPort: 25565, NextState: 1}
	require.NoError(t, WriteFrame(w, hs))

	reg := NewRegistry()
	r := bufio.NewReader(&buf)
	got, err := ReadFrame(r, StateHandshake, Serverbound, reg)
	require.NoError(t, err)

	decoded, ok := got.(*Handshake)
	require.True(t, ok)
	assert.Equal(t, hs, decoded)
}

func TestReadFrameUnknownIDErrors(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, WriteFrame(w, &LoginSuccess{UUID: uuid.New(), Username: "Notch"}))

	reg := NewRegistry()
	r := bufio.NewReader(&buf)
	_, err := ReadFrame(r, StateLogin, Serverbound, reg)
	assert.Error(t, err)
}

func TestWriteFrameThenReadFrameRoundTripsKeepAlive(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	ka := &KeepAlive{ID: 123456789}
	require.NoError(t, WriteFrame(w, ka))

	reg := NewRegistry()
	r := bufio.NewReader(&buf)
	got, err := ReadFrame(r, StatePlay, Serverbound, reg)
	require.NoError(t, err)
	assert.Equal(t, ka, got)
}
