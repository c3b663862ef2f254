package watcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ulink/internal/adapters/watcher"
)

func TestDigestGate(t *testing.T) {
	var gate watcher.DigestGate

	assert.True(t, gate.Accept([]byte("version: \"1\"\n")), "first snapshot is always accepted")
	assert.False(t, gate.Accept([]byte("version: \"1\"\n")), "identical rewrite is skipped")
	assert.True(t, gate.Accept([]byte("version: \"1\"\nunits: []\n")))
	assert.False(t, gate.Accept([]byte("version: \"1\"\nunits: []\n")))

	gate.Forget()
	assert.True(t, gate.Accept([]byte("version: \"1\"\nunits: []\n")))
}
