package confirmation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		username string
		expected string
	}{
		{"bob", "9f9d51bc70ef21ca5c14f307980a29d8"},
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"alice", "6384e2b2184bcbf58eccf10ca7a6563c"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			assert.Equal(t, tt.expected, Code(tt.username))
			assert.Equal(t, Code(tt.username), Code(tt.username), "code must be stable across calls")
		})
	}
}

func TestVerify(t *testing.T) {
	assert.True(t, Verify("bob", Code("bob")))
	assert.False(t, Verify("bob", Code("alice")))
	assert.False(t, Verify("bob", ""))
	assert.False(t, Verify("bob", "9F9D51BC70EF21CA5C14F307980A29D8"))
}
