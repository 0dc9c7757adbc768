package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

func TestIsHash(t *testing.T) {
	hash, err := HashPassword("some password")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "real bcrypt hash", value: hash, want: true},
		{name: "plaintext", value: "some password", want: false},
		{name: "empty", value: "", want: false},
		{name: "truncated hash", value: hash[:20], want: false},
		{name: "hash-like prefix only", value: "$2a$12$tooshort", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHash(tt.value))
		})
	}
}
