package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "TestPassword",
			wantErr:  false,
		},
		{
			name:     "Exactly 72 bytes",
			password: strings.Repeat("p", 72),
			wantErr:  false,
		},
		{
			name:     "Over 72 bytes",
			password: strings.Repeat("p", 73),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, tt.password, hash)
				assert.True(t, strings.HasPrefix(hash, "$2a$12$"))
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("TestPassword")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "TestPassword"))
	assert.False(t, VerifyPassword(hash, "testpassword"))
	assert.False(t, VerifyPassword(hash, ""))
	assert.False(t, VerifyPassword("invalid-hash", "TestPassword"))
}

func TestHashPassword_Salted(t *testing.T) {
	hash1, err := HashPassword("TestPassword")
	require.NoError(t, err)
	hash2, err := HashPassword("TestPassword")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}
