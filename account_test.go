package authservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccount(t *testing.T) {
	acc := &Account{Email: "e@m.co", Nickname: "nick"}

	tests := []struct {
		email, nickname string
		wantErr         error
		wantAcc         *Account
	}{
		{wantErr: ErrInvalidEmail},
		{email: "email", wantErr: ErrInvalidEmail},
		{email: "email@sdf", wantErr: ErrInvalidEmail},
		{email: "with space@m.co", wantErr: ErrInvalidEmail},
		{email: "e@m.co", nickname: "nick", wantAcc: acc},
	}

	for _, tt := range tests {
		got, err := NewAccount(tt.email, tt.nickname)
		assert.Equal(t, tt.wantErr, err)
		assert.Equal(t, tt.wantAcc, got)
	}
}

func TestHashMatchesPassword(t *testing.T) {
	hash, err := hashPassword("password1")

	assert.NoError(t, err)
	assert.True(t, hashMatchesPassword(hash, "password1"))
	assert.False(t, hashMatchesPassword(hash, "password2"))
}

func TestHashMatchesPassword_MalformedHashIsJustAMismatch(t *testing.T) {
	assert.False(t, hashMatchesPassword("not-a-bcrypt-hash", "password1"))
	assert.False(t, hashMatchesPassword("", "password1"))
}
