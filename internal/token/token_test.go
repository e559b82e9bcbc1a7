package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("test-secret", 24*time.Hour)
	ver := NewVerifier("test-secret")

	tok, err := iss.Issue("user-1", "alice", "a@x.com", "student")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ver.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	iss := NewIssuer("test-secret", -time.Minute)
	ver := NewVerifier("test-secret")

	tok, err := iss.Issue("user-1", "alice", "a@x.com", "student")
	require.NoError(t, err)

	_, err = ver.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)
	ver := NewVerifier("other-secret")

	tok, err := iss.Issue("user-1", "alice", "a@x.com", "student")
	require.NoError(t, err)

	_, err = ver.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	ver := NewVerifier("test-secret")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ver.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestVerifyTampered(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)
	ver := NewVerifier("test-secret")

	tok, err := iss.Issue("user-1", "alice", "a@x.com", "student")
	require.NoError(t, err)

	// Flip a character in the payload segment.
	b := []byte(tok)
	mid := len(b) / 2
	if b[mid] == 'A' {
		b[mid] = 'B'
	} else {
		b[mid] = 'A'
	}

	_, err = ver.Verify(string(b))
	assert.ErrorIs(t, err, ErrInvalid)
}
