package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSigner(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := NewSigner("")
		require.ErrorIs(t, err, ErrMissingSecret)

		_, err = NewSigner("   ")
		require.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("accepts non-empty secret", func(t *testing.T) {
		signer, err := NewSigner("topsecret")
		require.NoError(t, err)
		require.NotNil(t, signer)
	})
}

func TestSignVerify(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("topsecret")
	require.NoError(t, err)

	t.Run("round-trips arbitrary values", func(t *testing.T) {
		for _, value := range []string{
			`{"userId":1,"username":"alice"}`,
			"",
			"plain",
			"unicode: héllo wörld",
		} {
			token := signer.Sign(value)
			got, ok := signer.Verify(token)
			require.True(t, ok, "value %q", value)
			require.Equal(t, value, got)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, signer.Sign("hello"), signer.Sign("hello"))
	})

	t.Run("splits at the last separator", func(t *testing.T) {
		// Values containing dots must survive the round trip intact.
		value := `{"userId":7,"username":"dot.ted.name"}`
		got, ok := signer.Verify(signer.Sign(value))
		require.True(t, ok)
		require.Equal(t, value, got)
	})

	t.Run("rejects a token without separator", func(t *testing.T) {
		_, ok := signer.Verify("noseparatorhere")
		require.False(t, ok)
	})

	t.Run("rejects the empty token", func(t *testing.T) {
		_, ok := signer.Verify("")
		require.False(t, ok)
	})
}

func TestTamperDetection(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner("topsecret")
	require.NoError(t, err)

	token := signer.Sign(`{"userId":1,"username":"alice"}`)
	sep := strings.LastIndex(token, ".")
	require.Greater(t, sep, 0)

	// Flipping any single character of the signature segment must invalidate
	// the token.
	for i := sep + 1; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}

		_, ok := signer.Verify(string(mutated))
		require.False(t, ok, "flipped signature byte at offset %d still verified", i)
	}
}

func TestSecretRotation(t *testing.T) {
	t.Parallel()

	oldSigner, err := NewSigner("secret-one")
	require.NoError(t, err)
	newSigner, err := NewSigner("secret-two")
	require.NoError(t, err)

	token := oldSigner.Sign(`{"userId":1,"username":"alice"}`)

	_, ok := newSigner.Verify(token)
	require.False(t, ok, "token signed under a rotated-out secret must not verify")

	got, ok := oldSigner.Verify(token)
	require.True(t, ok)
	require.Equal(t, `{"userId":1,"username":"alice"}`, got)
}
