package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// separator joins the payload and its signature inside the cookie value. The
// payload may legally contain the separator itself, so Verify always splits
// at the last occurrence.
const separator = "."

var ErrMissingSecret = errors.New("session secret is not configured")

// Signer produces and verifies tamper-evident tokens of the form
// "<value>.<base64url(HMAC-SHA256(value))>". Signing is deterministic: the
// same value and secret always yield the same token, so verification needs
// no server-side state.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

func (s *Signer) Sign(value string) string {
	return value + separator + s.signature(value)
}

// Verify extracts the payload from a signed token. ok is false for a
// malformed token, a forged signature, or a token minted under a different
// secret. The signature comparison is constant-time.
func (s *Signer) Verify(token string) (value string, ok bool) {
	idx := strings.LastIndex(token, separator)
	if idx < 0 {
		return "", false
	}

	value = token[:idx]
	got := token[idx+1:]
	want := s.signature(value)

	if !hmac.Equal([]byte(got), []byte(want)) {
		return "", false
	}
	return value, true
}

func (s *Signer) signature(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
