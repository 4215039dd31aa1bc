package session

import (
	"net/http"
	"net/url"
	"time"
)

// CookieName carries the signed session token.
const CookieName = "hackathon_session"

// cookieMaxAge is the session retention window.
const cookieMaxAge = 30 * 24 * time.Hour

// Cookies issues and revokes the session cookie with fixed attributes:
// HttpOnly, SameSite=Lax, Secure outside development.
type Cookies struct {
	signer *Signer
	secure bool
}

func NewCookies(signer *Signer, secure bool) *Cookies {
	return &Cookies{signer: signer, secure: secure}
}

// Issue encodes, signs, and attaches the identity payload to the response.
// The signed token is percent-encoded: the JSON payload contains quote
// characters, which http.SetCookie would otherwise silently drop, breaking
// the signature on the way back in.
func (c *Cookies) Issue(w http.ResponseWriter, p Payload) error {
	value, err := Encode(p)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(c.signer.Sign(value)),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
	return nil
}

// Revoke instructs the client to drop the cookie immediately.
func (c *Cookies) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	})
}
