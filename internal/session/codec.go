package session

import "encoding/json"

// Payload is what actually lives inside the signed cookie. Roles are
// deliberately absent: they are re-read from the database on every request so
// that grants and revocations take effect without a re-login. The camelCase
// keys match cookies minted by earlier releases, which must keep verifying.
type Payload struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// Encode serializes an identity payload to its canonical cookie form.
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses a verified cookie payload. ok is false for malformed JSON or
// a payload without a user id; decode failures degrade to "no session" and
// never propagate as errors.
func Decode(value string) (Payload, bool) {
	var p Payload
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		return Payload{}, false
	}
	if p.UserID <= 0 {
		return Payload{}, false
	}
	return p, true
}
