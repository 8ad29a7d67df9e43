package signing

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA512 of body keyed with secret.
// body must be the exact bytes that go on the wire.
func Sign(secret, body string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks sig against body in constant time. Upper case hex is
// accepted.
func Verify(secret, body, sig string) bool {
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(body))
	return hmac.Equal(got, mac.Sum(nil))
}
