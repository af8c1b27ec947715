package webhook

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
)

// SignatureHeader is the header carrying the body signature, formatted as
// "sha1=<hex digest>".
const SignatureHeader = "X-Hub-Signature"

// Sign returns the hex encoded HMAC-SHA1 of body keyed with secret.
func Sign(secret, body []byte) string {
	sig := hmac.New(sha1.New, secret)
	sig.Write(body) // nolint: errcheck
	return hex.EncodeToString(sig.Sum(nil))
}
