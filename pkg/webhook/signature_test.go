package webhook

import (
	"testing"

	"github.com/matryer/is"
)

func TestSign(t *testing.T) {
	is := is.New(t)

	secret := []byte("shared secret")
	body := []byte(`{"ref":"refs/heads/master"}`)

	sig := Sign(secret, body)
	is.Equal(len(sig), 40)
	is.Equal(sig, Sign(secret, body))

	tampered := append([]byte{}, body...)
	tampered[len(tampered)-2] = 'x'
	is.True(Sign(secret, tampered) != sig)
	is.True(Sign([]byte("other secret"), body) != sig)
}

func TestSignKnownDigest(t *testing.T) {
	is := is.New(t)

	// RFC 2202 test case 2.
	is.Equal(Sign([]byte("Jefe"), []byte("what do ya want for nothing?")), "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79")
}
