// Package signature checks X-Hub-Signature-256 headers of webhook deliveries.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/go-github/v60/github"
)

const (
	HeaderName = github.SHA256SignatureHeader
	prefix     = "sha256="
)

// Sign returns the header value for body, as the sender computes it.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body) //nolint:errcheck
	return prefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether header is a valid signature of body. It never fails
// on malformed input: an empty secret, a missing prefix or bad hex are just invalid.
// Only sha256 signatures are accepted.
func Verify(secret, body []byte, header string) bool {
	if len(secret) == 0 || !strings.HasPrefix(header, prefix) {
		return false
	}

	return github.ValidateSignature(header, body, secret) == nil
}
