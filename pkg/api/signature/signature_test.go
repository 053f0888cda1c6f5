package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	secret := []byte("It's a Secret to Everybody")
	body := []byte("Hello, World!")

	// from the GitHub webhooks docs
	const known = "sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17"
	assert.Equal(t, known, Sign(secret, body))
	assert.True(t, Verify(secret, body, known))

	cases := map[string]string{
		"empty":        "",
		"no prefix":    known[len(prefix):],
		"sha1 prefix":  "sha1=" + known[len(prefix):],
		"bad hex":      "sha256=zz",
		"short digest": "sha256=abcd",
		"truncated":    known[:len(known)-2],
		"other body":   Sign(secret, []byte("Hello, World?")),
		"other secret": Sign([]byte("x"), body),
	}
	for name, header := range cases {
		assert.False(t, Verify(secret, body, header), name)
	}
}

func TestVerifyEmptySecretRejectsEverything(t *testing.T) {
	body := []byte("{}")
	assert.False(t, Verify(nil, body, Sign(nil, body)))
}
