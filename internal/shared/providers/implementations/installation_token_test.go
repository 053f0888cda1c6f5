package implementations

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/cache"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/testutil/githubfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKeyPEM(t *testing.T) string {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}))
}

func TestParseAppPrivateKeyEscapedNewlines(t *testing.T) {
	escaped := strings.Replace(genKeyPEM(t), "\n", `\n`, -1)
	key, err := ParseAppPrivateKey(escaped)
	require.NoError(t, err)
	assert.NotNil(t, key)

	_, err = ParseAppPrivateKey("not a key")
	assert.Error(t, err)
}

func TestInstallationTokenIsCached(t *testing.T) {
	srv := githubfake.NewServer()
	defer srv.Close()

	key, err := ParseAppPrivateKey(genKeyPEM(t))
	require.NoError(t, err)
	baseURL, err := ParseBaseURL(srv.URL)
	require.NoError(t, err)

	c := cache.NewMemory()
	newSource := func() *InstallationTokenSource {
		s := NewInstallationTokenSource(1, key, 42, c, logutil.NewStderrLog("test"))
		s.SetBaseURL(baseURL)
		return s
	}

	it, err := newSource().Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghs_installation_42", it.Token)

	// another source sharing the cache reuses the token
	tok, err := newSource().Token()
	require.NoError(t, err)
	assert.Equal(t, "ghs_installation_42", tok.AccessToken)
	assert.Equal(t, 1, srv.TokenExchangesFor(42))
}

func TestInstallationTokenRevoked(t *testing.T) {
	srv := githubfake.NewServer()
	defer srv.Close()
	srv.RevokedInstallIDs[13] = true

	key, err := ParseAppPrivateKey(genKeyPEM(t))
	require.NoError(t, err)
	baseURL, err := ParseBaseURL(srv.URL)
	require.NoError(t, err)

	s := NewInstallationTokenSource(1, key, 13, cache.NewMemory(), logutil.NewStderrLog("test"))
	s.SetBaseURL(baseURL)
	_, err = s.Fetch(context.Background())
	assert.Error(t, err)
}
