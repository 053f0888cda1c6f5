package implementations

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v60/github"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/cache"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"golang.org/x/oauth2"
)

const (
	appJWTBackdate       = 60 * time.Second
	appJWTLifetime       = 9 * time.Minute
	tokenRefreshBuffer   = 5 * time.Minute
	tokenExchangeTimeout = 30 * time.Second
)

// Check the struct is implementing the TokenSource interface.
var _ oauth2.TokenSource = &InstallationTokenSource{}

// ParseAppPrivateKey accepts PKCS1 and PKCS8 PEM keys, also with
// newlines escaped as literal "\n" as env vars usually carry them.
func ParseAppPrivateKey(pemData string) (*rsa.PrivateKey, error) {
	pemData = strings.Replace(pemData, `\n`, "\n", -1)
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse app private key")
	}

	return key, nil
}

// InstallationTokenSource exchanges an app JWT for an installation access token
// and keeps it in the shared cache until tokenRefreshBuffer before expiry.
type InstallationTokenSource struct {
	appID          int64
	key            *rsa.PrivateKey
	installationID int64
	baseURL        *url.URL
	cache          cache.Cache
	log            logutil.Log
	now            func() time.Time
}

func NewInstallationTokenSource(appID int64, key *rsa.PrivateKey, installationID int64,
	c cache.Cache, log logutil.Log) *InstallationTokenSource {

	return &InstallationTokenSource{
		appID:          appID,
		key:            key,
		installationID: installationID,
		cache:          c,
		log:            log,
		now:            time.Now,
	}
}

func (s *InstallationTokenSource) SetBaseURL(baseURL *url.URL) {
	s.baseURL = baseURL
}

func (s InstallationTokenSource) cacheKey() string {
	return fmt.Sprintf("github/app/%d/installation/%d/token", s.appID, s.installationID)
}

func (s InstallationTokenSource) signAppJWT() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(s.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-appJWTBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTLifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign app jwt")
	}

	return signed, nil
}

func (s InstallationTokenSource) exchange(ctx context.Context) (*provider.InstallationToken, error) {
	appJWT, err := s.signAppJWT()
	if err != nil {
		return nil, err
	}

	c := github.NewClient(nil).WithAuthToken(appJWT)
	if s.baseURL != nil {
		c.BaseURL = s.baseURL
	}

	ctx, cancel := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancel()

	it, _, err := c.Apps.CreateInstallationToken(ctx, s.installationID, nil)
	if err != nil {
		return nil, errors.Wrapf(unwrapGithubError(err),
			"failed to create token for installation %d", s.installationID)
	}

	return &provider.InstallationToken{
		Token:     it.GetToken(),
		ExpiresAt: it.GetExpiresAt().Time,
	}, nil
}

// Fetch returns a cached token if it's valid for at least tokenRefreshBuffer,
// otherwise it gets a new one from the provider.
func (s InstallationTokenSource) Fetch(ctx context.Context) (*provider.InstallationToken, error) {
	key := s.cacheKey()

	var cached provider.InstallationToken
	err := s.cache.Get(key, &cached)
	switch {
	case err == nil && cached.Token != "" && s.now().Add(tokenRefreshBuffer).Before(cached.ExpiresAt):
		return &cached, nil
	case err != nil && err != cache.ErrMiss:
		s.log.Warnf("Can't get installation token from cache by key %s: %s", key, err)
	}

	it, err := s.exchange(ctx)
	if err != nil {
		return nil, err
	}

	if ttl := it.ExpiresAt.Sub(s.now()) - tokenRefreshBuffer; ttl > 0 {
		if err = s.cache.Set(key, ttl, it); err != nil {
			s.log.Warnf("Can't save installation token to cache by key %s: %s", key, err)
		}
	}

	return it, nil
}

func (s InstallationTokenSource) Token() (*oauth2.Token, error) {
	it, err := s.Fetch(context.Background())
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: it.Token,
		Expiry:      it.ExpiresAt.Add(-tokenRefreshBuffer),
	}, nil
}
