package providers

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/cache"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/implementations"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"golang.org/x/oauth2"
)

const (
	stableTotalTimeout = time.Second * 30
	stableMaxRetries   = 3
)

type Factory interface {
	BuildForToken(token string) (provider.Provider, error)
	BuildForInstallation(ctx context.Context, appID int64, privateKeyPEM string, installationID int64) (provider.Provider, error)
}

type BasicFactory struct {
	log     logutil.Log
	cache   cache.Cache
	baseURL string
}

func NewBasicFactory(log logutil.Log, c cache.Cache, baseURL string) *BasicFactory {
	return &BasicFactory{
		log:     log,
		cache:   c,
		baseURL: baseURL,
	}
}

func (f BasicFactory) build(ts oauth2.TokenSource) (provider.Provider, error) {
	p := implementations.NewGithub(ts, f.log.Child("github"))
	if f.baseURL != "" {
		if err := p.SetBaseURL(f.baseURL); err != nil {
			return nil, err
		}
	}

	return implementations.NewStableProvider(p, stableTotalTimeout, stableMaxRetries), nil
}

func (f BasicFactory) BuildForToken(token string) (provider.Provider, error) {
	if token == "" {
		return nil, errors.New("empty access token")
	}

	return f.build(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// BuildForInstallation obtains the first installation token right away:
// a bad key or a revoked installation must fail here, not on the first API call.
func (f BasicFactory) BuildForInstallation(ctx context.Context, appID int64, privateKeyPEM string,
	installationID int64) (provider.Provider, error) {

	key, err := implementations.ParseAppPrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	its := implementations.NewInstallationTokenSource(appID, key, installationID, f.cache, f.log.Child("apptoken"))
	if f.baseURL != "" {
		baseURL, err := implementations.ParseBaseURL(f.baseURL)
		if err != nil {
			return nil, err
		}
		its.SetBaseURL(baseURL)
	}

	first, err := its.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	ts := oauth2.ReuseTokenSource(&oauth2.Token{
		AccessToken: first.Token,
		Expiry:      first.ExpiresAt.Add(-5 * time.Minute),
	}, its)
	return f.build(ts)
}
