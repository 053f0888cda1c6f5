// Package ghauth picks the credential a repository's API calls are made with.
package ghauth

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
)

var ErrAuthenticationUnavailable = errors.New("authentication unavailable: no installation credentials and no static token")

type Method string

const (
	MethodInstallation Method = "installation"
	MethodStaticToken  Method = "static_token"
)

type Credentials struct {
	AppID         int64
	PrivateKeyPEM string
	StaticToken   string
}

func (c Credentials) hasApp() bool {
	return c.AppID != 0 && c.PrivateKeyPEM != ""
}

// HasApp reports whether installation-scoped clients can be built.
func (c Credentials) HasApp() bool {
	return c.hasApp()
}

// CredentialsFromConfig doesn't validate anything: missing credentials
// surface per analysis as ErrAuthenticationUnavailable.
func CredentialsFromConfig(cfg config.Config, log logutil.Log) Credentials {
	var appID int64
	if s := cfg.GetString("GITHUB_APP_ID"); s != "" {
		var err error
		if appID, err = strconv.ParseInt(s, 10, 64); err != nil {
			log.Warnf("Invalid GITHUB_APP_ID %q: %s", s, err)
			appID = 0
		}
	}

	return Credentials{
		AppID:         appID,
		PrivateKeyPEM: cfg.GetString("GITHUB_APP_PRIVATE_KEY"),
		StaticToken:   cfg.GetString("GITHUB_TOKEN"),
	}
}

type Resolver interface {
	Resolve(ctx context.Context, installationID *int64) (provider.Provider, Method, error)
}

type BasicResolver struct {
	creds Credentials
	pf    providers.Factory
	log   logutil.Log
}

func NewBasicResolver(creds Credentials, pf providers.Factory, log logutil.Log) *BasicResolver {
	return &BasicResolver{
		creds: creds,
		pf:    pf,
		log:   log,
	}
}

// Resolve prefers an installation-scoped client and falls back to the static
// token. Failing to build the installation client is logged, never returned.
func (r BasicResolver) Resolve(ctx context.Context, installationID *int64) (provider.Provider, Method, error) {
	if installationID != nil && *installationID != 0 && r.creds.hasApp() {
		p, err := r.pf.BuildForInstallation(ctx, r.creds.AppID, r.creds.PrivateKeyPEM, *installationID)
		if err == nil {
			return p, MethodInstallation, nil
		}
		if ctx.Err() != nil {
			return nil, "", errors.Wrap(ctx.Err(), "resolving installation client")
		}
		r.log.Warnf("Can't build client for installation %d, falling back to static token: %s",
			*installationID, err)
	}

	if r.creds.StaticToken != "" {
		p, err := r.pf.BuildForToken(r.creds.StaticToken)
		if err == nil {
			return p, MethodStaticToken, nil
		}
		r.log.Warnf("Can't build client for static token: %s", err)
	}

	return nil, "", ErrAuthenticationUnavailable
}
