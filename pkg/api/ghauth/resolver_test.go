package ghauth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64p(v int64) *int64 {
	return &v
}

func newProviders(t *testing.T) (provider.Provider, provider.Provider) {
	ctrl := gomock.NewController(t)
	return provider.NewMockProvider(ctrl), provider.NewMockProvider(ctrl)
}

func TestResolvePrefersInstallation(t *testing.T) {
	instP, tokenP := newProviders(t)
	f := &fakeFactory{installP: instP, tokenP: tokenP}
	r := NewBasicResolver(Credentials{AppID: 1, PrivateKeyPEM: "pem", StaticToken: "tok"}, f, logutil.NewStderrLog("test"))

	p, method, err := r.Resolve(context.Background(), int64p(42))
	require.NoError(t, err)
	assert.Equal(t, MethodInstallation, method)
	assert.True(t, p == instP)
	assert.Equal(t, 0, f.tokenCall)
}

func TestResolveWithoutInstallationUsesToken(t *testing.T) {
	instP, tokenP := newProviders(t)
	f := &fakeFactory{installP: instP, tokenP: tokenP}
	r := NewBasicResolver(Credentials{AppID: 1, PrivateKeyPEM: "pem", StaticToken: "tok"}, f, logutil.NewStderrLog("test"))

	p, method, err := r.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, MethodStaticToken, method)
	assert.True(t, p == tokenP)
	assert.Equal(t, 0, f.installCall)
}

func TestResolveMissingKeyFallsBackToToken(t *testing.T) {
	instP, tokenP := newProviders(t)
	f := &fakeFactory{installP: instP, tokenP: tokenP}
	r := NewBasicResolver(Credentials{AppID: 1, StaticToken: "tok"}, f, logutil.NewStderrLog("test"))

	_, method, err := r.Resolve(context.Background(), int64p(42))
	require.NoError(t, err)
	assert.Equal(t, MethodStaticToken, method)
	assert.Equal(t, 0, f.installCall)
}

func TestResolveInstallationFailureFallsBackToToken(t *testing.T) {
	instP, tokenP := newProviders(t)
	f := &fakeFactory{installP: instP, tokenP: tokenP, installErr: errors.New("revoked")}
	r := NewBasicResolver(Credentials{AppID: 1, PrivateKeyPEM: "pem", StaticToken: "tok"}, f, logutil.NewStderrLog("test"))

	p, method, err := r.Resolve(context.Background(), int64p(42))
	require.NoError(t, err)
	assert.Equal(t, MethodStaticToken, method)
	assert.True(t, p == tokenP)
	assert.Equal(t, 1, f.installCall)
}

func TestResolveUnavailable(t *testing.T) {
	f := &fakeFactory{installErr: errors.New("revoked")}
	log := logutil.NewStderrLog("test")

	_, _, err := NewBasicResolver(Credentials{}, f, log).Resolve(context.Background(), int64p(42))
	assert.Equal(t, ErrAuthenticationUnavailable, err)

	_, _, err = NewBasicResolver(Credentials{AppID: 1, PrivateKeyPEM: "pem"}, f, log).Resolve(context.Background(), int64p(42))
	assert.Equal(t, ErrAuthenticationUnavailable, err)
}

func TestCredentialsFromConfig(t *testing.T) {
	log := logutil.NewStderrLog("test")
	creds := CredentialsFromConfig(config.MapConfig{
		"GITHUB_APP_ID":          "123",
		"GITHUB_APP_PRIVATE_KEY": "pem",
		"GITHUB_TOKEN":           "tok",
	}, log)
	assert.Equal(t, Credentials{AppID: 123, PrivateKeyPEM: "pem", StaticToken: "tok"}, creds)

	creds = CredentialsFromConfig(config.MapConfig{"GITHUB_APP_ID": "abc"}, log)
	assert.Zero(t, creds.AppID)
}
