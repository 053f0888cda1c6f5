package ghauth

import (
	"context"

	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers/provider"
)

type fakeFactory struct {
	installErr  error
	tokenErr    error
	installP    provider.Provider
	tokenP      provider.Provider
	installCall int
	tokenCall   int
}

func (f *fakeFactory) BuildForToken(token string) (provider.Provider, error) {
	f.tokenCall++
	if f.tokenErr != nil {
		return nil, f.tokenErr
	}
	return f.tokenP, nil
}

func (f *fakeFactory) BuildForInstallation(ctx context.Context, appID int64, privateKeyPEM string,
	installationID int64) (provider.Provider, error) {

	f.installCall++
	if f.installErr != nil {
		return nil, f.installErr
	}
	return f.installP, nil
}
