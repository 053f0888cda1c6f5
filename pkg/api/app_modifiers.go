package app

import (
	"github.com/jinzhu/gorm"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/cache"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analytics"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/reporters"
)

type Modifier func(a *App)

func SetProviderFactory(pf providers.Factory) Modifier {
	return func(a *App) {
		a.providerFactory = pf
	}
}

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}

func SetLog(log logutil.Log) Modifier {
	return func(a *App) {
		a.log = log
	}
}

func SetDB(db *gorm.DB) Modifier {
	return func(a *App) {
		a.gormDB = db
	}
}

func SetCache(c cache.Cache) Modifier {
	return func(a *App) {
		a.cache = c
	}
}

func SetTracker(t analytics.Tracker) Modifier {
	return func(a *App) {
		a.tracker = t
	}
}

func SetArtifactPublisher(p reporters.ArtifactPublisher) Modifier {
	return func(a *App) {
		a.artifacts = p
	}
}

func SetFanOut(f analyzers.FanOut) Modifier {
	return func(a *App) {
		a.fanOut = &f
	}
}
