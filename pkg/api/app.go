package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	redigo "github.com/garyburd/redigo/redis"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/api/transportutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/cache"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/db/gormdb"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/db/migrations"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/db/redis"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/providers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analytics"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers/builtin"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers/remote"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/checksuite"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/crons/staler"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/ghauth"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/pipeline"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/registry"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/reporters"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/router"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/services/analysis"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/services/webhook"
	uuid "github.com/satori/go.uuid"
	"github.com/urfave/negroni"
	redsync "gopkg.in/redsync.v1"
)

const (
	defaultAnalyzerTimeout = 2 * time.Minute
	defaultMaxLineLength   = 120
)

type appServices struct {
	webhook  webhook.Service
	analysis analysis.Service
}

type App struct {
	cfg              config.Config
	log              logutil.Log
	trackedLog       logutil.Log
	errTracker       apperrors.Tracker
	gormDB           *gorm.DB
	redisPool        *redigo.Pool
	cache            cache.Cache
	migrationsRunner *migrations.Runner
	awsSess          *session.Session
	providerFactory  providers.Factory
	tracker          analytics.Tracker
	artifacts        reporters.ArtifactPublisher
	fanOut           *analyzers.FanOut
	persister        *pipeline.Persister
	resolver         ghauth.Resolver
	prHandler        *pipeline.PullRequestHandler
	services         appServices

	staler *staler.Staler
}

func (a App) GetDB() *gorm.DB {
	return a.gormDB
}

func (a *App) buildDeps() {
	if a.log == nil {
		slog := logutil.NewStderrLog("reasonet-hooks")
		slog.SetLevel(logutil.LogLevelInfo)
		a.log = slog
	}

	if a.cfg == nil {
		a.cfg = config.NewEnvConfig(a.log)
	}

	if a.errTracker == nil {
		a.errTracker = apperrors.GetTracker(a.cfg, a.log, "hooks")
	}
	if a.trackedLog == nil {
		a.trackedLog = apperrors.WrapLogWithTracker(a.log, nil, a.errTracker)
	}

	if a.gormDB == nil {
		dbConnString, err := gormdb.GetDBConnString(a.cfg)
		if err != nil {
			a.log.Fatalf("Can't get DB conn string: %s", err)
		}

		gormDB, err := gormdb.GetDB(a.cfg, a.trackedLog, dbConnString)
		if err != nil {
			a.log.Fatalf("Can't get DB: %s", err)
		}
		a.gormDB = gormDB
	}

	if a.redisPool == nil {
		redisPool, err := redis.GetPool(a.cfg)
		if err != nil && err != redis.ErrNotConfigured {
			a.log.Fatalf("Can't get redis pool: %s", err)
		}
		a.redisPool = redisPool
	}

	if a.cache == nil {
		if a.redisPool != nil {
			a.cache = cache.NewRedis(a.redisPool)
		} else {
			a.log.Infof("No redis configured, caching in memory")
			a.cache = cache.NewMemory()
		}
	}

	if a.providerFactory == nil {
		a.providerFactory = providers.NewBasicFactory(a.trackedLog, a.cache, a.cfg.GetString("GITHUB_API_URL"))
	}

	if a.tracker == nil {
		a.tracker = analytics.NewTracker(a.cfg, a.trackedLog.Child("analytics"))
	}
}

func (a *App) buildAwsSess() {
	awsCfg := aws.NewConfig().WithRegion(a.cfg.GetString("AWS_REGION"))
	if a.cfg.GetBool("AWS_DEBUG", false) {
		awsCfg = awsCfg.WithLogLevel(aws.LogDebugWithHTTPBody)
	}
	if endpoint := a.cfg.GetString("AWS_ENDPOINT"); endpoint != "" {
		awsCfg = awsCfg.WithEndpoint(endpoint).WithS3ForcePathStyle(true)
	}
	awsSess, err := session.NewSession(awsCfg)
	if err != nil {
		a.log.Fatalf("Can't make aws session: %s", err)
	}
	a.awsSess = awsSess
}

func (a *App) buildArtifactPublisher() {
	if a.artifacts != nil {
		return
	}

	store := a.cfg.GetString("ARTIFACT_STORE")
	if store == "" {
		store = a.defaultArtifactStore()
	}

	switch store {
	case "gist":
		if ghauth.CredentialsFromConfig(a.cfg, a.log).HasApp() {
			a.log.Warnf("Gist artifacts are published with the installation token: " +
				"GitHub doesn't allow apps to create gists, set ARTIFACT_STORE=s3")
		}
		a.artifacts = reporters.GistPublisher{}
	case "s3":
		bucket := a.cfg.GetString("ARTIFACT_S3_BUCKET")
		if bucket == "" {
			a.log.Fatalf("ARTIFACT_S3_BUCKET is required for s3 artifact store")
		}
		if a.awsSess == nil {
			a.buildAwsSess()
		}
		a.artifacts = reporters.NewS3Publisher(s3manager.NewUploader(a.awsSess), bucket)
	default:
		a.log.Fatalf("Unknown ARTIFACT_STORE %q", store)
	}
}

// defaultArtifactStore prefers s3 when a bucket is configured: installation
// tokens of a GitHub App can't create gists.
func (a App) defaultArtifactStore() string {
	if a.cfg.GetString("ARTIFACT_S3_BUCKET") != "" {
		return "s3"
	}

	return "gist"
}

func (a *App) buildFanOut() {
	if a.fanOut != nil {
		return
	}

	timeout := a.cfg.GetDuration("ANALYZER_TIMEOUT", defaultAnalyzerTimeout)
	if apiURL := a.cfg.GetString("REASONING_API_URL"); apiURL != "" {
		client := remote.NewClient(apiURL, a.cfg.GetString("REASONING_API_TOKEN"), a.trackedLog.Child("analyzers"))
		a.fanOut = &analyzers.FanOut{
			Quality:  remote.NewFindings(remote.KindQuality, client),
			Security: remote.NewFindings(remote.KindSecurity, client),
			Summary:  remote.NewSummary(client),
			Timeout:  timeout,
		}
		return
	}

	a.log.Infof("No REASONING_API_URL, using builtin analyzers")
	a.fanOut = &analyzers.FanOut{
		Quality:  builtin.Quality{MaxLineLength: a.cfg.GetInt("MAX_LINE_LENGTH", defaultMaxLineLength)},
		Security: builtin.Secrets{},
		Summary:  builtin.DiffStat{},
		Timeout:  timeout,
	}
}

func (a *App) buildServices() {
	a.buildArtifactPublisher()
	a.buildFanOut()

	log := a.trackedLog
	a.persister = pipeline.NewPersister(a.gormDB, log.Child("persister"))

	resolver := ghauth.NewBasicResolver(ghauth.CredentialsFromConfig(a.cfg, log), a.providerFactory,
		log.Child("auth"))
	a.resolver = resolver
	handler := &pipeline.PullRequestHandler{
		Persister: a.persister,
		Resolver:  resolver,
		Diffs: pipeline.DiffFetcher{
			Timeout: a.cfg.GetDuration("DIFF_FETCH_TIMEOUT", pipeline.DefaultDiffFetchTimeout),
		},
		FanOut: *a.fanOut,
		Reporters: reporters.Trio{
			Artifact:    a.artifacts,
			Commenter:   reporters.PullRequestCommenter{},
			Description: reporters.SummaryRewriter{},
		},
		Tracker: a.tracker,
		Log:     log,
	}

	a.services.webhook = webhook.BasicService{
		Secret: []byte(a.cfg.GetString("GITHUB_WEBHOOK_SECRET")),
		Router: router.Router{
			Registry:     registry.NewBasicRegistry(a.gormDB, log.Child("registry")),
			PullRequests: handler,
			CheckSuites: checksuite.Resolver{
				Auth:    resolver,
				Handler: handler,
				Log:     log,
			},
			Log: log,
		},
	}
	a.services.analysis = analysis.BasicService{}
	a.prHandler = handler
}

func (a *App) buildMigrationsRunner() {
	if a.redisPool == nil {
		return
	}

	dbConnString, err := gormdb.GetDBConnString(a.cfg)
	if err != nil {
		a.log.Fatalf("Can't get DB conn string: %s", err)
	}

	migrationsDir := a.cfg.GetString("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}

	distLockFactory := redsync.New([]redsync.Pool{a.redisPool})
	a.migrationsRunner = migrations.NewRunner(distLockFactory.NewMutex("migrations"), a.trackedLog,
		dbConnString, migrationsDir)
}

func NewApp(modifiers ...Modifier) *App {
	a := App{}
	for _, m := range modifiers {
		m(&a)
	}
	a.buildDeps()
	a.buildServices()
	a.buildMigrationsRunner()

	a.staler = &staler.Staler{
		Cfg:       a.cfg,
		DB:        a.gormDB,
		Log:       a.trackedLog.Child("staler"),
		Persister: a.persister,
	}

	return &a
}

func (a App) registerHandlers(r *mux.Router) {
	regCtx := &transportutil.HandlerRegContext{
		Router:     r,
		Log:        a.log,
		ErrTracker: a.errTracker,
		Cfg:        a.cfg,
		DB:         a.gormDB,
	}
	webhook.RegisterHandlers(a.services.webhook, regCtx)
	analysis.RegisterHandlers(a.services.analysis, regCtx)
}

// RunMigrations applies SQL migrations under the redis lock, without redis
// the schema is auto-migrated by gorm.
func (a App) RunMigrations() {
	if a.migrationsRunner != nil {
		if err := a.migrationsRunner.Run(); err != nil {
			a.log.Fatalf("Can't run migrations: %s", err)
		}
		return
	}

	if err := gormdb.AutoMigrate(a.gormDB, models.All()...); err != nil {
		a.log.Fatalf("Can't auto-migrate schema: %s", err)
	}
}

func (a App) RunEnvironment() {
	a.RunMigrations()
	go a.staler.Run()
}

// RecoverStaleAnalyzes fails analyses stuck in PROCESSING once and exits,
// it's the manual counterpart of the staler cron.
func (a App) RecoverStaleAnalyzes() (int, error) {
	return a.staler.RunIteration(time.Now(), a.staler.Timeout())
}

// ReanalyzePullRequest starts a new analysis of an open pull request of an
// already registered repository, without a webhook delivery.
func (a App) ReanalyzePullRequest(ctx context.Context, fullName string, number int) (*models.Analysis, error) {
	var repo models.Repository
	if err := a.gormDB.Where("full_name = ?", fullName).First(&repo).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, errors.Wrapf(apperrors.ErrNotFound, "no repository %s", fullName)
		}
		return nil, errors.Wrapf(err, "failed to fetch repository %s", fullName)
	}

	p, _, err := a.resolver.Resolve(ctx, repo.ProviderInstallationID)
	if err != nil {
		return nil, err
	}

	pr, err := p.GetPullRequest(ctx, repo.Owner(), repo.Repo(), number)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch pull request %s#%d", fullName, number)
	}

	return a.prHandler.Handle(ctx, &pipeline.PullRequestJob{
		Repository:   &repo,
		Number:       pr.Number,
		Title:        pr.Title,
		HeadRef:      pr.HeadRef,
		HeadSHA:      pr.HeadSHA,
		DeliveryGUID: "manual-" + uuid.NewV4().String(),
	})
}

func (a App) RunForever() {
	a.RunEnvironment()

	http.Handle("/", a.GetHTTPHandler())

	addr := fmt.Sprintf(":%d", a.cfg.GetInt("port", 3000))
	a.log.Infof("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		a.log.Errorf("Can't listen HTTP on %s: %s", addr, err)
		os.Exit(1)
	}
}

func (a App) GetHTTPHandler() http.Handler {
	r := mux.NewRouter()
	a.registerHandlers(r)

	c := cors.New(cors.Options{
		AllowedOrigins: a.cfg.GetStringList("CORS_ALLOWED_ORIGINS"),
		AllowedMethods: []string{http.MethodGet},
	})

	n := negroni.New(negroni.NewRecovery())
	n.Use(c)
	n.UseHandler(r)
	return n
}
