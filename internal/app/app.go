package app

import (
	"context"
	"hr_console/internal/config"
	"hr_console/internal/controller"
	"hr_console/internal/platform"
	"hr_console/internal/repository"
	"hr_console/internal/service"
	"hr_console/pkg/configwatcher"
	"hr_console/pkg/database"
	"hr_console/pkg/logger"
	"hr_console/pkg/monitoring"
	"hr_console/pkg/security"
	"hr_console/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services *services
	tracer   *sdktrace.TracerProvider

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
	stopWatch       chan struct{}
}

type repositories struct {
	operator   *repository.OperatorRepository
	preference *repository.PreferenceRepository
	audit      *repository.AuditRepository
	notice     *repository.NoticeRepository
	draft      *repository.DraftRepository
}

type services struct {
	auth          *service.AuthService
	notices       *service.NoticeService
	audit         *service.AuditService
	activity      *service.Activity
	storage       *service.StorageService
	business      *service.BusinessService
	hrUsers       *service.HRUserService
	managers      *service.ManagerService
	questionPairs *service.QuestionPairService
	assessments   *service.AssessmentService
	benchmark     *service.BenchmarkService
	training      *service.TrainingService
	modules       *service.ModuleVisibilityService
}

type controllers struct {
	auth          *controller.AuthController
	business      *controller.BusinessController
	people        *controller.PeopleController
	questionPairs *controller.QuestionPairController
	assessments   *controller.AssessmentController
	benchmark     *controller.BenchmarkController
	training      *controller.TrainingController
	console       *controller.ConsoleController
	health        *controller.HealthController
}

// RegisterConfigCallback runs callback with every reloaded config.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) reload(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		operator:   repository.NewOperatorRepository(db),
		preference: repository.NewPreferenceRepository(db),
		audit:      repository.NewAuditRepository(db),
		notice:     repository.NewNoticeRepository(rdb),
		draft:      repository.NewDraftRepository(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, client *platform.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.operator, cfg)
	s.notices = service.NewNoticeService(repos.notice, cfg.Console.NoticeTTL)
	s.audit = service.NewAuditService(repos.audit)
	s.activity = service.NewActivity(s.notices, s.audit)
	s.storage = service.NewStorageService(cfg)

	s.business = service.NewBusinessService(client, s.activity, cfg.Console.LogoMaxBytes)
	s.hrUsers = service.NewHRUserService(client, s.activity)
	s.managers = service.NewManagerService(client, s.activity)
	s.questionPairs = service.NewQuestionPairService(client, s.activity)
	s.assessments = service.NewAssessmentService(client, s.activity, repos.draft, cfg.Console.Location())
	s.benchmark = service.NewBenchmarkService(client, s.activity)
	s.training = service.NewTrainingService(client, s.activity, s.storage, cfg.Console.ReorderDebounce)
	s.modules = service.NewModuleVisibilityService(repos.preference, cfg.Console.HiddenModules)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:          controller.NewAuthController(s.auth),
		business:      controller.NewBusinessController(s.business),
		people:        controller.NewPeopleController(s.hrUsers, s.managers),
		questionPairs: controller.NewQuestionPairController(s.questionPairs),
		assessments:   controller.NewAssessmentController(s.assessments),
		benchmark:     controller.NewBenchmarkController(s.benchmark),
		training:      controller.NewTrainingController(s.training),
		console:       controller.NewConsoleController(s.modules, s.notices, s.audit),
		health:        controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// registerReloads applies the hot-reloadable console settings.
func (a *App) registerReloads(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.notices.SetTTL(cfg.Console.NoticeTTL)
		s.training.Reorderer.SetDelay(cfg.Console.ReorderDebounce)
		s.modules.SetDefaults(cfg.Console.HiddenModules)
		logger.Log.Info("console settings reloaded",
			zap.Duration("notice_ttl", cfg.Console.NoticeTTL),
			zap.Duration("reorder_debounce", cfg.Console.ReorderDebounce),
			zap.Strings("hidden_modules", cfg.Console.HiddenModules))
	})
}

// OpenStores connects mysql and redis and migrates the console tables when
// running outside release mode or when forced.
func OpenStores(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, nil, errors.Wrap(err, "initialize database")
	}
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, nil, errors.Wrap(err, "migrate database")
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, nil, errors.Wrap(err, "initialize redis")
	}
	return db, rdb, nil
}

func NewApp(cfg *config.Config) (*App, error) {
	db, rdb, err := OpenStores(cfg)
	if err != nil {
		return nil, err
	}

	client, err := platform.NewClient(cfg.Platform)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, errors.Wrap(err, "initialize tracing")
		}
		app.tracer = tp
	}

	monitoring.Init()

	repos := app.initRepositories(db, rdb)
	app.services = app.initServices(repos, cfg, client)
	ctrls := app.initControllers(app.services, db, rdb)
	app.registerReloads(app.services)

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	if root, ok := app.services.storage.LocalRoot(); ok {
		router.Static("/uploads", root)
	}

	return app, nil
}

// WatchConfig reloads dir on change until the app shuts down.
func (a *App) WatchConfig(dir string) {
	a.stopWatch = make(chan struct{})
	go func() {
		if err := configwatcher.WatchConfig(dir, a.reload, a.stopWatch); err != nil {
			logger.Log.Error("config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	}
	logger.Log.Info("Shutting down server...")

	if a.stopWatch != nil {
		close(a.stopWatch)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(ctx)

	// pending training orders are saved after the last request finished
	a.services.training.Shutdown()

	if a.tracer != nil {
		if terr := a.tracer.Shutdown(context.Background()); terr != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(terr))
		}
	}
	a.Redis.Close()

	if err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	logger.Log.Info("Server exiting")
	return nil
}
