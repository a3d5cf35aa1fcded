package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/movie-recommender/internal/cfg"
	v1Grpc "github.com/DRSN-tech/movie-recommender/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/movie-recommender/internal/delivery/v1/http"
	"github.com/DRSN-tech/movie-recommender/internal/engine"
	"github.com/DRSN-tech/movie-recommender/internal/infrastructure/kafka"
	"github.com/DRSN-tech/movie-recommender/internal/infrastructure/source"
	"github.com/DRSN-tech/movie-recommender/internal/repository/file"
	"github.com/DRSN-tech/movie-recommender/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/movie-recommender/internal/repository/minio"
	"github.com/DRSN-tech/movie-recommender/internal/repository/pgdb"
	"github.com/DRSN-tech/movie-recommender/internal/repository/redis"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/clients"
	"github.com/DRSN-tech/movie-recommender/pkg/closer"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/DRSN-tech/movie-recommender/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout = 10 * time.Second
	connectTimeout  = 10 * time.Second
	topicTimeout    = 10 * time.Second
)

// Options управляет тем, какие внешние интеграции поднимаются вместе с движком.
type Options struct {
	Events bool // публиковать события в Kafka, если она настроена
	Cache  bool // использовать Redis, если он настроен; иначе кэш в памяти
}

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	uc      *usecase.RecommenderUseCase
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp собирает сервис: источник каталога, кэш, продюсер событий, движок и оба сервера.
// Каталог загружается сразу, без него приложение не стартует.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	uc, err := NewRecommender(context.Background(), cfg, log, cl, Options{Events: true, Cache: true})
	if err != nil {
		closeQuietly(cl, log)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, log)
	grpcSrv.RegisterServices(uc)
	cl.Add("grpc server", grpcSrv.Stop)

	r := chi.NewRouter()
	v1Http.NewRouter(r, log).Init(uc, cfg.Http)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add("http server", httpSrv.Stop)

	return &App{
		cfg:     cfg,
		logger:  log,
		closer:  cl,
		uc:      uc,
		httpSrv: httpSrv,
		grpcSrv: grpcSrv,
	}, nil
}

// NewRecommender создаёт use case и строит первый индекс. Ресурсы регистрируются в cl.
func NewRecommender(ctx context.Context, cfg *config.Config, log logger.Logger, cl *closer.Closer, opts Options) (*usecase.RecommenderUseCase, error) {
	src, err := newCatalogSource(ctx, cfg, log, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cache, err := newResultCache(ctx, cfg, log, cl, opts.Cache)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var events usecase.EventProducer
	if opts.Events && cfg.Kafka != nil {
		producer := kafka.NewProducer(log, cfg.Kafka)
		if err := producer.EnsureTopic(topicTimeout); err != nil {
			log.Warnf("Failed to ensure kafka topic %s: %v", cfg.Kafka.Topic, err)
		}
		cl.Add("kafka producer", func(context.Context) error { return producer.Close() })
		events = producer
	}

	uc := usecase.NewRecommenderUC(
		src,
		cache,
		events,
		engine.Options{MaxFeatures: cfg.Engine.MaxFeatures, Workers: cfg.Engine.Workers},
		cfg.Catalog.LoadTimeout,
		log,
	)
	cl.Add("recommender background jobs", uc.Shutdown)

	if err := uc.Init(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return uc, nil
}

// Run запускает серверы и блокируется до сигнала или падения одного из них.
func (a *App) Run() error {
	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "Shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func newCatalogSource(ctx context.Context, cfg *config.Config, log logger.Logger, cl *closer.Closer) (usecase.CatalogSource, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return file.NewMovieRepo(cfg.Catalog.Path), nil

	case config.SourceMinio:
		minioClient, err := clients.NewMinIOClient(cfg.Minio)
		if err != nil {
			log.Errorf(err, "failed to initialize minio client")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		minioCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := clients.CheckBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
			log.Errorf(err, "failed to check minio bucket %s", cfg.Minio.BucketName)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		repo := s3Repo.NewCatalogRepo(minioClient, cfg.Minio)
		return source.NewRetrying(repo, cfg.Catalog.MaxRetries, cfg.Catalog.RetryBaseDelay, log), nil

	case config.SourcePostgres:
		db, err := initPGDB(ctx, log, cfg)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cl.Add("postgres", db.Close)

		repo := pgdb.NewMovieRepo(db.Pool)
		return source.NewRetrying(repo, cfg.Catalog.MaxRetries, cfg.Catalog.RetryBaseDelay, log), nil

	default:
		return nil, e.Wrap(cfg.Catalog.Source, e.ErrUnknownSource)
	}
}

func newResultCache(ctx context.Context, cfg *config.Config, log logger.Logger, cl *closer.Closer, useRedis bool) (usecase.ResultCache, error) {
	if !useRedis || cfg.Redis == nil {
		log.Infof("Using in-process result cache, ttl %s", cfg.Cache.TTL)
		return memory.NewCacheRepo(cfg.Cache.TTL), nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		_ = redisClient.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis", redisClient.Close)

	log.Infof("Using redis result cache at %s, ttl %s", cfg.Redis.Addr, cfg.Cache.TTL)
	return redis.NewCacheRepo(redisClient, cfg.Cache.TTL, log), nil
}

func initPGDB(ctx context.Context, log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := postgres.Connect(connCtx, cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		_ = db.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(connCtx); err != nil {
		log.Errorf(err, "failed to ping database")
		_ = db.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

func closeQuietly(cl *closer.Closer, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := cl.Close(ctx); err != nil {
		log.Warnf("Failed to release resources: %v", err)
	}
}
