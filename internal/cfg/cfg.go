package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Источники каталога
const (
	SourceFile     = "file"
	SourceMinio    = "minio"
	SourcePostgres = "postgres"
)

// Config - конфигурация приложения. Необязательные части (Redis, Kafka, MinIO, Postgres)
// равны nil, если соответствующая интеграция не настроена.
type Config struct {
	Catalog *CatalogCfg
	Engine  *EngineCfg
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Cache   *CacheCfg
	Db      *PGDBCfg
	Minio   *MinIOCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg
}

type CatalogCfg struct {
	Source         string        // file, minio или postgres
	Path           string        // путь к CSV для источника file
	MaxRetries     int           // число попыток загрузки из удалённого источника
	RetryBaseDelay time.Duration // задержка перед первым повтором
	LoadTimeout    time.Duration // таймаут одной загрузки каталога
}

type EngineCfg struct {
	MaxFeatures int // размер словаря TF-IDF
	Workers     int // воркеры построения матрицы сходства, 0 - по числу CPU
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RateLimit      int // запросов в минуту с одного IP, 0 - без ограничения
	SwaggerBaseURL string
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type CacheCfg struct {
	TTL time.Duration // время жизни закэшированной выдачи
}

type PGDBCfg struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsURL string
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Бакет с каталогом
	ObjectKey         string // Ключ CSV-объекта каталога
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	engine, err := loadEngineCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cache, err := loadCacheCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	config := &Config{
		Catalog: catalog,
		Engine:  engine,
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Cache:   cache,
		Redis:   redis,
		Kafka:   kafka,
	}

	switch catalog.Source {
	case SourcePostgres:
		config.Db, err = loadPGDBCfg(log)
	case SourceMinio:
		config.Minio, err = loadMinIOCfg(log)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return config, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultPath           = "data/movies.csv"
		defaultMaxRetries     = 3
		defaultRetryBaseDelay = time.Second
		defaultLoadTimeout    = time.Minute
	)

	source := strings.ToLower(getEnvOrDefault("CATALOG_SOURCE", SourceFile))
	switch source {
	case SourceFile, SourceMinio, SourcePostgres:
	default:
		err := fmt.Errorf("%w: %s", e.ErrUnknownSource, source)
		log.Errorf(err, "invalid CATALOG_SOURCE")
		return nil, err
	}

	maxRetries, err := parseIntEnv("CATALOG_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_MAX_RETRIES")
		return nil, err
	}

	retryBaseDelay, err := parseDurationEnv("CATALOG_RETRY_DELAY", defaultRetryBaseDelay)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_RETRY_DELAY")
		return nil, err
	}

	loadTimeout, err := parseDurationEnv("CATALOG_LOAD_TIMEOUT", defaultLoadTimeout)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_LOAD_TIMEOUT")
		return nil, err
	}

	return &CatalogCfg{
		Source:         source,
		Path:           getEnvOrDefault("CATALOG_PATH", defaultPath),
		MaxRetries:     maxRetries,
		RetryBaseDelay: retryBaseDelay,
		LoadTimeout:    loadTimeout,
	}, nil
}

func loadEngineCfg(log logger.Logger) (*EngineCfg, error) {
	const (
		defaultMaxFeatures = 5000
		defaultWorkers     = 0
	)

	maxFeatures, err := parseIntEnv("MAX_FEATURES", defaultMaxFeatures)
	if err != nil || maxFeatures <= 0 {
		err = fmt.Errorf("%w: MAX_FEATURES must be a positive integer", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid MAX_FEATURES")
		return nil, err
	}

	workers, err := parseIntEnv("SIMILARITY_WORKERS", defaultWorkers)
	if err != nil || workers < 0 {
		err = fmt.Errorf("%w: SIMILARITY_WORKERS must be a non-negative integer", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid SIMILARITY_WORKERS")
		return nil, err
	}

	return &EngineCfg{
		MaxFeatures: maxFeatures,
		Workers:     workers,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
		defaultRateLimit    = 600
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	rateLimit, err := parseIntEnv("HTTP_RATE_LIMIT", defaultRateLimit)
	if err != nil {
		log.Errorf(err, "invalid HTTP_RATE_LIMIT")
		return nil, err
	}

	return &HTTPConfig{
		Port:           port,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		RateLimit:      rateLimit,
		SwaggerBaseURL: getEnvOrDefault("SWAGGER_BASE_URL", "http://localhost:"+port),
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadCacheCfg(log logger.Logger) (*CacheCfg, error) {
	const defaultTTL = 10 * time.Minute

	ttl, err := parseDurationEnv("CACHE_TTL", defaultTTL)
	if err != nil {
		log.Errorf(err, "invalid CACHE_TTL")
		return nil, err
	}

	return &CacheCfg{TTL: ttl}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost          = "localhost"
		defaultPort          = "5432"
		defaultSSLMode       = "disable"
		defaultMigrationsURL = "file://db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:          getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:          getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:          user,
		Password:      password,
		DBName:        dbName,
		SSLMode:       getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsURL: getEnvOrDefault("MIGRATIONS_URL", defaultMigrationsURL),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL    = false
		defaultEndpoint  = "minio:9000"
		defaultObjectKey = "movies.csv"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	bucket := getEnv("CATALOG_BUCKET")
	if bucket == "" {
		err := fmt.Errorf("CATALOG_BUCKET is required")
		log.Errorf(err, "missing CATALOG_BUCKET")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        bucket,
		ObjectKey:         getEnvOrDefault("CATALOG_OBJECT", defaultObjectKey),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}, nil
}

// loadRedisCfg возвращает nil, если REDIS_ADDR не задан: тогда используется кэш в памяти процесса.
func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	addr := getEnv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     max(readTimeout, writeTimeout),
	}, nil
}

// loadKafkaCfg возвращает nil, если KAFKA_BROKERS не задан: события тогда не публикуются.
func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "recommender-events"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokerStr := getEnv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, nil
	}

	var brokers []string
	for _, broker := range strings.Split(brokerStr, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return intValue, nil
}
