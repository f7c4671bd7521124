package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Store drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Object storage backends
const (
	ObjectsFS = "fs"
	ObjectsS3 = "s3"
)

// S3 holds the S3 or MinIO connection settings
type S3 struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// Server is the gateway configuration
type Server struct {
	Addr     string
	LogLevel slog.Level

	DB struct {
		Driver string
		DSN    string
	}

	JWT struct {
		Secret     string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
		ResetTTL   time.Duration
	}

	Objects struct {
		Backend       string
		Root          string
		PublicBaseURL string // база публичных ссылок, пусто для относительных
		MaxUploadSize int64
		S3            S3
	}

	Redis struct {
		Addr     string // пусто, если кэш выключен
		Password string
		DB       int
		TTL      time.Duration
	}

	AMQP struct {
		URL   string // пусто, если события выключены
		Queue string
	}

	RateLimit struct {
		RPS   float64
		Burst int
	}

	MetricsEnabled  bool
	ShutdownTimeout time.Duration
	SweepInterval   time.Duration
	ShowVersion     bool
}

// LoadServer builds the gateway configuration. Flags take precedence over
// UMKM_* variables, which take precedence over .env and the defaults.
func LoadServer(args []string) (*Server, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	var (
		e   env
		cfg = &Server{LogLevel: slog.LevelInfo}
	)

	if v, ok := e.lookup("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			e.fail("LOG_LEVEL", v, err)
		}
	}

	fs := flag.NewFlagSet("umkmhub-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.Addr, "addr", e.str("ADDR", ":8080"), "HTTP listen address")
	fs.Var(levelFlag{level: &cfg.LogLevel}, "log-level", "Log level (debug, info, warn, error)")

	fs.StringVar(&cfg.DB.Driver, "db-driver", e.str("DB_DRIVER", DriverSQLite), "Store driver (sqlite, postgres)")
	fs.StringVar(&cfg.DB.DSN, "db-dsn", e.str("DB_DSN", "umkmhub.db"), "Store DSN or sqlite file path")

	fs.StringVar(&cfg.JWT.Secret, "jwt-secret", e.str("JWT_SECRET", ""), "Secret for signing access tokens")
	fs.DurationVar(&cfg.JWT.AccessTTL, "access-ttl", e.duration("ACCESS_TTL", 15*time.Minute), "Access token lifetime")
	fs.DurationVar(&cfg.JWT.RefreshTTL, "refresh-ttl", e.duration("REFRESH_TTL", 30*24*time.Hour), "Refresh token lifetime")
	fs.DurationVar(&cfg.JWT.ResetTTL, "reset-ttl", e.duration("RESET_TTL", time.Hour), "Password reset token lifetime")

	fs.StringVar(&cfg.Objects.Backend, "objects", e.str("OBJECTS", ObjectsFS), "Object storage backend (fs, s3)")
	fs.StringVar(&cfg.Objects.Root, "objects-root", e.str("OBJECTS_ROOT", "objects"), "Directory of the fs object backend")
	fs.StringVar(&cfg.Objects.PublicBaseURL, "public-url", e.str("PUBLIC_URL", ""), "Base URL of public object links")
	fs.Int64Var(&cfg.Objects.MaxUploadSize, "max-upload", e.size("MAX_UPLOAD", 10<<20), "Upload size limit in bytes")
	fs.StringVar(&cfg.Objects.S3.Region, "s3-region", e.str("S3_REGION", "us-east-1"), "S3 region")
	fs.StringVar(&cfg.Objects.S3.Bucket, "s3-bucket", e.str("S3_BUCKET", ""), "S3 bucket holding every object")
	fs.StringVar(&cfg.Objects.S3.Endpoint, "s3-endpoint", e.str("S3_ENDPOINT", ""), "S3 endpoint for MinIO and compatible stores")
	fs.StringVar(&cfg.Objects.S3.AccessKey, "s3-access-key", e.str("S3_ACCESS_KEY", ""), "S3 access key")
	fs.StringVar(&cfg.Objects.S3.SecretKey, "s3-secret-key", e.str("S3_SECRET_KEY", ""), "S3 secret key")

	fs.StringVar(&cfg.Redis.Addr, "redis-addr", e.str("REDIS_ADDR", ""), "Redis address for the list cache")
	fs.StringVar(&cfg.Redis.Password, "redis-password", e.str("REDIS_PASSWORD", ""), "Redis password")
	fs.IntVar(&cfg.Redis.DB, "redis-db", e.integer("REDIS_DB", 0), "Redis database number")
	fs.DurationVar(&cfg.Redis.TTL, "cache-ttl", e.duration("CACHE_TTL", time.Minute), "List cache lifetime")

	fs.StringVar(&cfg.AMQP.URL, "amqp-url", e.str("AMQP_URL", ""), "AMQP URL for record change events")
	fs.StringVar(&cfg.AMQP.Queue, "amqp-queue", e.str("AMQP_QUEUE", "record.changed"), "AMQP queue name")

	fs.Float64Var(&cfg.RateLimit.RPS, "rate", e.float("RATE_LIMIT", 10), "Requests per second per client")
	fs.IntVar(&cfg.RateLimit.Burst, "burst", e.integer("RATE_BURST", 20), "Request burst per client")

	fs.BoolVar(&cfg.MetricsEnabled, "metrics", e.boolean("METRICS", true), "Expose /metrics")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", e.duration("SHUTDOWN_TIMEOUT", 10*time.Second), "Graceful shutdown timeout")
	fs.DurationVar(&cfg.SweepInterval, "sweep-interval", e.duration("SWEEP_INTERVAL", time.Hour), "Expired token sweep interval")

	if err := e.err(); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Server) validate() error {
	var errs []error

	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown db driver %q", c.DB.Driver))
	}
	if c.DB.DSN == "" {
		errs = append(errs, errors.New("db dsn is required"))
	}

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt secret is required (UMKM_JWT_SECRET or --jwt-secret)"))
	} else if len(c.JWT.Secret) < 32 {
		errs = append(errs, fmt.Errorf("jwt secret must be at least 32 characters long (got %d)", len(c.JWT.Secret)))
	}

	switch c.Objects.Backend {
	case ObjectsFS:
		if c.Objects.Root == "" {
			errs = append(errs, errors.New("objects root is required for the fs backend"))
		}
	case ObjectsS3:
		if c.Objects.S3.Bucket == "" {
			errs = append(errs, errors.New("s3 bucket is required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown objects backend %q", c.Objects.Backend))
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate limit and burst must be positive"))
	}
	if c.Objects.MaxUploadSize <= 0 {
		errs = append(errs, errors.New("upload size limit must be positive"))
	}

	return errors.Join(errs...)
}
