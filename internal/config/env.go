package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	"rental-backend/internal/db"
	"rental-backend/internal/storage"
)

type Env struct {
	AppAddr         string
	GinMode         string
	ShutdownTimeout time.Duration

	DBDriver          string
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBConnectTimeout  time.Duration
	DBAutoMigrate     bool

	JWTSecret          string
	CORSAllowedOrigins []string
	ReceiptCurrency    string

	S3 storage.S3Config
}

// StorageEnabled reports whether image uploads have a bucket to go to.
func (e Env) StorageEnabled() bool { return e.S3.Bucket != "" }

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", db.DriverMySQL)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_HOST", "127.0.0.1:3306")
	v.SetDefault("DB_NAME", "rental_app")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 25)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "10m")
	v.SetDefault("DB_CONNECT_TIMEOUT", "30s")
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RECEIPT_CURRENCY", "EUR")

	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_USE_PATH_STYLE", false)
	v.SetDefault("S3_REQUEST_TIMEOUT", "30s")
}

// LoadEnv reads the environment, optionally layered over configFile (any
// format viper understands). Environment variables win over the file.
func LoadEnv(configFile string) (Env, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Env{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Env{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	driver, err := db.NormalizeDriver(v.GetString("DB_DRIVER"))
	if err != nil {
		return Env{}, err
	}

	env := Env{
		AppAddr:         strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:         strings.TrimSpace(v.GetString("GIN_MODE")),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		DBDriver:          driver,
		DBDSN:             strings.TrimSpace(v.GetString("DB_DSN")),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		DBConnectTimeout:  v.GetDuration("DB_CONNECT_TIMEOUT"),
		DBAutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),

		JWTSecret:          v.GetString("JWT_SECRET"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		ReceiptCurrency:    strings.ToUpper(strings.TrimSpace(v.GetString("RECEIPT_CURRENCY"))),

		S3: storage.S3Config{
			Bucket:          strings.TrimSpace(v.GetString("S3_BUCKET")),
			Region:          v.GetString("S3_REGION"),
			Endpoint:        strings.TrimSpace(v.GetString("S3_ENDPOINT")),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL:   strings.TrimSpace(v.GetString("S3_PUBLIC_URL")),
			UsePathStyle:    v.GetBool("S3_USE_PATH_STYLE"),
			RequestTimeout:  v.GetDuration("S3_REQUEST_TIMEOUT"),
		},
	}
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	if env.DBDSN == "" {
		env.DBDSN = defaultDSN(driver, v)
	}
	return env, nil
}

func defaultDSN(driver string, v *viper.Viper) string {
	if driver == db.DriverSQLite3 {
		return "file:rental.db?_foreign_keys=on&_busy_timeout=5000"
	}
	cfg := mysql.NewConfig()
	cfg.User = v.GetString("DB_USER")
	cfg.Passwd = v.GetString("DB_PASSWORD")
	cfg.Net = "tcp"
	cfg.Addr = v.GetString("DB_HOST")
	cfg.DBName = v.GetString("DB_NAME")
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.MultiStatements = true
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
