package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Session SessionConfig
	Auth    AuthConfig
	Upload  UploadConfig
}

type AppConfig struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

type AuthConfig struct {
	DefaultRole        string
	AllowDevRegister   bool
	LoginRatePerMinute int
}

type UploadConfig struct {
	Dir        string
	MaxBytes   int64
	PublicPath string
}

// IsProduction reports whether APP_ENV is set to production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LoadConfig reads the given env file (missing file is fine) and overlays the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:               v.GetString("APP_PORT"),
			Env:                v.GetString("APP_ENV"),
			LogLevel:           v.GetString("LOG_LEVEL"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Driver:     v.GetString("DB_DRIVER"),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SQLitePath: v.GetString("DB_SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Session: SessionConfig{
			TTL:        sessionTTL,
			CookieName: v.GetString("SESSION_COOKIE_NAME"),
		},
		Auth: AuthConfig{
			DefaultRole:        v.GetString("AUTH_DEFAULT_ROLE"),
			AllowDevRegister:   v.GetBool("AUTH_ALLOW_DEV_REGISTER"),
			LoginRatePerMinute: v.GetInt("RATE_LIMIT_LOGIN_PER_MINUTE"),
		},
		Upload: UploadConfig{
			Dir:        v.GetString("UPLOAD_DIR"),
			MaxBytes:   v.GetInt64("UPLOAD_MAX_BYTES"),
			PublicPath: v.GetString("UPLOAD_PUBLIC_PATH"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "foodstall")
	v.SetDefault("DB_SQLITE_PATH", "foodstall.db")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "foodstall_session")
	v.SetDefault("AUTH_DEFAULT_ROLE", "staff")
	v.SetDefault("AUTH_ALLOW_DEV_REGISTER", false)
	v.SetDefault("RATE_LIMIT_LOGIN_PER_MINUTE", 10)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	v.SetDefault("UPLOAD_PUBLIC_PATH", "/uploads/")
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
