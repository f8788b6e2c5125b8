package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"marketplace/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
)

const envProduction = "production"

type Config struct {
	HTTPPort int
	Env      string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
	CartTTL       time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

// LoadConfig reads the process environment after loading envFile, when it
// exists, into it. Variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	r := envReader{}
	cfg := Config{
		HTTPPort: r.lookupInt("HTTP_PORT", 8080),
		Env:      r.lookupString("APP_ENV", "development"),

		DBHost:     r.lookupString("DB_HOST", ""),
		DBPort:     r.lookupInt("DB_PORT", 5432),
		DBUser:     r.lookupString("DB_USER", ""),
		DBPassword: r.lookupString("DB_PASSWORD", ""),
		DBName:     r.lookupString("DB_NAME", ""),
		DBSslMode:  r.lookupString("DB_SSLMODE", "disable"),

		JWTSecret: r.lookupString("JWT_SECRET", ""),
		JWTTTL:    r.lookupDuration("JWT_TTL", 72*time.Hour),

		RedisHost:     r.lookupString("REDIS_HOST", ""),
		RedisPort:     r.lookupInt("REDIS_PORT", 6379),
		RedisPassword: r.lookupString("REDIS_PASSWORD", ""),
		RedisDB:       r.lookupInt("REDIS_DB", 0),
		CartTTL:       r.lookupDuration("CART_TTL", 168*time.Hour),

		SMTPHost:     r.lookupString("SMTP_HOST", ""),
		SMTPPort:     r.lookupInt("SMTP_PORT", 587),
		SMTPUser:     r.lookupString("SMTP_USER", ""),
		SMTPPassword: r.lookupString("SMTP_PASSWORD", ""),
		MailFrom:     r.lookupString("MAIL_FROM", "no-reply@localhost"),
	}
	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var problems []error
	for name, value := range map[string]string{
		"DB_HOST": c.DBHost, "DB_USER": c.DBUser, "DB_NAME": c.DBName, "JWT_SECRET": c.JWTSecret,
	} {
		if value == "" {
			problems = append(problems, fmt.Errorf("%s is required", name))
		}
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		problems = append(problems, fmt.Errorf("HTTP_PORT %d is out of range", c.HTTPPort))
	}
	if c.JWTTTL <= 0 {
		problems = append(problems, errors.New("JWT_TTL must be positive"))
	}
	return errors.Join(problems...)
}

func (c Config) IsProduction() bool {
	return c.Env == envProduction
}

func (c Config) DatabaseDSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// envReader collects parse failures so that every bad variable is reported at once.
type envReader struct {
	errs []error
}

func (r *envReader) lookupString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (r *envReader) lookupInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func (r *envReader) lookupDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return d
}
