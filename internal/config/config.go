package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret     string
	TokenTTLHours int

	S3Endpoint          string
	IdentityDocBucket   string
	PassportPhotoBucket string
	AvatarBucket        string

	ResendAPIKey string
	EmailFrom    string

	UPIID         string
	UPIPayeeName  string
	MembershipFee float64
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "temple"),
		MySQLUser: getenv("MYSQL_USER", "temple"),
		MySQLPass: getenv("MYSQL_PASS", "temple"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs: 300,

		JWTSecret:     getenv("JWT_SECRET", ""),
		TokenTTLHours: 24,

		S3Endpoint:          getenv("S3_ENDPOINT", ""),
		IdentityDocBucket:   getenv("S3_BUCKET_IDENTITY_DOCS", "identity-documents"),
		PassportPhotoBucket: getenv("S3_BUCKET_PASSPORT_PHOTOS", "passport-photos"),
		AvatarBucket:        getenv("S3_BUCKET_AVATARS", "avatars"),

		ResendAPIKey: getenv("RESEND_API_KEY", ""),
		EmailFrom:    getenv("EMAIL_FROM", "Temple Membership <onboarding@resend.dev>"),

		UPIID:         getenv("UPI_ID", ""),
		UPIPayeeName:  getenv("UPI_PAYEE_NAME", "Temple Membership"),
		MembershipFee: 1000,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TokenTTLHours = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
