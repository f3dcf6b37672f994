package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/linskybing/creative-desk/pkg/logger"
)

var (
	JwtSecret     string
	Issuer        string
	TokenTTLHours int
	DbHost        string
	DbPort        string
	DbUser        string
	DbPassword    string
	DbName        string
	ServerPort    string
	AppEnv        string
	IsProduction  bool
	CORSOrigins   []string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MaxUploadMB    int64

	ReservedAdminUsername = "admin"
	AdminPassword         string
	SeedFile              string

	NotificationRetentionDays int
	ReminderIntervalMinutes   int
	RunHousekeeping           bool

	ElevatedRoles = []string{"admin", "manager"}
	AdminRoles    = []string{"admin"}
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Info().Msg("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "creative-desk")
	TokenTTLHours = getEnvInt("TOKEN_TTL_HOURS", 24)
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "creative_desk")
	ServerPort = getEnv("SERVER_PORT", "8080")
	AppEnv = getEnv("APP_ENV", "development")
	IsProduction = AppEnv == "production"
	CORSOrigins = splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "creative-desk")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MaxUploadMB = int64(getEnvInt("MAX_UPLOAD_MB", 25))

	ReservedAdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPassword = getEnv("ADMIN_PASSWORD", "admin123")
	SeedFile = getEnv("SEED_FILE", "")

	NotificationRetentionDays = getEnvInt("NOTIFICATION_RETENTION_DAYS", 30)
	ReminderIntervalMinutes = getEnvInt("REMINDER_INTERVAL_MINUTES", 60)
	RunHousekeeping, _ = strconv.ParseBool(getEnv("RUN_HOUSEKEEPING", "true"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
