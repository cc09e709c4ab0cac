package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	RunMode    string

	CorsOrigins []string

	UploadDir           string
	MaxFileSizeMB       int64
	MaxFilesPerIncident int

	// NotifyRecipient is the username of the operations chief that receives
	// form notifications. Empty means "lowest-id jefe_operaciones account".
	NotifyRecipient string

	StorageBackend string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	WsPollSeconds int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "fleetforms")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "fleetforms")
	ServerPort = getEnv("SERVER_PORT", "8080")
	RunMode = getEnv("RUN_MODE", "debug")

	CorsOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8082"))

	UploadDir = getEnv("UPLOAD_DIR", "uploads/incidencias")
	MaxFileSizeMB = getEnvInt64("MAX_FILE_SIZE_MB", 5)
	MaxFilesPerIncident = int(getEnvInt64("MAX_FILES_PER_INCIDENT", 5))

	NotifyRecipient = getEnv("NOTIFY_RECIPIENT", "")

	StorageBackend = getEnv("STORAGE_BACKEND", "disk")
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "fleetforms-incidencias")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	WsPollSeconds = int(getEnvInt64("WS_POLL_SECONDS", 15))
	// A zero or negative interval would make the push ticker panic.
	if WsPollSeconds < 1 {
		log.Printf("WS_POLL_SECONDS must be at least 1, got %d, using 1", WsPollSeconds)
		WsPollSeconds = 1
	}
}

// MaxFileSizeBytes is the single authoritative per-file upload limit.
func MaxFileSizeBytes() int64 {
	return MaxFileSizeMB * 1024 * 1024
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
