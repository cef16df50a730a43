package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	AdminUsername       string
	AdminSecret         string
	AllowOrigins        []string
	LogstashTCPAddr     string
	MinIOEndpoint       string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOUseSSL         bool
	MinIOBucketUploads  string
	MinIOPublicURL      string
	SessionTTL          string
	UploadImageMaxBytes int64
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	OpenAIModel         string
	ChatSystemPrompt    string
	AuditLogLimit       int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	imageMax := int64(5 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("UPLOAD_IMAGE_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		imageMax = v
	}

	auditLimit := 200
	if v, err := strconv.Atoi(getenv("AUDIT_LOG_LIMIT", "200")); err == nil && v > 0 {
		auditLimit = v
	}

	return Config{
		Port:                getenv("PORT", "8080"),
		DatabaseURL:         must("DATABASE_URL"),
		JWTSecret:           must("JWT_SECRET"),
		AdminUsername:       getenv("ADMIN_USERNAME", "admin"),
		AdminSecret:         must("ADMIN_SECRET"),
		AllowOrigins:        splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:     getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:       must("MINIO_ENDPOINT"),
		MinIOAccessKey:      must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:      must("MINIO_SECRET_KEY"),
		MinIOUseSSL:         getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketUploads:  getenv("MINIO_BUCKET_UPLOADS", "atlas-uploads"),
		MinIOPublicURL:      getenv("MINIO_PUBLIC_URL", ""),
		SessionTTL:          getenv("SESSION_TTL", "24h"),
		UploadImageMaxBytes: imageMax,
		OpenAIAPIKey:        getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getenv("OPENAI_BASE_URL", ""),
		OpenAIModel:         getenv("OPENAI_MODEL", "gpt-4o-mini"),
		ChatSystemPrompt:    getenv("CHAT_SYSTEM_PROMPT", ""),
		AuditLogLimit:       auditLimit,
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
