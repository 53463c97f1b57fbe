package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Content ContentConfig
	EmailJS EmailJSConfig
	SMTP    SMTPConfig
	Resume  ResumeConfig
	Contact ContactConfig
	Session SessionConfig
	App     AppConfig
}

type ServerConfig struct {
	Port            string
	BaseURL         string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type ContentConfig struct {
	// Path to a YAML file overriding the embedded portfolio content.
	Path string
}

type EmailJSConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Endpoint   string
}

// Configured reports whether all three EmailJS identifiers are present.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}

type ResumeConfig struct {
	Path     string
	Filename string
	S3Bucket string
	S3Key    string
	Region   string
}

type ContactConfig struct {
	SchedulingURL string
	RatePerMinute int
	Burst         int
}

type SessionConfig struct {
	IdleTTL   time.Duration
	SweepSpec string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			BaseURL:         strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS"),
		},
		Content: ContentConfig{
			Path: getEnv("CONTENT_PATH", ""),
		},
		EmailJS: EmailJSConfig{
			ServiceID:  getEnv("EMAILJS_SERVICE_ID", ""),
			TemplateID: getEnv("EMAILJS_TEMPLATE_ID", ""),
			PublicKey:  getEnv("EMAILJS_PUBLIC_KEY", ""),
			PrivateKey: getEnv("EMAILJS_PRIVATE_KEY", ""),
			Endpoint:   getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
		},
		SMTP: SMTPConfig{
			Host:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:    getEnv("SMTP_PORT", "587"),
			User:    getEnv("SMTP_USER", ""),
			Pass:    getEnv("SMTP_PASS", ""),
			ToEmail: getEnv("TO_EMAIL", ""),
		},
		Resume: ResumeConfig{
			Path:     getEnv("RESUME_PATH", "public/resume.pdf"),
			Filename: getEnv("RESUME_FILENAME", "resume.pdf"),
			S3Bucket: getEnv("RESUME_S3_BUCKET", ""),
			S3Key:    getEnv("RESUME_S3_KEY", "resume.pdf"),
			Region:   getEnv("AWS_REGION", "us-east-1"),
		},
		Contact: ContactConfig{
			SchedulingURL: getEnv("SCHEDULING_URL", "https://cal.com/zachkp/consultation"),
			RatePerMinute: getEnvAsInt("CONTACT_RATE_PER_MIN", 5),
			Burst:         getEnvAsInt("CONTACT_BURST", 3),
		},
		Session: SessionConfig{
			IdleTTL:   getEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
			SweepSpec: getEnv("SESSION_SWEEP_SPEC", "0 */10 * * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("BASE_URL must be an absolute http(s) URL, got %q", c.Server.BaseURL)
	}

	if c.Resume.Path == "" && c.Resume.S3Bucket == "" {
		return fmt.Errorf("RESUME_PATH or RESUME_S3_BUCKET is required")
	}

	if c.Contact.RatePerMinute <= 0 || c.Contact.Burst <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MIN and CONTACT_BURST must be positive")
	}

	if c.Session.IdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
