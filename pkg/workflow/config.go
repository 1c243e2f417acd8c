package workflow

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the generation service,
// loaded from the environment (with .env support for local runs).
type Config struct {
	OutputDir string
	UploadDir string
	FontDir   string

	MaxConcurrent int
	TaskTimeout   time.Duration

	FFmpegPath   string
	VideoQuality int

	GeminiAPIKey string
	GeminiModel  string

	Debug bool
}

// LoadConfig reads configuration from the environment. A .env file in
// the working directory is merged in first when present; a missing file
// is not an error. The Gemini key is optional; text suggestion is simply
// unavailable without it.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		OutputDir:     getEnv("OUTPUT_DIR", "output"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		FontDir:       getEnv("FONT_DIR", "assets/fonts"),
		MaxConcurrent: getEnvInt("MAX_CONCURRENT", 4),
		TaskTimeout:   time.Duration(getEnvInt("TASK_TIMEOUT_SECONDS", 120)) * time.Second,
		FFmpegPath:    getEnv("FFMPEG_PATH", "ffmpeg"),
		VideoQuality:  getEnvInt("VIDEO_QUALITY", 95),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnv("GEMINI_MODEL", ""),
		Debug:         getEnvBool("DEBUG", false),
	}

	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = 120 * time.Second
	}
	if cfg.VideoQuality < 1 || cfg.VideoQuality > 100 {
		cfg.VideoQuality = 95
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
