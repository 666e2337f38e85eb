package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Settings struct {
	Port              string
	Env               string
	LogLevel          string
	DatabaseDSN       string
	PassTokenTTL      time.Duration
	AttemptRetention  time.Duration
	QuestionBankFile  string
	QuestionsPerTest  int
	TimePerQuestion   time.Duration
	PassThreshold     float64
	NoticeDuration    time.Duration
	UploadDir         string
	UploadMaxBytes    int64
	UploadRequirePass bool
	CorsAllowedOrigin string
	GeminiModel       string
}

var Current Settings

func Init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Could not load .env file")
	}

	Current = Load()
	initLogger(Current)
}

// Load reads the settings from the environment, falling back to defaults.
func Load() Settings {
	return Settings{
		Port:              getEnv("PORT", "5000"),
		Env:               getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		PassTokenTTL:      getDuration("PASS_TOKEN_TTL", 24*time.Hour),
		AttemptRetention:  getDuration("ATTEMPT_RETENTION", 30*time.Minute),
		QuestionBankFile:  os.Getenv("QUESTION_BANK_FILE"),
		QuestionsPerTest:  getInt("QUESTIONS_PER_TEST", 10),
		TimePerQuestion:   getDuration("TIME_PER_QUESTION", 30*time.Second),
		PassThreshold:     getFloat("PASS_THRESHOLD", 6),
		NoticeDuration:    getDuration("NOTICE_DURATION", 2*time.Second),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes:    int64(getInt("UPLOAD_MAX_BYTES", 10<<20)),
		UploadRequirePass: getBool("UPLOAD_REQUIRE_PASS", false),
		CorsAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

func (s Settings) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.WithField("key", key).Warnf("Invalid integer %q, using default %d", v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		logrus.WithField("key", key).Warnf("Invalid number %q, using default %v", v, fallback)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithField("key", key).Warnf("Invalid boolean %q, using default %v", v, fallback)
		return fallback
	}
	return b
}

// getDuration accepts Go durations ("30s") or a bare number of seconds ("30").
func getDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.WithField("key", key).Warnf("Invalid duration %q, using default %s", v, fallback)
		return fallback
	}
	return d
}
