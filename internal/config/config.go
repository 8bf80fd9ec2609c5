package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 180 * time.Second //generation is synchronous, a request holds the connection through all AI calls
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":8000"

	//uploads
	MaxUploadSize      = 32 << 20 //32mb
	MaxScenarioLength  = 8000
	MinScenarioLength  = 10
	UploadTempDirName  = "working"
	SchemaDirName      = "schemas"
	StyleDirName       = "styles"
	DocOutputDirName   = "output/docs"
	MetadataOutputName = "output/metadata"

	//outbound http pooling
	MaxIdleConns        = 100
	MaxIdleConnsPerHost = 10
	IdleConnTimeout     = 90 * time.Second

	//ai model calls
	AICallTimeout    = 30 * time.Second
	PipelineTimeout  = 120 * time.Second
	GeminiModelName  = "gemini-2.0-flash"
	OpenAIModelName  = "gpt-4o-mini"
	ModelTemperature = 0.2

	//embedding + semantic cache
	GoogleEmbeddingModel                = "gemini-embedding-001"
	EmbeddingOutputDimensionality int32 = 1536
	CacheSimilarityCutoff               = 0.97
	QdrantGrpcPort                      = 6334
	QdrantUseTLS                        = false
	QdrantPoolSize                      = 1

	//validation loop
	DefaultRepairAttempts = 2

	//artifact retention
	DefaultRetentionWindow = 1 * time.Hour

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisRecordStore = 0

	//if redis init fails, records fall back to an in-memory store
	FALLBACK_REDIS_TO_INTERNALSTORE = true
)

// Values below come from the environment (.env is auto-loaded); they are read
// once at startup and injected, not consulted ad hoc by components.

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// LLMProviderName selects which AI backend serves the pipeline's prompts.
func LLMProviderName() string {
	return getEnv("LLM_PROVIDER", "gemini")
}

func AuthToken() string {
	return os.Getenv("API_AUTH_TOKEN")
}

// NoAuthBypass disables bearer-token checks for local development.
func NoAuthBypass() bool {
	return getEnvBool("NO_AUTH_BYPASS", true)
}

func RepairAttempts() int {
	return getEnvInt("REPAIR_ATTEMPTS", DefaultRepairAttempts)
}

func RetentionWindow() time.Duration {
	return getEnvDuration("RETENTION_WINDOW", DefaultRetentionWindow)
}

func BaseDir() string {
	if dir := os.Getenv("LEGALDOC_BASE_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func DocOutputDir() string      { return filepath.Join(BaseDir(), DocOutputDirName) }
func MetadataOutputDir() string { return filepath.Join(BaseDir(), MetadataOutputName) }
func SchemaDir() string         { return filepath.Join(BaseDir(), SchemaDirName) }
func StyleDir() string          { return filepath.Join(BaseDir(), StyleDirName) }
func WorkingDir() string        { return filepath.Join(BaseDir(), UploadTempDirName) }

// EnsureDirectories creates the on-disk layout before the server starts.
func EnsureDirectories() error {
	for _, dir := range []string{
		DocOutputDir(),
		MetadataOutputDir(),
		SchemaDir(),
		StyleDir(),
		WorkingDir(),
	} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
