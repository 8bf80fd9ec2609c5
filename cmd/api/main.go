// @title           Legal Document Generation API
// @version         1.0
// @description     Generates styled legal documents from plain-language scenarios.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/YasinSaleem/legal-doc-ai/internal/audit"
	"github.com/YasinSaleem/legal-doc-ai/internal/cache"
	"github.com/YasinSaleem/legal-doc-ai/internal/cache/qdrantDB"
	"github.com/YasinSaleem/legal-doc-ai/internal/cleanup"
	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/embedding/googleEmbedding"
	"github.com/YasinSaleem/legal-doc-ai/internal/handlers"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm/gemini"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm/openai"
	"github.com/YasinSaleem/legal-doc-ai/internal/pipeline"
	"github.com/YasinSaleem/legal-doc-ai/internal/schema"
	"github.com/YasinSaleem/legal-doc-ai/internal/server"
	"github.com/YasinSaleem/legal-doc-ai/internal/store"
	"github.com/YasinSaleem/legal-doc-ai/internal/style"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

var listenAddr string

func main() {

	logging.Init(config.IS_PROD, config.LOG_LEVEL_PROD)
	var logger = logging.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	if err := config.EnsureDirectories(); err != nil {
		logger.Error("Could not create data directories", "error", err)
		return
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//AI backends. A nil provider is survivable: the pipeline degrades to
	//template fallbacks, so the server still produces documents.
	var provider llm.Provider
	switch config.LLMProviderName() {
	case "openai":
		provider = openai.GetOpenAIClient(config.OpenAIModelName, config.OpenAIAPIKey())
	default:
		provider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GeminiAPIKey())
	}
	if provider == nil {
		logger.Error("No AI provider available, running on template fallbacks only")
	}

	embedder := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GeminiAPIKey())

	//nil pointers stay out of the interface so the pipeline's nil checks hold
	var contentCache cache.ContentCache
	if qc := qdrantDB.GetQdrantClient(serviceContext); qc != nil {
		contentCache = qc
	} else {
		logger.Info("Semantic content cache disabled")
	}

	var artifacts store.ArtifactStore
	if ms := store.GetMinioArtifactStore(serviceContext); ms != nil {
		artifacts = ms
	} else {
		logger.Info("Object storage offline, keeping artifacts on local disk")
		artifacts = store.NewLocalArtifactStore(config.DocOutputDir())
	}

	var records store.RecordStore
	if rs := store.GetRedisRecordStore(serviceContext, config.RetentionWindow()); rs != nil {
		records = rs
	} else {
		logger.Error("Redis record store is offline")
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			return
		}
		records = store.InitInMemoryRecordStore(config.RetentionWindow())
	}

	schemas := schema.NewStore(config.SchemaDir())
	styles := style.NewStore(config.StyleDir())

	logger.Info("Starting generation pipeline")
	service := pipeline.InitService(pipeline.ServiceConfig{
		Provider:       provider,
		Embedder:       embedder,
		Cache:          contentCache,
		Schemas:        schemas,
		Styles:         styles,
		Artifacts:      artifacts,
		Records:        records,
		Auditor:        audit.New(config.MetadataOutputDir()),
		RepairAttempts: config.RepairAttempts(),
	})

	handlers.InitDocHandler(service, artifacts, schemas, records)

	//expired artifacts are swept for as long as the service context lives
	sweeper := cleanup.NewSweeper(artifacts, config.RetentionWindow())
	go sweeper.Run(serviceContext)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
