package handlers

import (
	"sync"

	"github.com/YasinSaleem/legal-doc-ai/internal/pipeline"
	"github.com/YasinSaleem/legal-doc-ai/internal/schema"
	"github.com/YasinSaleem/legal-doc-ai/internal/store"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

var (
	handlerInstance *DocHandler //private singleton
	once            sync.Once
	logDH           *logging.Logger
	logRH           *logging.Logger
)

type DocHandler struct {
	service   pipeline.Service
	artifacts store.ArtifactStore
	schemas   *schema.Store
	records   store.RecordStore
}

func InitDocHandler(svc pipeline.Service, artifacts store.ArtifactStore, schemas *schema.Store, records store.RecordStore) {
	once.Do(func() {
		handlerInstance = &DocHandler{
			service:   svc,
			artifacts: artifacts,
			schemas:   schemas,
			records:   records,
		}

		logDH = logging.NewLogger("DocHandler")
		logRH = logging.NewLogger("RequestHandler")
		logDH.Info("Starting document handler")
	})
}
