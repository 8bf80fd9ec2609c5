package qdrantDB

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
	"github.com/qdrant/go-client/qdrant"
)

var (
	logger          *logging.Logger
	qdrantInstance  *qdrant.Client
	once            sync.Once
	dimension       = uint64(config.EmbeddingOutputDimensionality)
	cacheCollection = "content-cache"
)

type ClientHolder struct {
	QObj *qdrant.Client
}

// GetQdrantClient returns the shared qdrant client backing the semantic
// content cache, or nil when qdrant is unreachable (caching is optional).
func GetQdrantClient(ctx context.Context) *ClientHolder {
	once.Do(func() {
		logger = logging.NewLogger("Qdrant")
		res := newClient(ctx)
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &ClientHolder{QObj: qdrantInstance}
}

func newClient(ctx context.Context) *qdrant.Client {
	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		logger.Info("QDRANT_HOST not set, semantic cache disabled")
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	if err != nil {
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate qdrant client", "error", err)
		return nil
	}

	if err = createCollection(ctx, client, cacheCollection); err != nil {
		logger.Error("could not create collection", "collectionName", cacheCollection, "error", err)
		return nil
	}
	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	if err := qi.Close(); err != nil {
		logger.Error("could not close Qdrant", "error", err)
		return
	}
	logger.Info("Closed Qdrant")
}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}
