package qdrantDB

import (
	"context"
	"encoding/json"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/qdrant/go-client/qdrant"
)

// GetCachedContent looks up generated content from a semantically close
// earlier scenario of the same doc type. Only a score above the similarity
// cutoff counts as a hit.
func (db *ClientHolder) GetCachedContent(ctx context.Context, docType docModel.DocType, queryVector []float32) (docModel.GeneratedContent, bool, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	var content docModel.GeneratedContent

	searchResult, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: cacheCollection,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("doc_type", string(docType)),
			},
		},
	})
	if err != nil || len(searchResult) == 0 {
		if err != nil {
			loggr.Error("Cache query failed", "error", err)
		}
		return content, false, err
	}

	loggr.Debug("Nearest cached content", "score", searchResult[0].Score)
	if searchResult[0].Score < config.CacheSimilarityCutoff {
		return content, false, nil
	}

	raw := searchResult[0].Payload["content"].GetStringValue()
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		loggr.Error("Cached content payload is corrupt", "error", err)
		return content, false, nil
	}

	loggr.Info("Semantic cache hit", "docType", docType)
	return content, true, nil
}

func (db *ClientHolder) SaveContent(ctx context.Context, id string, docType docModel.DocType, vector []float32, content docModel.GeneratedContent) error {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}

	_, err = db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: cacheCollection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(id),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"content":   string(raw),
					"doc_type":  string(docType),
					"timestamp": time.Now().Unix(),
				}),
			},
		},
	})
	if err != nil {
		loggr.Error("Saving content to cache failed", "error", err)
	}
	return err
}
