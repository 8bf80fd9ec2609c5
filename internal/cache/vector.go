package cache

import (
	"context"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// ContentCache is a semantic cache over generated document content: scenarios
// that embed close enough to a previous request reuse its generated sections
// and skip the AI content call. A nil ContentCache disables caching.
type ContentCache interface {
	GetCachedContent(ctx context.Context, docType docModel.DocType, queryVector []float32) (docModel.GeneratedContent, bool, error)
	SaveContent(ctx context.Context, id string, docType docModel.DocType, vector []float32, content docModel.GeneratedContent) error
}
