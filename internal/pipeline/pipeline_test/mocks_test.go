package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// mockProvider routes prompts to stage-specific responses by inspecting the
// prompt text, mirroring how the pipeline phrases each stage.
type mockProvider struct {
	mu           sync.Mutex
	calls        []string
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()
	return m.CompleteFunc(ctx, prompt)
}

func (m *mockProvider) promptsSeen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

type mockEmbedder struct {
	GetEmbeddingFunc func(ctx context.Context, text string) ([]float32, error)
}

func (m *mockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	return m.GetEmbeddingFunc(ctx, text)
}

type mockCache struct {
	mu      sync.Mutex
	saved   map[string]docModel.GeneratedContent
	GetFunc func(ctx context.Context, docType docModel.DocType, vec []float32) (docModel.GeneratedContent, bool, error)
}

func (m *mockCache) GetCachedContent(ctx context.Context, docType docModel.DocType, vec []float32) (docModel.GeneratedContent, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, docType, vec)
	}
	return docModel.GeneratedContent{}, false, nil
}

func (m *mockCache) SaveContent(ctx context.Context, id string, docType docModel.DocType, vec []float32, content docModel.GeneratedContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		m.saved = make(map[string]docModel.GeneratedContent)
	}
	m.saved[id] = content
	return nil
}

var errModelDown = errors.New("model unavailable")

// failingProvider fails every call.
func failingProvider() *mockProvider {
	return &mockProvider{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errModelDown
		},
	}
}

// garbageProvider returns non-JSON rubbish for the structured stages and an
// empty reply for repairs, so repairs are skipped rather than replacing
// section text with rubbish.
func garbageProvider() *mockProvider {
	return &mockProvider{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "placeholder tokens") {
				return "", nil
			}
			return "sorry, as a large language model I cannot", nil
		},
	}
}
