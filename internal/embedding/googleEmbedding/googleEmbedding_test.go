package googleEmbedding

import (
	"testing"

	"google.golang.org/genai"
)

func TestFirstVector(t *testing.T) {
	tests := []struct {
		name    string
		result  *genai.EmbedContentResponse
		wantErr bool
	}{
		{"nil response", nil, true},
		{"no embeddings", &genai.EmbedContentResponse{}, true},
		{"empty values", &genai.EmbedContentResponse{
			Embeddings: []*genai.ContentEmbedding{{Values: nil}},
		}, true},
		{"vector present", &genai.EmbedContentResponse{
			Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.1, 0.2}}},
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vec, err := firstVector(tc.result)
			if tc.wantErr {
				if err == nil {
					t.Error("expected an error for a vectorless response")
				}
				return
			}
			if err != nil {
				t.Fatalf("firstVector failed: %v", err)
			}
			if len(vec) != 2 {
				t.Errorf("vector = %v", vec)
			}
		})
	}
}
