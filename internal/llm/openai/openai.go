package openai

import (
	"context"
	"errors"
	"sync"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/customHttpClient"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemInstruction = "You are an expert legal document assistant. " +
	"Follow the requested output format exactly. The generated text is reviewed by humans; " +
	"do not add disclaimers or commentary outside the requested structure."

type llmClient struct {
	client    openaisdk.Client
	modelName string
}

var (
	logger *logging.Logger
	shared *llmClient
	once   sync.Once
)

// GetOpenAIClient returns the shared OpenAI provider, selected when
// LLM_PROVIDER=openai. Returns nil without an API key.
func GetOpenAIClient(modelName string, apikey string) llm.Provider {
	once.Do(func() {
		logger = logging.NewLogger("llm_openai")
		if apikey == "" {
			logger.Error("OpenAI API key is empty")
			return
		}
		shared = &llmClient{
			client: openaisdk.NewClient(
				option.WithAPIKey(apikey),
				option.WithHTTPClient(customHttpClient.Pooled()),
			),
			modelName: modelName,
		}
		logger.Info("OpenAI client created", "model", modelName)
	})

	if shared == nil {
		return nil
	}
	return shared
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	completion, err := c.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(systemInstruction),
			openaisdk.UserMessage(prompt),
		},
		Model:       openaisdk.ChatModel(c.modelName),
		Temperature: openaisdk.Float(config.ModelTemperature),
	})
	if err != nil {
		log.Error("OpenAI call failed", "error", err)
		return "", err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.New("openai returned an empty completion")
	}
	return completion.Choices[0].Message.Content, nil
}
