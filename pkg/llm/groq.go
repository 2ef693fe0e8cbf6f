package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Groq serves an OpenAI-compatible API.
const groqBaseURL = "https://api.groq.com/openai/v1"

const DefaultGroqModel = "llama-3.3-70b-versatile"

type GroqClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewGroqClient(apiKey, model string) *GroqClient {
	if model == "" {
		model = DefaultGroqModel
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}
}

func (c *GroqClient) Name() string {
	return "groq/" + c.modelName
}

func (c *GroqClient) Infer(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(inferenceTemperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System + "\n\n" + jsonDirective(req.Field)),
			openai.UserMessage(req.User),
		},
	})

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from groq")
	}

	return extractField(resp.Choices[0].Message.Content, req.Field)
}
