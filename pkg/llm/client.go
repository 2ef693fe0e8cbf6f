package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const inferenceTemperature = 0.3

// ErrSchemaMismatch reports a reply that parsed as JSON but did not carry
// the requested field as a non-empty string.
var ErrSchemaMismatch = errors.New("response missing requested field")

// Request is one structured inference call: the model must answer with a
// JSON object holding a single string field named Field.
type Request struct {
	System string
	User   string
	Field  string
}

type Client interface {
	Infer(ctx context.Context, req Request) (string, error)
	Name() string
}

func jsonDirective(field string) string {
	return fmt.Sprintf(`Output as JSON only, no other text: {"%s": "..."}`, field)
}

func extractField(content, field string) (string, error) {
	cleaned := cleanJSONResponse(content)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return "", fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	value, ok := payload[field].(string)
	if !ok {
		return "", fmt.Errorf("%w: %q, content: %s", ErrSchemaMismatch, field, content)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %q is blank", ErrSchemaMismatch, field)
	}

	return value, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
