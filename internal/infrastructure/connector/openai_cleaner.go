package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/CariHQ/nnp-web/internal/domain/pressimport"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

const (
	cleanSystemPrompt = `You are a text cleaning assistant for press releases. Clean up OCR errors, fix formatting, correct dates (e.g., "56506" should be "2024"), fix typos, and improve readability while preserving the original meaning and structure. Return the cleaned, properly formatted press release text.`
	cleanUserPrompt   = "Clean and format this press release text. Fix OCR errors, correct dates, and improve formatting:\n\n%s"

	extractSystemPrompt = `You are a date extraction expert for press releases. Extract the CORRECT publication date from the press release content. Look for dates near "For Immediate Release", in headers, or at the beginning of the document. Ignore OCR errors (like "56506" should be "2024"). Return ONLY the date in YYYY-MM-DD format, or "null" if no valid date can be found.`
	extractUserPrompt   = "Extract the publication date from this press release. Look for the date that appears with \"For Immediate Release\" or in the header. Here's the content:\n\n%s"

	repairSystemPrompt = `You are a date extraction assistant. Extract the correct date from the given text. Return ONLY a date in YYYY-MM-DD format, or "null" if no valid date can be found. Fix any OCR errors (e.g., "56437" should be "2024").`
	repairUserPrompt   = "Extract the correct date from this press release. The OCR extracted date text is: %q. Here's the relevant content:\n\n%s"

	extractContextChars = 3000
	repairContextChars  = 1000
)

// OpenAICleaner implements pressimport.ContentCleaner with chat completions
type OpenAICleaner struct {
	client openai.Client
	model  openai.ChatModel
	logger logger.Logger
}

// NewContentCleaner returns an OpenAI backed cleaner, or a pass-through
// cleaner when apiKey is empty
func NewContentCleaner(apiKey string, logger logger.Logger, opts ...option.RequestOption) pressimport.ContentCleaner {
	if apiKey == "" {
		logger.Warn("OPENAI_API_KEY not set, press release cleanup is disabled")
		return PassthroughCleaner{}
	}
	return NewOpenAICleaner(apiKey, logger, opts...)
}

// NewOpenAICleaner creates a cleaner using gpt-4o-mini
func NewOpenAICleaner(apiKey string, logger logger.Logger, opts ...option.RequestOption) *OpenAICleaner {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAICleaner{
		client: openai.NewClient(opts...),
		model:  openai.ChatModelGPT4oMini,
		logger: logger,
	}
}

// CleanContent asks the model to fix OCR noise. An empty answer returns raw.
func (c *OpenAICleaner) CleanContent(ctx context.Context, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return raw, nil
	}

	answer, err := c.complete(ctx, cleanSystemPrompt, fmt.Sprintf(cleanUserPrompt, raw), 0.2, 4000)
	if err != nil {
		return raw, fmt.Errorf("content cleaning failed: %w", err)
	}
	if answer == "" {
		return raw, nil
	}

	c.logger.Debug("Cleaned content (", len(answer), " chars)")
	return answer, nil
}

// ExtractDate asks the model for the publication date of content
func (c *OpenAICleaner) ExtractDate(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	answer, err := c.complete(ctx, extractSystemPrompt, fmt.Sprintf(extractUserPrompt, strutil.Truncate(content, extractContextChars)), 0.1, 50)
	if err != nil {
		return "", fmt.Errorf("date extraction failed: %w", err)
	}
	return dateAnswer(answer), nil
}

// RepairDate asks the model to correct a garbled date fragment
func (c *OpenAICleaner) RepairDate(ctx context.Context, fragment, content string) (string, error) {
	answer, err := c.complete(ctx, repairSystemPrompt, fmt.Sprintf(repairUserPrompt, fragment, strutil.Truncate(content, repairContextChars)), 0.1, 50)
	if err != nil {
		return "", fmt.Errorf("date repair failed: %w", err)
	}
	return dateAnswer(answer), nil
}

func (c *OpenAICleaner) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func dateAnswer(answer string) string {
	if strings.EqualFold(answer, "null") {
		return ""
	}
	return answer
}

// PassthroughCleaner leaves content untouched and never finds a date
type PassthroughCleaner struct{}

// CleanContent returns raw
func (PassthroughCleaner) CleanContent(_ context.Context, raw string) (string, error) {
	return raw, nil
}

// ExtractDate returns ""
func (PassthroughCleaner) ExtractDate(context.Context, string) (string, error) {
	return "", nil
}

// RepairDate returns ""
func (PassthroughCleaner) RepairDate(context.Context, string, string) (string, error) {
	return "", nil
}
