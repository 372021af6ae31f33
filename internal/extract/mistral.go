package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultMistralURL   = "https://api.mistral.ai/v1"
	DefaultMistralModel = "pixtral-12b-latest"

	defaultMaxAttempts = 3
	defaultBackoff     = time.Second
)

// errRateLimited marks a 429 response, the only status that is retried.
var errRateLimited = errors.New("rate limited")

// MistralExtractor reads receipts with Mistral's vision chat completions API.
type MistralExtractor struct {
	apiKey      string
	baseURL     string
	model       string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
}

type MistralOption func(*MistralExtractor)

func WithBaseURL(url string) MistralOption {
	return func(m *MistralExtractor) { m.baseURL = url }
}

func WithModel(model string) MistralOption {
	return func(m *MistralExtractor) { m.model = model }
}

func WithHTTPClient(c *http.Client) MistralOption {
	return func(m *MistralExtractor) { m.httpClient = c }
}

// WithRetry sets the attempt count and the base delay, which doubles after each 429.
func WithRetry(attempts int, backoff time.Duration) MistralOption {
	return func(m *MistralExtractor) {
		m.maxAttempts = attempts
		m.backoff = backoff
	}
}

// NewMistralExtractor creates an extractor using apiKey.
func NewMistralExtractor(apiKey string, opts ...MistralOption) *MistralExtractor {
	m := &MistralExtractor{
		apiKey:      apiKey,
		baseURL:     DefaultMistralURL,
		model:       DefaultMistralModel,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.maxAttempts < 1 {
		m.maxAttempts = 1
	}
	return m
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract sends img to the model and parses its JSON answer.
func (m *MistralExtractor) Extract(ctx context.Context, img Image) (*Result, error) {
	mimeType := img.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(img.Data)
	}

	body, err := json.Marshal(chatRequest{
		Model: m.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "image_url", ImageURL: &imageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(img.Data)),
				}},
				{Type: "text", Text: receiptPrompt},
			},
		}},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var content string
	var lastErr error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		content, lastErr = m.complete(ctx, body)
		if lastErr == nil || !errors.Is(lastErr, errRateLimited) {
			break
		}
		if attempt < m.maxAttempts {
			delay := m.backoff * time.Duration(1<<(attempt-1))
			slog.Warn("Extraction rate limited, retrying",
				"file_name", img.FileName, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse extraction result: %w", err)
	}
	if !result.IsReceipt {
		reason := result.Reason
		if reason == "" {
			reason = "the image doesn't appear to be a valid receipt"
		}
		return nil, fmt.Errorf("%w: %s", ErrNotReceipt, reason)
	}

	result.FileName = img.FileName
	if result.FileName == "" {
		result.FileName = "uploaded_receipt"
	}
	return &result, nil
}

func (m *MistralExtractor) complete(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("extraction API returned status %d: %w", resp.StatusCode, errRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extraction API returned status %d: %s", resp.StatusCode, string(data))
	}

	var chat chatResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return "", errors.New("extraction API returned no content")
	}
	return chat.Choices[0].Message.Content, nil
}
