package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// ErrDelegateUnavailable signals that the delegate produced no usable reply.
// The orchestrator absorbs it and falls back to the rule-based generators;
// it is never surfaced to the end user.
var ErrDelegateUnavailable = errors.New("ai delegate unavailable")

// Client posts chat completions to an Ollama-compatible endpoint.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a delegate client with a bounded call timeout.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

// Complete sends the system instruction and user turn to the completion
// endpoint and returns the reply text. Any transport error, non-success
// status or empty reply maps to ErrDelegateUnavailable.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrDelegateUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrDelegateUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDelegateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrDelegateUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrDelegateUnavailable, err)
	}

	reply := strings.TrimSpace(parsed.Message.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrDelegateUnavailable)
	}
	return reply, nil
}

// BuildSystemPrompt assembles the company framing, caller identity, detected
// topic and the entire reference data store into one grounding instruction.
func BuildSystemPrompt(username string, role domain.Role, topic domain.Topic, referenceData string) string {
	var b strings.Builder
	b.WriteString("You are the internal assistant for Cascade Freight Systems, a logistics company.\n")
	fmt.Fprintf(&b, "You are answering employee %q with role %q. Detected topic: %s.\n\n", username, role, topic)
	b.WriteString("Company reference data:\n")
	b.WriteString(referenceData)
	b.WriteString("\nRules: answer only from the reference data above. If a shipment id is not ")
	b.WriteString("listed, say so explicitly instead of guessing. Explain any role restriction ")
	b.WriteString("that applies to the caller. Be concise.")
	return b.String()
}
