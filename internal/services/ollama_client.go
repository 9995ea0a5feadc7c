package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nextsteps-app/nextsteps-backend/internal/logger"
	"github.com/nextsteps-app/nextsteps-backend/internal/utils"
)

type OllamaClient interface {
	// Generate issues a single blocking completion call and returns the raw
	// text of the model response. No retries; the timeout is the only
	// cancellation mechanism.
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type ollamaClient struct {
	log        *logger.Logger
	baseURL    string
	model      string
	httpClient *http.Client
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func NewOllamaClient(log *logger.Logger) OllamaClient {
	serviceLog := log.With("service", "OllamaClient")
	baseURL := utils.GetEnv("OLLAMA_BASE_URL", "http://localhost:11434", log)
	model := utils.GetEnv("OLLAMA_MODEL", "llama3.2", log)
	timeoutSec := utils.GetEnvAsInt("OLLAMA_TIMEOUT_SECONDS", 120, log)
	return &ollamaClient{
		log:        serviceLog,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

func (c *ollamaClient) Model() string {
	return c.model
}

func (c *ollamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload := ollamaGenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", &buf)
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Ollama call failed", "error", err, "elapsed", time.Since(start))
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response body: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Ollama returned non-2xx", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("%w: ollama http %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var decoded ollamaGenerateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("%w: decode response envelope: %v", ErrUpstreamUnavailable, err)
	}
	if strings.TrimSpace(decoded.Response) == "" {
		return "", ErrEmptyResponse
	}

	c.log.Debug("Ollama call succeeded", "elapsed", time.Since(start), "chars", len(decoded.Response))
	return decoded.Response, nil
}
