// Package ollama is a client for the generate endpoint of an
// Ollama-compatible API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults when neither flags, environment, nor config file say otherwise.
const (
	DefaultHost  = "http://localhost:11434"
	DefaultModel = "llama2"
)

// The request timeout and generation parameters are fixed, not
// user-configurable.
const (
	requestTimeout = 30 * time.Second

	temperature = 0.7
	topP        = 0.9
	maxTokens   = 200
)

const promptTemplate = `Transform the following modern English sentence into Shakespearean English.
Use archaic vocabulary, thou/thee/thy pronouns, and elizabethan sentence structure.
Only return the transformed sentence, nothing else.

Modern sentence: "%s"

Shakespearean version:`

// Models tend to echo parts of the prompt back; lines starting with these
// prefixes are skipped when picking the answer out of the generated text.
var echoedPrefixes = []string{"Transform", "Modern", "Shakespearean"}

type Config struct {
	baseURL string
	model   string
}

func NewConfig(baseURL, model string) *Config {
	return &Config{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

type Client struct {
	config     *Config
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(config *Config, logger zerolog.Logger) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     1 * time.Minute,
			},
		},
		logger: logger,
	}
}

func (c *Client) Model() string {
	return c.config.model
}

func (c *Client) Host() string {
	return c.config.baseURL
}

// Transform sends the sentence to the generation service wrapped in the
// Shakespeare prompt and returns the first usable line of the generated
// text. An empty model falls back to the configured default.
func (c *Client) Transform(ctx context.Context, sentence string, model string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", ErrEmptyPrompt
	}

	if model == "" {
		model = c.config.model
	}

	reqBody, err := json.Marshal(Request{
		Model:  model,
		Prompt: fmt.Sprintf(promptTemplate, sentence),
		Stream: false,
		Options: &Options{
			Temperature: temperature,
			TopP:        topP,
			MaxTokens:   maxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.config.baseURL, "api/generate"), bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("building POST request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("model", model).Str("url", req.URL.String()).Msg("sending generate request")

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.transportError(err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", c.transportError(err)
	}

	c.logger.Debug().Int("status", rsp.StatusCode).Msg("received generate response")

	switch rsp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", &ModelNotFoundError{Model: model}
	default:
		return "", &RequestFailedError{StatusCode: rsp.StatusCode, Body: string(body)}
	}

	var result GenerateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	text := strings.TrimSpace(result.Response)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return firstCleanLine(text), nil
}

// ListModels fetches the models installed on the service, useful when a
// transform fails with a model-not-found error.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.config.baseURL, "api/tags"), nil)
	if err != nil {
		return nil, fmt.Errorf("building GET request: %w", err)
	}

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, c.transportError(err)
	}

	if rsp.StatusCode != http.StatusOK {
		return nil, &RequestFailedError{StatusCode: rsp.StatusCode, Body: string(body)}
	}

	var tags TagsResponse
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return tags.Models, nil
}

// transportError maps a failed round trip onto the timeout/unreachable
// split the caller cares about.
func (c *Client) transportError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return ErrRequestTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrRequestTimeout
	}

	return &UnreachableError{BaseURL: c.config.baseURL, Err: err}
}

// firstCleanLine returns the first non-empty line that doesn't look like
// the model echoing the prompt instructions back. If every line is
// filtered out, the full text is returned as-is rather than nothing.
func firstCleanLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		echoed := false
		for _, prefix := range echoedPrefixes {
			if strings.HasPrefix(line, prefix) {
				echoed = true
				break
			}
		}
		if !echoed {
			return line
		}
	}

	return text
}
