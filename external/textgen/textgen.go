package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

const (
	defaultURL   = "https://api.openai.com/v1"
	defaultModel = "gpt-4o-mini"

	chatCompletionsPath = "/chat/completions"
)

var (
	errEmptyToken      = fmt.Errorf("empty token")
	errEmptyCompletion = fmt.Errorf("completion response has no choices")
)

// TextGen is a synchronous, single-shot text generation call against an
// OpenAI-compatible chat completion endpoint. No retry or streaming; a
// failed call is the caller's problem.
type TextGen interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type client struct {
	url        string
	token      string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

func (c client) Generate(ctx context.Context, system, prompt string) (string, error) {
	if c.token == "" {
		return "", errEmptyToken
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return "", err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, string(d))
	}

	var r chatResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return "", err
	}

	if len(r.Choices) == 0 {
		return "", errEmptyCompletion
	}

	return r.Choices[0].Message.Content, nil
}

func New(url, token, model string, httpClient *http.Client) TextGen {
	u := defaultURL
	if url != "" {
		u = url
	}

	m := defaultModel
	if model != "" {
		m = model
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		url:        u,
		token:      token,
		model:      m,
		httpClient: httpClient,
	}
}
