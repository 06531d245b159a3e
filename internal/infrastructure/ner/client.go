package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"career-compass/internal/domain/skills"
)

// Client calls a hosted token-classification endpoint and adapts its output
// to the extractor's Entity shape. The model itself is opaque to this service.
type Client struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *log.Logger
}

type tagRequest struct {
	Inputs  string     `json:"inputs"`
	Options tagOptions `json:"options"`
}

type tagOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type tagEntity struct {
	Entity string `json:"entity"`
	Word   string `json:"word"`
}

func NewClient(endpoint, token string, logger *log.Logger) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    strings.TrimSpace(token),
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

func (c *Client) Tag(ctx context.Context, text string) ([]skills.Entity, error) {
	if c == nil {
		return nil, errors.New("nil ner client")
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	b, err := json.Marshal(tagRequest{Inputs: text, Options: tagOptions{WaitForModel: true}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("entity tagging failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[NER] Tag error endpoint=%s status=%d body=%q", c.endpoint, resp.StatusCode, bodyStr)
		}
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	entities, err := decodeEntities(raw)
	if err != nil {
		return nil, err
	}

	out := make([]skills.Entity, 0, len(entities))
	for _, e := range entities {
		out = append(out, skills.Entity{Label: e.Entity, Word: e.Word})
	}
	return out, nil
}

// decodeEntities accepts both the flat single-input response and the
// batched nested form some deployments return.
func decodeEntities(raw []byte) ([]tagEntity, error) {
	var flat []tagEntity
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	var nested [][]tagEntity
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, fmt.Errorf("unexpected tagging response: %w", err)
	}
	if len(nested) == 0 {
		return nil, nil
	}
	return nested[0], nil
}

var _ skills.Tagger = (*Client)(nil)
