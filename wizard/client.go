package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/modelvision/leadgen/model"
)

// Client posts completed wizard runs to the submission handler. Each client
// carries the fixed category tag of the landing variant it serves.
type Client struct {
	baseURL  string
	category string
	http     *http.Client
}

func NewClient(baseURL, category string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		category: category,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

type submitResponse struct {
	Success bool          `json:"success"`
	Data    *model.Signup `json:"data"`
	Error   string        `json:"error"`
}

func (c *Client) Submit(ctx context.Context, req model.SignupRequest) (*model.Signup, error) {
	req.Category = c.category

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/signups", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submitting signup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var sr submitResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !sr.Success {
		msg := sr.Error
		if msg == "" {
			msg = resp.Status
		}
		return nil, errors.New("submission failed: " + msg)
	}
	if sr.Data == nil {
		return nil, errors.New("submission succeeded but no record was returned")
	}
	return sr.Data, nil
}
