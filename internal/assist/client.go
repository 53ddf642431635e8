// Package assist talks to the consumed-only helper services: the breed
// chat endpoint and the image-based breed predictor. Neither service is
// implemented here; both are plain HTTP clients.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// ChatAnswer is the assistant's reply. Source names which backend produced
// the answer (e.g. "kb" or "openai") when the service reports it.
type ChatAnswer struct {
	Answer string `json:"answer"`
	Source string `json:"source,omitempty"`
}

// Prediction is the classifier's verdict for an uploaded dog photo.
// Confidence is a fraction in [0, 1].
type Prediction struct {
	Breed      string  `json:"breed"`
	Confidence float64 `json:"confidence"`
}

// Percent renders the confidence fraction as a percentage with two decimals.
func (p Prediction) Percent() string {
	return fmt.Sprintf("%.2f%%", p.Confidence*100)
}

type chatRequest struct {
	Question    string `json:"question"`
	ForceOpenAI bool   `json:"force_openai"`
}

// Chat sends the question to the chat service. forceOpenAI asks the service
// to skip its knowledge base and go straight to the LLM.
func (c *Client) Chat(ctx context.Context, question string, forceOpenAI bool) (ChatAnswer, error) {
	body, err := json.Marshal(chatRequest{Question: question, ForceOpenAI: forceOpenAI})
	if err != nil {
		return ChatAnswer{}, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return ChatAnswer{}, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var answer ChatAnswer
	if err := c.do(req, &answer); err != nil {
		return ChatAnswer{}, err
	}
	return answer, nil
}

// Predict uploads an image as a multipart form (field name "image") and
// returns the predicted breed with its confidence fraction.
func (c *Client) Predict(ctx context.Context, filename string, image io.Reader) (Prediction, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return Prediction{}, fmt.Errorf("build predict form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return Prediction{}, fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Prediction{}, fmt.Errorf("finish predict form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &buf)
	if err != nil {
		return Prediction{}, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var prediction Prediction
	if err := c.do(req, &prediction); err != nil {
		return Prediction{}, err
	}
	return prediction, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remote struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &remote); err == nil && remote.Error != "" {
			return fmt.Errorf("%s: %s", req.URL.Path, remote.Error)
		}
		c.logger.Printf("assist %s returned status %d", req.URL.Path, resp.StatusCode)
		return fmt.Errorf("%s: unexpected status %d", req.URL.Path, resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
