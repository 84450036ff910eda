// Package huggingface implements image synthesis against the HuggingFace
// inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"study-assistant-be/pkg/gen"
)

const defaultModel = "black-forest-labs/FLUX.1-schnell"

type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ gen.ImageGenerator = &HuggingFaceProvider{}

func NewHuggingFaceProvider(apiKey, baseURL, model string) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	if model == "" {
		model = defaultModel
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type imageRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters imageParameters `json:"parameters"`
}

// Low step count and zero guidance trade fidelity for latency.
type imageParameters struct {
	NegativePrompt    string  `json:"negative_prompt"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
}

type imageErrorResponse struct {
	Error string `json:"error"`
}

// Image generates one image and normalizes both transport shapes the API
// produces (raw image bytes or a base64 JSON string) into a data URI.
func (p *HuggingFaceProvider) Image(ctx context.Context, prompt string) (string, error) {
	reqBody := imageRequest{
		Inputs: prompt,
		Parameters: imageParameters{
			NegativePrompt:    "blurry, distorted, low quality",
			NumInferenceSteps: 4,
			GuidanceScale:     0,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, string(body))
	}

	return normalizeImage(resp.Header.Get("Content-Type"), body)
}

func normalizeImage(contentType string, body []byte) (string, error) {
	if strings.Contains(contentType, "application/json") {
		var apiErr imageErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return "", fmt.Errorf("huggingface api returned error: %s", apiErr.Error)
		}
		// Some deployments answer with the base64 payload as a JSON string.
		var b64 string
		if err := json.Unmarshal(body, &b64); err != nil {
			return "", fmt.Errorf("unexpected json image response: %w", err)
		}
		if _, err := base64.StdEncoding.DecodeString(b64); err != nil {
			return "", fmt.Errorf("invalid base64 image response: %w", err)
		}
		return "data:image/jpeg;base64," + b64, nil
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(body), nil
}
