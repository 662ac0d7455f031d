package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campus-ai-be/pkg/llm"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

type chatPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type chatContent struct {
	Parts []*chatPart `json:"parts"`
	Role  string      `json:"role,omitempty"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type chatRequest struct {
	Contents          []*chatContent    `json:"contents"`
	SystemInstruction *chatContent      `json:"system_instruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generation_config,omitempty"`
}

type chatCandidate struct {
	Content *chatContent `json:"content"`
}

type chatResponse struct {
	Candidates []*chatCandidate `json:"candidates"`
}

type Provider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewProvider(apiKey, model string) llm.Provider {
	return &Provider{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (p *Provider) Generate(ctx context.Context, query string, systemInstruction string) (string, error) {
	payload := chatRequest{
		Contents: []*chatContent{
			{
				Parts: []*chatPart{{Text: query}},
				Role:  "user",
			},
		},
		// Zero temperature for maximum grounding and link accuracy.
		GenerationConfig: &generationConfig{Temperature: 0.0},
	}
	if systemInstruction != "" {
		payload.SystemInstruction = &chatContent{
			Parts: []*chatPart{{Text: systemInstruction}},
		}
	}

	return p.generateContent(ctx, &payload)
}

func (p *Provider) AnalyzeImage(ctx context.Context, imageDataURI string, description string) (string, error) {
	data, mimeType, err := decodeDataURI(imageDataURI)
	if err != nil {
		return "", err
	}

	payload := chatRequest{
		Contents: []*chatContent{
			{
				Parts: []*chatPart{
					{InlineData: &inlineData{MimeType: mimeType, Data: data}},
					{Text: fmt.Sprintf("Analyze this image for infrastructure damage. User description: %q", description)},
				},
				Role: "user",
			},
		},
		SystemInstruction: &chatContent{
			Parts: []*chatPart{{Text: visionInstruction}},
		},
	}

	return p.generateContent(ctx, &payload)
}

// visionInstruction is set by the container so the provider stays free of
// domain wording; empty means no system instruction is attached.
var visionInstruction string

// SetVisionInstruction configures the system instruction attached to every
// AnalyzeImage call.
func SetVisionInstruction(instruction string) {
	visionInstruction = instruction
}

func (p *Provider) generateContent(ctx context.Context, payload *chatRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent", p.endpoint, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes chatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidate set in gemini response")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// decodeDataURI splits "data:image/jpeg;base64,<payload>" into the base64
// payload and mime type. A bare base64 string is accepted and assumed jpeg.
func decodeDataURI(uri string) (data string, mimeType string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return uri, "image/jpeg", nil
	}

	idx := strings.Index(uri, ",")
	if idx < 0 {
		return "", "", fmt.Errorf("malformed data URI")
	}

	header := uri[len("data:"):idx]
	mimeType = strings.TrimSuffix(header, ";base64")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return uri[idx+1:], mimeType, nil
}
