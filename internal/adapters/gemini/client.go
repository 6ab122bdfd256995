package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"vidscribe/internal/stderrsilence"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// ModelName is the Gemini model used for transcription.
	ModelName = "gemini-pro-latest"
	// AudioMIMEType declares the encoding of the uploaded audio payload.
	AudioMIMEType = "audio/mp3"

	transcriptionPrompt = "Transcribe this audio file. Provide the complete transcription."
)

// Client implements ports.Transcriber against the Gemini generateContent API.
type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewClient creates a Gemini transcription client.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   ModelName,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Minute,
		},
	}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// text joins the text parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// Transcribe uploads the audio file at audioPath in a single request, with a
// fixed instruction prompt, and returns the transcription text.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}

	payload := generateRequest{
		Contents: []requestContent{{
			Parts: []requestPart{
				{Text: transcriptionPrompt},
				{InlineData: &inlineData{
					MIMEType: AudioMIMEType,
					Data:     base64.StdEncoding.EncodeToString(audio),
				}},
			},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(c.BaseURL, "/"), c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	// The transport writes its low-level diagnostics straight to fd 2; keep
	// them off the terminal for the duration of the call.
	var resp *http.Response
	err = stderrsilence.Suppress(func() error {
		var doErr error
		resp, doErr = c.HTTPClient.Do(req)
		return doErr
	})
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(respBody))
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := gr.text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no transcription text")
	}
	return text, nil
}
