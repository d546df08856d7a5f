package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
)

// GenerateWellnessTip sends the given prompt to a configured
// Gemini-compatible API endpoint and returns a short textual tip.
// Configure endpoint and key with TIP_API_URL and TIP_API_KEY environment
// variables.
func GenerateWellnessTip(prompt string) (string, error) {
	url := os.Getenv("TIP_API_URL")
	key := os.Getenv("TIP_API_KEY")
	if url == "" || key == "" {
		return "", errors.New("tip api not configured")
	}

	reqBody := map[string]interface{}{"prompt": prompt}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", errors.New("tip request failed: " + string(bodyBytes))
	}

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	// Try common keys for text output
	for _, k := range []string{"output", "text", "response"} {
		if out, ok := parsed[k].(string); ok && out != "" {
			return out, nil
		}
	}
	return "", errors.New("no text in tip response")
}
