package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Publisher stores an encoded image somewhere public and returns its URL.
type Publisher interface {
	Publish(ctx context.Context, image []byte) (string, error)
}

// ImgBBClient uploads images to the ImgBB API.
type ImgBBClient struct {
	endpoint string
	apiKey   string
	name     string
	client   *http.Client
}

func NewImgBBClient(endpoint, apiKey, name string, client *http.Client) *ImgBBClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &ImgBBClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		name:     name,
		client:   client,
	}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (c *ImgBBClient) Publish(ctx context.Context, image []byte) (string, error) {
	form := url.Values{
		"key":   {c.apiKey},
		"image": {base64.StdEncoding.EncodeToString(image)},
		"name":  {c.name},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &UploadError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UploadError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	body := string(raw)

	if resp.StatusCode != http.StatusOK {
		return "", &UploadError{StatusCode: resp.StatusCode, Body: body}
	}

	var parsed imgbbResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &UploadError{StatusCode: resp.StatusCode, Body: body, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !parsed.Success {
		return "", &UploadError{StatusCode: resp.StatusCode, Body: body}
	}
	if parsed.Data.URL == "" {
		return "", &UploadError{StatusCode: resp.StatusCode, Body: body, Err: fmt.Errorf("response has no data.url")}
	}

	return parsed.Data.URL, nil
}
