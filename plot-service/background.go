package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// BackgroundSource supplies the raster the wedges are drawn on.
type BackgroundSource interface {
	Fetch(ctx context.Context) (image.Image, error)
}

// HTTPBackground downloads the background on every call.
type HTTPBackground struct {
	url    string
	client *http.Client
}

func NewHTTPBackground(url string, client *http.Client) *HTTPBackground {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPBackground{url: url, client: client}
}

func (b *HTTPBackground) Fetch(ctx context.Context) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return nil, &AssetFetchError{URL: b.url, Err: err}
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &AssetFetchError{URL: b.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &AssetFetchError{URL: b.url, StatusCode: resp.StatusCode}
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, &AssetFetchError{URL: b.url, Err: fmt.Errorf("decode: %w", err)}
	}
	return img, nil
}
