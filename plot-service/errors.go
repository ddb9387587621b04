package main

import (
	"fmt"
	"net/http"
)

// InputError reports a missing or non-numeric request field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// AssetFetchError reports a background image that could not be downloaded or decoded.
type AssetFetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *AssetFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch background %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch background %s: %v", e.URL, e.Err)
}

func (e *AssetFetchError) Unwrap() error { return e.Err }

// UploadError reports a failed publish. Body is the raw response for diagnostics.
type UploadError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UploadError) Error() string {
	switch {
	case e.Err != nil && e.Body != "":
		return fmt.Sprintf("imgbb upload failed: %v: %s", e.Err, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("imgbb upload failed: %v", e.Err)
	case e.StatusCode != http.StatusOK:
		return fmt.Sprintf("imgbb upload failed with status %d: %s", e.StatusCode, e.Body)
	}
	return "imgbb upload failed: " + e.Body
}

func (e *UploadError) Unwrap() error { return e.Err }
