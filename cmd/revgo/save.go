package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
)

// savingTransport writes the body of every successful response to path
// before handing it over.
type savingTransport struct {
	base http.RoundTripper
	path string
}

func (t *savingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		return resp, err
	}
	content, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(t.path, content, 0o660); err != nil {
		return nil, fmt.Errorf("can not save page to %s: %w", t.path, err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(content))
	return resp, nil
}
