package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"qa-platform/internal/question"
)

// maxDocumentBytes bounds a fetched source document.
const maxDocumentBytes = 32 << 20

// Fetch downloads the raw source document and flattens it with the same
// rules as LoadFile.
func Fetch(ctx context.Context, client *http.Client, rawURL string, opts ...Option) ([]question.Record, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &LoadError{Path: rawURL, Reason: "build request", Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Path: rawURL, Reason: "fetch source document", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Path: rawURL, Reason: fmt.Sprintf("source returned status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, &LoadError{Path: rawURL, Reason: "read source document", Err: err}
	}

	records, err := Parse(raw, formatForURL(rawURL), opts...)
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Path = rawURL
		}
		return nil, err
	}
	return records, nil
}

func formatForURL(rawURL string) Format {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return FormatJSON
	}
	return FormatForPath(parsed.Path)
}
