package dataset

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestFetchFlattensRemoteDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/questions.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, threeGroupDocument)
	}))
	defer server.Close()

	records, err := Fetch(context.Background(), server.Client(), server.URL+"/data/questions.json")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(records) != 8 || records[0].ID != 1 || records[7].ID != 8 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestFetchPropagatesNonOKStatus(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(bytes.NewReader(nil)),
			Header:     make(http.Header),
		}, nil
	})}

	_, err := Fetch(context.Background(), client, "http://example.test/questions.json")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T (%v)", err, err)
	}
	if loadErr.Path != "http://example.test/questions.json" {
		t.Fatalf("error path = %q", loadErr.Path)
	}
}

func TestFetchWrapsTransportError(t *testing.T) {
	dialErr := errors.New("dial error")
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, dialErr
	})}

	_, err := Fetch(context.Background(), client, "http://example.test/questions.json")
	if !errors.Is(err, dialErr) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestFetchRejectsMalformedDocument(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"not":"an array"}`))),
			Header:     make(http.Header),
		}, nil
	})}

	_, err := Fetch(context.Background(), client, "http://example.test/questions.json")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Path != "http://example.test/questions.json" {
		t.Fatalf("expected *LoadError with url path, got %v", err)
	}
}
