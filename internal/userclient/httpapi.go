package userclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"qa-platform/internal/question"
)

var ErrServiceUnavailable = errors.New("question service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// Unwrap maps the API's status codes back onto the engine's sentinels so
// callers handle remote and local failures the same way.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return question.ErrNotFound
	case http.StatusBadRequest:
		return question.ErrInvalidArgument
	default:
		return nil
	}
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) Questions(ctx context.Context) ([]question.Record, error) {
	var records []question.Record
	if err := c.doJSON(ctx, "/api/questions", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) Question(ctx context.Context, id int) (question.Record, error) {
	var record question.Record
	if err := c.doJSON(ctx, "/api/questions/"+strconv.Itoa(id), &record); err != nil {
		return question.Record{}, err
	}
	return record, nil
}

func (c *HTTPClient) Search(ctx context.Context, keyword string) ([]question.Record, error) {
	query := url.Values{}
	query.Set("keyword", keyword)

	var records []question.Record
	if err := c.doJSON(ctx, "/api/search?"+query.Encode(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) Filter(ctx context.Context, criteria question.Criteria) ([]question.Record, error) {
	query := url.Values{}
	if criteria.Category != "" {
		query.Set("category", criteria.Category)
	}
	if criteria.Difficulty != "" {
		query.Set("difficulty", criteria.Difficulty)
	}

	path := "/api/filter"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var records []question.Record
	if err := c.doJSON(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) Random(ctx context.Context, count int) ([]question.Record, error) {
	query := url.Values{}
	query.Set("count", strconv.Itoa(count))

	var records []question.Record
	if err := c.doJSON(ctx, "/api/random?"+query.Encode(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.doJSON(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) Difficulties(ctx context.Context) ([]string, error) {
	var difficulties []string
	if err := c.doJSON(ctx, "/api/difficulties", &difficulties); err != nil {
		return nil, err
	}
	return difficulties, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (question.Stats, error) {
	var stats question.Stats
	if err := c.doJSON(ctx, "/api/stats", &stats); err != nil {
		return question.Stats{}, err
	}
	return stats, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, path string, responseBody any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
