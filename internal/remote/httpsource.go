// Package remote provides the HTTP adapter for the paginated remote
// record source, and the matching in-memory server used by rolodexd and
// integration tests.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// defaultTimeout bounds a single page request when the caller supplies
// no client of its own.
const defaultTimeout = 10 * time.Second

// HTTPSource implements types.RemoteSource over the JSON pagination
// contract: GET {base}/records?limit=N&token=T returning a types.Page.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source for the given base URL. A nil client
// gets a default with a request timeout.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPSource{baseURL: baseURL, client: client}
}

// FetchPage requests one page of records. An empty token requests the
// first page. Transport failures and non-200 responses are returned as
// errors; the reconciler decides what a failed page means.
func (s *HTTPSource) FetchPage(ctx context.Context, pageSize int, token string) (types.Page, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(pageSize))
	if token != "" {
		q.Set("token", token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/records?"+q.Encode(), nil)
	if err != nil {
		return types.Page{}, fmt.Errorf("build page request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return types.Page{}, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Page{}, fmt.Errorf("page request returned %s", resp.Status)
	}

	var page types.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return types.Page{}, fmt.Errorf("decode page: %w", err)
	}
	return page, nil
}
