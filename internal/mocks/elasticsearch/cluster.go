// Package es_mock serves the point-in-time and search endpoints of an
// Elasticsearch cluster from canned responses.
package es_mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/require"
)

const PitID = "pit-1"

const emptyPage = `{"took":0,"timed_out":false,"pit_id":"` + PitID + `","hits":{"hits":[]}}`

// Cluster answers search requests with Pages in order, then with empty pages.
// A non-zero Status makes every request fail with that status and ErrorBody.
type Cluster struct {
	Pages     []string
	Status    int
	ErrorBody string

	mu          sync.Mutex
	searches    []map[string]any
	searchPaths []string
	opened      []string
	closed      int
}

// Searches returns the decoded bodies of the search requests received so far.
func (c *Cluster) Searches() []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]map[string]any(nil), c.searches...)
}

func (c *Cluster) SearchPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.searchPaths...)
}

// OpenedOn lists the index targets of point-in-time requests.
func (c *Cluster) OpenedOn() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.opened...)
}

func (c *Cluster) Closed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Cluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	if c.Status != 0 && c.Status != http.StatusOK {
		w.WriteHeader(c.Status)
		_, _ = io.WriteString(w, c.ErrorBody)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case r.URL.Path == "/_pit" && r.Method == http.MethodDelete:
		c.closed++
		_, _ = io.WriteString(w, `{"succeeded":true,"num_freed":1}`)
	case strings.HasSuffix(r.URL.Path, "/_pit"):
		c.opened = append(c.opened, strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), "/_pit"))
		_, _ = io.WriteString(w, `{"id":"`+PitID+`"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		var body map[string]any
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)
		c.searches = append(c.searches, body)
		c.searchPaths = append(c.searchPaths, r.URL.Path)

		page := emptyPage
		if n := len(c.searches) - 1; n < len(c.Pages) {
			page = c.Pages[n]
		}
		_, _ = io.WriteString(w, page)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"type":"not_found"},"status":404}`)
	}
}

// NewClient starts c on a test server and returns a typed client bound to it.
func NewClient(t testing.TB, c *Cluster) *elasticsearch.TypedClient {
	t.Helper()
	srv := httptest.NewServer(c)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewTypedClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}
