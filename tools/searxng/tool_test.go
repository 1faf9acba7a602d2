package searxng

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	)
}

type recorder struct {
	mtx    sync.Mutex
	params []url.Values
}

func (r *recorder) record(v url.Values) {
	r.mtx.Lock()
	r.params = append(r.params, v)
	r.mtx.Unlock()
}

func (r *recorder) list() []url.Values {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]url.Values(nil), r.params...)
}

func startSearxngServer(t *testing.T, results map[string][]SearchResultItem, got *recorder) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			got.record(r.URL.Query())
		}
		json.NewEncoder(w).Encode(SearchResponse{
			Query:   r.URL.Query().Get("q"),
			Results: results[r.URL.Query().Get("q")],
		})
	}))
	t.Cleanup(func() {
		srv.CloseClientConnections()
		srv.Close()
	})
	return srv
}

func newTool(srv *httptest.Server, opts ...Option) *Tool {
	return New(append([]Option{WithBaseURL(srv.URL + "/"), WithHttpClient(srv.Client())}, opts...)...)
}

func TestSearxngSearchWithCategory(t *testing.T) {
	mockQuery := "test query with category"
	mockItem := SearchResultItem{
		URL:      "https://example.com/test-category",
		Title:    "Test Result with Category",
		Content:  "This is a test result content with category.",
		Category: NewsCategory,
	}
	reqs := new(recorder)
	srv := startSearxngServer(t, map[string][]SearchResultItem{mockQuery: {mockItem}}, reqs)
	tool := newTool(srv, WithLanguage("cs"))

	output := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput(NewsCategory, []string{mockQuery}), output))
	require.Len(t, output.Results, 1)
	item := output.Results[0]
	assert.Equal(t, mockItem.Title, item.Title)
	assert.Equal(t, mockItem.URL, item.URL)
	assert.Equal(t, mockItem.Content, item.Content)
	assert.Equal(t, mockItem.Category, item.Category)
	assert.Equal(t, mockQuery, item.Query)
	assert.Equal(t, NewsCategory, output.Category)

	require.Len(t, reqs.list(), 1)
	params := reqs.list()[0]
	assert.Equal(t, "json", params.Get("format"))
	assert.Equal(t, "news", params.Get("categories"))
	assert.Equal(t, "cs", params.Get("language"))
	assert.Equal(t, DefaultEngines, params.Get("engines"))
}

func TestSearxngSearchMissingFields(t *testing.T) {
	mockQuery := "query with missing fields"
	srv := startSearxngServer(t, map[string][]SearchResultItem{
		mockQuery: {
			{Title: "Result Missing Content", URL: "https://example.com/1"},
			{Content: "Result Missing Title", URL: "https://example.com/2"},
			{Title: "Result Missing URL", Content: "Some content"},
			{Title: "Result Missing Query", Content: "Some content", URL: "https://example.com/4"},
			{Title: "Valid Result", Content: "Some content", URL: "https://example.com/5", Query: mockQuery},
		},
	}, nil)
	output := new(Output)
	require.NoError(t, newTool(srv).Run(context.Background(), NewInput(EmptyCategory, []string{mockQuery}), output))
	require.Len(t, output.Results, 2)
	assert.Equal(t, "Result Missing Query", output.Results[0].Title)
	assert.Equal(t, mockQuery, output.Results[0].Query)
	assert.Equal(t, "Valid Result", output.Results[1].Title)
}

func TestSearxngSearchDedupesAndSortsAcrossQueries(t *testing.T) {
	srv := startSearxngServer(t, map[string][]SearchResultItem{
		"jan": {
			{Title: "Low", Content: "c", URL: "https://example.com/low", Score: 0.1},
			{Title: "Shared", Content: "c", URL: "https://example.com/shared", Score: 0.5},
		},
		"svátek jan": {
			{Title: "Shared again", Content: "c", URL: "https://example.com/shared", Score: 2},
			{Title: "High", Content: "c", URL: "https://example.com/high", Score: 3},
		},
	}, nil)
	output := new(Output)
	require.NoError(t, newTool(srv).Run(context.Background(), NewInput(GeneralCategory, []string{"jan", "svátek jan"}), output))
	titles := make([]string, 0, len(output.Results))
	for _, item := range output.Results {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"High", "Shared", "Low"}, titles)
}

func TestSearxngSearchWithMaxResults(t *testing.T) {
	mockQuery := "query with max results"
	srv := startSearxngServer(t, map[string][]SearchResultItem{
		mockQuery: {
			{Title: "Result with Metadata", URL: "https://example.com/metadata", Content: "Content with metadata", Metadata: "2021-01-01"},
			{Title: "Result with Published Date", Content: "Content with published date", URL: "https://example.com/published-data", PublishedDate: "2022-01-01"},
			{Title: "Result without dates", Content: "Content without dates", URL: "https://example.com/no-dates"},
		},
	}, nil)
	output := new(Output)
	require.NoError(t, newTool(srv, WithMaxResults(2)).Run(context.Background(), NewInput(EmptyCategory, []string{mockQuery}), output))
	require.Len(t, output.Results, 2)
	assert.Equal(t, "2021-01-01", output.Results[0].Metadata)
	assert.Equal(t, "2022-01-01", output.Results[1].PublishedDate)
}

func TestSearxngSearchWithNoResults(t *testing.T) {
	srv := startSearxngServer(t, nil, nil)
	output := new(Output)
	require.NoError(t, newTool(srv).Run(context.Background(), NewInput(EmptyCategory, []string{"nothing"}), output))
	assert.Empty(t, output.Results)
}

func TestSearxngSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	err := New(WithBaseURL(srv.URL), WithHttpClient(srv.Client())).Run(context.Background(), NewInput(EmptyCategory, []string{"q"}), new(Output))
	assert.EqualError(t, err, "non-200 response from search engine: 502")
}
