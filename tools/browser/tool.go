// Package browser combines web search and page scraping into a single tool,
// the way a person searches and then opens the first few results.
package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/war-crycz/ai-kurz/components/contextwindow"
	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
	"github.com/war-crycz/ai-kurz/tools/searxng"
	"github.com/war-crycz/ai-kurz/tools/webscraper"
)

const (
	DefaultTitle     = "Web Browser"
	DefaultOpenPages = 3
	DefaultMaxTokens = 1500
)

// Input Searches the web and opens the best results.
type Input struct {
	schema.Base
	// Queries Search queries.
	Queries []string `json:"queries" jsonschema:"title=queries,description=Search queries." validate:"required,min=1,dive,required"`
}

func NewInput(queries ...string) *Input {
	return &Input{Queries: queries}
}

// Page is an opened search result
type Page struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
	// Content is the scraped markdown, empty when the page could not be opened
	Content string `json:"content,omitempty"`
	// Truncated reports the content was cut to the token budget
	Truncated bool `json:"truncated,omitempty"`
	// Error why the page could not be opened
	Error string `json:"error,omitempty"`
}

// Output pages in search rank order
type Output struct {
	schema.Base
	Pages []Page `json:"pages,omitempty"`
}

// String renders the pages as markdown for a model prompt
func (o Output) String() string {
	if len(o.Pages) == 0 {
		return "No results found."
	}
	var b strings.Builder
	for i, p := range o.Pages {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "## %s\nURL: %s\n\n", p.Title, p.URL)
		switch {
		case p.Content != "":
			b.WriteString(p.Content)
		case p.Snippet != "":
			b.WriteString(p.Snippet)
		}
		b.WriteString("\n")
	}
	return b.String()
}

type Config struct {
	tools.Config
	searcher  tools.Tool[searxng.Input, searxng.Output]
	scraper   tools.Tool[webscraper.Input, webscraper.Output]
	window    *contextwindow.Window
	openPages int
}

type Option func(*Config)

// WithSearcher sets the search tool
func WithSearcher(t tools.Tool[searxng.Input, searxng.Output]) Option {
	return func(c *Config) {
		c.searcher = t
	}
}

// WithScraper sets the page scraper tool
func WithScraper(t tools.Tool[webscraper.Input, webscraper.Output]) Option {
	return func(c *Config) {
		c.scraper = t
	}
}

// WithWindow sets the per page token budget
func WithWindow(w *contextwindow.Window) Option {
	return func(c *Config) {
		c.window = w
	}
}

// WithOpenPages sets how many results are opened
func WithOpenPages(n int) Option {
	return func(c *Config) {
		c.openPages = n
	}
}

// WithToolOptions applies generic tool options such as title or hooks
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}

// Tool searches with SearxNG and scrapes the top results
type Tool struct {
	Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle(DefaultTitle)
	}
	if ret.Description() == "" {
		ret.SetDescription("Searches the web and opens the best results. Returns the content of the opened pages as markdown.")
	}
	if ret.searcher == nil {
		ret.searcher = searxng.New()
	}
	if ret.scraper == nil {
		ret.scraper = webscraper.New()
	}
	if ret.window == nil {
		ret.window = contextwindow.New(DefaultMaxTokens)
	}
	if ret.openPages <= 0 {
		ret.openPages = DefaultOpenPages
	}
	return ret
}

// Run searches the queries and opens the first results one by one.
// A page that fails to open keeps its search snippet.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	found := new(searxng.Output)
	if err := tools.Run(ctx, t.searcher, searxng.NewInput(searxng.GeneralCategory, input.Queries), found); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	pages := make([]Page, 0, t.openPages)
	for _, item := range found.Results {
		if len(pages) == t.openPages {
			break
		}
		page := Page{
			URL:     item.URL,
			Title:   item.Title,
			Snippet: item.Content,
		}
		scraped := new(webscraper.Output)
		if err := tools.Run(ctx, t.scraper, webscraper.NewInput(item.URL, false), scraped); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			page.Error = err.Error()
		} else {
			page.Content, page.Truncated = t.window.Fit(scraped.Content)
		}
		pages = append(pages, page)
	}
	output.Pages = pages
	return nil
}
