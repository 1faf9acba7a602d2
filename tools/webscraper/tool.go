package webscraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"

	"github.com/war-crycz/ai-kurz/schema"
	"github.com/war-crycz/ai-kurz/tools"
)

var (
	ErrContentTooLarge    = errors.New("content exceeds maximum length")
	ErrUnsupportedContent = errors.New("unsupported content type")
)

var blankLinesRe = regexp.MustCompile(`(\r?\n){3,}`)

// Input schema for the webpage scraper tool.
type Input struct {
	schema.Base
	// URL of the webpage to scrape.
	URL string `json:"url" jsonschema:"title=url,description=URL of the webpage to scrape." validate:"required,url"`
	// IncludeLinks Whether to preserve hyperlinks in the markdown output.
	IncludeLinks bool `json:"include_links,omitempty" jsonschema:"title=include_links,description=Whether to preserve hyperlinks in the markdown output."`
}

func NewInput(link string, includeLinks bool) *Input {
	return &Input{
		URL:          link,
		IncludeLinks: includeLinks,
	}
}

// Metadata Schema for webpage metadata
type Metadata struct {
	// Title is the title of the webpage.
	Title string `json:"title,omitempty" jsonschema:"title=title,description=The title of the webpage."`
	// Author is the author of the webpage content.
	Author string `json:"author,omitempty" jsonschema:"title=author,description=The Author of the webpage."`
	// Description is the meta description of the webpage.
	Description string `json:"description,omitempty" jsonschema:"title=description,description=The meta description of the webpage."`
	// Keywords is the meta keywords of the webpage.
	Keywords string `json:"keywords,omitempty" jsonschema:"title=keywords,description=The meta keywords of the webpage."`
	// SiteName is the name of the website.
	SiteName string `json:"sitename,omitempty" jsonschema:"title=sitename,description=The name of the website."`
	// Domain is the domain name of the website.
	Domain string `json:"domain,omitempty" jsonschema:"title=domain,description=The domain name of the website."`
	// ContentType is the detected media type of the page.
	ContentType string `json:"content_type,omitempty" jsonschema:"title=content_type,description=The detected media type of the page."`
}

// Output Schema for the output of the webpage scraper tool.
type Output struct {
	schema.Base
	// Content The scraped content in markdown format.
	Content string `json:"content,omitempty" jsonschema:"title=content,description=The scraped content in markdown format."`
	// Metadata is metadata about the scraped webpage.
	Metadata *Metadata `json:"metadata,omitempty" jsonschema:"title=metadata,description=Metadata about the webpage."`
}

func NewOutput(content string, metadata *Metadata) *Output {
	return &Output{
		Content:  content,
		Metadata: metadata,
	}
}

func (o Output) String() string {
	if o.Metadata == nil || o.Metadata.Title == "" {
		return o.Content
	}
	return fmt.Sprintf("# %s\n\n%s", o.Metadata.Title, o.Content)
}

type Config struct {
	tools.Config
	// userAgent User agent string to use for requests.
	userAgent string
	// language is sent as Accept-Language, empty sends none
	language string
	// maxContentLength Maximum content length in bytes to process.
	maxContentLength int64
	timeout          time.Duration
	httpClient       *http.Client
}

// Tool fetches a webpage and converts its main content to markdown
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
		ret.SetTitle("webpage_scraper")
	}
	if ret.Description() == "" {
		ret.SetDescription("Opens a webpage and returns its main content as markdown.")
	}
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.timeout <= 0 {
		ret.timeout = DefaultTimeout
	}
	if ret.maxContentLength <= 0 {
		ret.maxContentLength = DefaultMaxContentLength
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: ret.timeout}
	}
	return ret
}

func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	parsedURL, err := url.ParseRequestURI(input.URL)
	if err != nil {
		return err
	}
	body, header, err := t.fetch(ctx, input.URL)
	if err != nil {
		return err
	}
	mtype := mimetype.Detect(body)
	meta := &Metadata{
		Domain:      parsedURL.Host,
		ContentType: mtype.String(),
	}
	switch {
	case mtype.Is("text/html"), mtype.Is("application/xhtml+xml"), strings.Contains(header.Get("Content-Type"), "html"):
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return err
		}
		t.extractMetadata(doc, meta)
		if !input.IncludeLinks {
			doc.Find("a").Each(func(_ int, s *goquery.Selection) {
				s.ReplaceWithSelection(s.Contents())
			})
		}
		markdown, err := htmltomarkdown.ConvertString(
			t.extractMainContent(doc),
			converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
		)
		if err != nil {
			return err
		}
		*output = *NewOutput(cleanMarkdownContent(markdown), meta)
	case mtype.Is("application/pdf"):
		title, content, err := pdfContent(body)
		if err != nil {
			return err
		}
		meta.Title = title
		*output = *NewOutput(cleanMarkdownContent(content), meta)
	case strings.HasPrefix(mtype.String(), "text/"):
		*output = *NewOutput(cleanMarkdownContent(string(body)), meta)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContent, mtype.String())
	}
	return nil
}

func (t *Tool) fetch(ctx context.Context, link string) ([]byte, http.Header, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", DefaultAccept)
	if t.language != "" {
		httpReq.Header.Set("Accept-Language", t.language)
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetch %s: unexpected status %d", link, httpResp.StatusCode)
	}
	if httpResp.ContentLength > t.maxContentLength {
		return nil, nil, fmt.Errorf("%w of %d bytes", ErrContentTooLarge, t.maxContentLength)
	}
	body, err := io.ReadAll(io.LimitReader(httpResp.Body, t.maxContentLength+1))
	if err != nil {
		return nil, nil, err
	}
	if int64(len(body)) > t.maxContentLength {
		return nil, nil, fmt.Errorf("%w of %d bytes", ErrContentTooLarge, t.maxContentLength)
	}
	return body, httpResp.Header, nil
}

// extractMetadata extracts metadata from the webpage head
func (t *Tool) extractMetadata(doc *goquery.Document, meta *Metadata) {
	meta.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	meta.Author, _ = doc.Find("meta[name='author']").Attr("content")
	meta.Description, _ = doc.Find("meta[name='description']").Attr("content")
	meta.Keywords, _ = doc.Find("meta[name='keywords']").Attr("content")
	meta.SiteName, _ = doc.Find("meta[property='og:site_name']").Attr("content")
}

// extractMainContent extracts the main content from the webpage using custom heuristics
func (t *Tool) extractMainContent(doc *goquery.Document) string {
	for _, tag := range []string{"script", "style", "nav", "header", "footer", "noscript", "iframe"} {
		doc.Find(tag).Remove()
	}
	contentCandidates := []string{
		"main",
		"#content, #main",
		".content, .main",
		"article",
		"body",
	}
	for _, selector := range contentCandidates {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if txt, err := sel.Html(); err == nil && strings.TrimSpace(txt) != "" {
			return txt
		}
	}
	html, _ := doc.Html()
	return html
}

// cleanMarkdownContent removes excessive blank lines and trailing whitespace
func cleanMarkdownContent(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	content = blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(content) + "\n"
}
