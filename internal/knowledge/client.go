// Package knowledge looks up surface features in an external encyclopedic
// knowledge base and extracts formation and activity evidence from the
// semi-structured infobox and free text it returns. Every failure here is a
// cascade miss for the timeline engine, never a hard error.
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"atlas/pkg/platform/sentinel"
)

const defaultTimeout = 10 * time.Second

// Page is the resolved knowledge-base entry for one feature.
type Page struct {
	Title    string
	URL      string
	Intro    string
	FullText string
	// Infobox holds the semi-structured attribute block, keys lower-cased.
	Infobox map[string]string
}

// Client queries a MediaWiki-compatible API. Three logically distinct reads
// back one lookup: find the canonical page title, fetch the attribute block,
// and fetch plain-text extracts.
type Client struct {
	http     *http.Client
	apiURL   string
	pageBase string
	log      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger attaches a logger for diagnostic output on degraded lookups.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// WithTimeout bounds every outgoing request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient constructs a Client against the given api.php-style endpoint.
// Article URLs are derived from the endpoint host.
func NewClient(apiURL string, opts ...ClientOption) *Client {
	c := &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		apiURL:   apiURL,
		pageBase: derivePageBase(apiURL),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func derivePageBase(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/wiki/"
}

// Lookup resolves a feature name to a Page. The title search must complete
// first; the wikitext (infobox) fetch follows, and the intro and full-text
// extracts are issued concurrently once the title is known. Results are
// attributed by which request produced them, not by arrival order.
func (c *Client) Lookup(ctx context.Context, name string) (Page, error) {
	title, err := c.searchTitle(ctx, name)
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Title: title,
		URL:   c.pageBase + url.PathEscape(strings.ReplaceAll(title, " ", "_")),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wikitext, err := c.fetchWikitext(gctx, title)
		if err != nil {
			// The infobox is optional evidence; its absence degrades the
			// extraction, not the lookup.
			c.debug("infobox fetch failed", "title", title, "error", err)
			return nil
		}
		page.Infobox = ParseInfobox(wikitext)
		return nil
	})
	g.Go(func() error {
		intro, err := c.fetchExtract(gctx, title, true)
		if err != nil {
			return err
		}
		page.Intro = intro
		return nil
	})
	g.Go(func() error {
		full, err := c.fetchExtract(gctx, title, false)
		if err != nil {
			return err
		}
		page.FullText = full
		return nil
	})
	if err := g.Wait(); err != nil {
		return Page{}, err
	}
	return page, nil
}

func (c *Client) searchTitle(ctx context.Context, name string) (string, error) {
	var out struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {name},
		"srlimit":  {"1"},
		"format":   {"json"},
	}
	if err := c.get(ctx, params, &out); err != nil {
		return "", err
	}
	if len(out.Query.Search) == 0 {
		return "", fmt.Errorf("no page for %q: %w", name, sentinel.ErrNotFound)
	}
	return out.Query.Search[0].Title, nil
}

func (c *Client) fetchExtract(ctx context.Context, title string, introOnly bool) (string, error) {
	var out struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	params := url.Values{
		"action":      {"query"},
		"prop":        {"extracts"},
		"explaintext": {"1"},
		"titles":      {title},
		"format":      {"json"},
	}
	if introOnly {
		params.Set("exintro", "1")
	}
	if err := c.get(ctx, params, &out); err != nil {
		return "", err
	}
	for _, p := range out.Query.Pages {
		return p.Extract, nil
	}
	return "", nil
}

func (c *Client) fetchWikitext(ctx context.Context, title string) (string, error) {
	var out struct {
		Query struct {
			Pages map[string]struct {
				Revisions []struct {
					Slots struct {
						Main struct {
							Content string `json:"content"`
						} `json:"main"`
					} `json:"slots"`
				} `json:"revisions"`
			} `json:"pages"`
		} `json:"query"`
	}
	params := url.Values{
		"action":  {"query"},
		"prop":    {"revisions"},
		"rvprop":  {"content"},
		"rvslots": {"main"},
		"titles":  {title},
		"format":  {"json"},
	}
	if err := c.get(ctx, params, &out); err != nil {
		return "", err
	}
	for _, p := range out.Query.Pages {
		if len(p.Revisions) > 0 {
			return p.Revisions[0].Slots.Main.Content, nil
		}
	}
	return "", nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build knowledge-base request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("knowledge-base fetch: %v: %w", err, sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("knowledge-base fetch: status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("knowledge-base read: %v: %w", err, sentinel.ErrUnavailable)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("knowledge-base decode: %v: %w", err, sentinel.ErrMalformed)
	}
	return nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.log != nil {
		c.log.Debug(msg, args...)
	}
}
