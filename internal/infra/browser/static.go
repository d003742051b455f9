package browser

import (
	"context"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// Static fetches the page over plain HTTP and parses it without
// executing scripts. It works where a headless browser is unavailable,
// as long as the player markup is server rendered.
type Static struct {
	httpClient *http.Client
	userAgent  string
}

// NewStatic creates a static renderer.
func NewStatic(timeout time.Duration, userAgent string) *Static {
	return &Static{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Render fetches and parses the page.
func (s *Static) Render(ctx context.Context, url string) (View, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("unexpected status %d from %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page")
	}
	return &staticPage{doc: doc}, nil
}

// staticPage wraps a parsed document. The document is complete, so
// WaitReady degrades to an existence check.
type staticPage struct {
	doc *goquery.Document
}

func (p *staticPage) WaitReady(selector string) error {
	if p.doc.Find(selector).Length() == 0 {
		return errors.Newf("selector %q not found", selector)
	}
	return nil
}

func (p *staticPage) Text(selector string) (string, error) {
	return p.doc.Find(selector).First().Text(), nil
}

func (p *staticPage) Close() {}
