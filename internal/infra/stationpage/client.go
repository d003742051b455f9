// Package stationpage fetches the station playlist table from the public page.
package stationpage

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/betaradio/nowplaying/internal/domain/playlist"
)

const (
	tableSelector = "div#playlist_table"
	rowSelector   = "a.datum_cas_skladba"
	timeCell      = "span.cas"
	artistCell    = "span.interpret"
	titleCell     = "span.titul"
)

// Client fetches and parses the station playlist page.
type Client struct {
	pageURL    string
	userAgent  string
	httpClient *http.Client
}

// Config represents station page client configuration.
type Config struct {
	PageURL   string
	UserAgent string
	Timeout   time.Duration
}

// New creates a new station page client.
func New(cfg Config) (*Client, error) {
	if cfg.PageURL == "" {
		return nil, errors.New("station page URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		pageURL:    cfg.PageURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchPlaylist retrieves the recently played entries from the station page,
// newest first. A page without a playlist table yields an empty slice.
func (c *Client) FetchPlaylist(ctx context.Context) ([]playlist.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.pageURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("unexpected status %d from %s", resp.StatusCode, c.pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse page")
	}

	table := doc.Find(tableSelector)
	if table.Length() == 0 {
		zlog.Debug().Msgf("no playlist table on page: url=%s", c.pageURL)
		return []playlist.Entry{}, nil
	}

	entries := make([]playlist.Entry, 0)
	table.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		entries = append(entries, playlist.Entry{
			Time:   strings.TrimSpace(row.Find(timeCell).First().Text()),
			Artist: strings.TrimSpace(row.Find(artistCell).First().Text()),
			Title:  strings.TrimSpace(row.Find(titleCell).First().Text()),
		})
	})

	zlog.Debug().Msgf("fetched playlist: url=%s entries=%d", c.pageURL, len(entries))
	return entries, nil
}
