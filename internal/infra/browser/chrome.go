package browser

import (
	"context"

	"github.com/chromedp/chromedp"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
)

// ChromeSettings tunes the headless browser. The zero values are not
// useful, so defaults are applied before user settings are decoded.
type ChromeSettings struct {
	Headless      bool `mapstructure:"headless"`
	NoSandbox     bool `mapstructure:"no_sandbox"`
	DisableGPU    bool `mapstructure:"disable_gpu"`
	DisableDevShm bool `mapstructure:"disable_dev_shm"`
	WindowWidth   int  `mapstructure:"window_width"`
	WindowHeight  int  `mapstructure:"window_height"`
}

func defaultChromeSettings() ChromeSettings {
	return ChromeSettings{
		Headless:      true,
		NoSandbox:     true,
		DisableGPU:    true,
		DisableDevShm: true,
		WindowWidth:   1920,
		WindowHeight:  1080,
	}
}

// Chrome renders pages in a headless Chrome driven over the DevTools
// protocol. Each Render starts a fresh browser instance.
type Chrome struct {
	settings  ChromeSettings
	userAgent string
}

// NewChrome creates a Chrome renderer. Settings override the defaults
// key by key; absent keys keep their default.
func NewChrome(settings map[string]any, userAgent string) (*Chrome, error) {
	cfg := defaultChromeSettings()
	if len(settings) > 0 {
		if err := mapstructure.Decode(settings, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to decode browser settings")
		}
	}
	return &Chrome{settings: cfg, userAgent: userAgent}, nil
}

// Render opens the page in a new browser. The returned view stays
// usable until Close or until ctx expires, whichever comes first.
func (c *Chrome) Render(ctx context.Context, url string) (View, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.settings.Headless),
		chromedp.Flag("no-sandbox", c.settings.NoSandbox),
		chromedp.Flag("disable-gpu", c.settings.DisableGPU),
		chromedp.Flag("disable-dev-shm-usage", c.settings.DisableDevShm),
		chromedp.WindowSize(c.settings.WindowWidth, c.settings.WindowHeight),
	)
	if c.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.userAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(tabCtx, chromedp.Navigate(url)); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, errors.Wrapf(err, "failed to open %s", url)
	}

	return &chromePage{ctx: tabCtx, cancels: []context.CancelFunc{cancelTab, cancelAlloc}}, nil
}

// chromePage is a live Chrome tab.
type chromePage struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

func (p *chromePage) WaitReady(selector string) error {
	if err := chromedp.Run(p.ctx, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return errors.Wrapf(err, "selector %q did not appear", selector)
	}
	return nil
}

func (p *chromePage) Text(selector string) (string, error) {
	var text string
	// AtLeast(0) reads an empty string for missing elements instead of
	// blocking until they appear.
	err := chromedp.Run(p.ctx, chromedp.Text(selector, &text, chromedp.ByQuery, chromedp.AtLeast(0)))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read text of %q", selector)
	}
	return text, nil
}

func (p *chromePage) Close() {
	for _, cancel := range p.cancels {
		cancel()
	}
}
