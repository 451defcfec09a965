// Package webdriver is the narrow browser capability surface the generated
// tests drive: navigation, test-id locators, screenshots, and an optional
// video recording hook. It wraps go-rod so the generated code never touches
// a concrete automation framework directly.
package webdriver

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Options configures the shared browser and per-run artifact handling.
type Options struct {
	// ControlURL attaches to an already-running browser instead of
	// launching one.
	ControlURL string
	Headless   bool
	// ArtifactsDir receives failure screenshots.
	ArtifactsDir      string
	NavigationTimeout time.Duration
	// VideoPath points at a recording produced by an external recorder,
	// surfaced in failure diagnostics when set.
	VideoPath string
}

// DefaultOptions returns the options used when Configure is never called.
func DefaultOptions() Options {
	return Options{
		Headless:          true,
		ArtifactsDir:      "artifacts",
		NavigationTimeout: 30 * time.Second,
	}
}

var (
	mu        sync.Mutex
	opts      = DefaultOptions()
	browser   *rod.Browser
	shotCount int
)

// Configure sets the shared options. Call before the first NewPage; zero
// fields fall back to defaults.
func Configure(o Options) {
	mu.Lock()
	defer mu.Unlock()
	if o.ArtifactsDir == "" {
		o.ArtifactsDir = DefaultOptions().ArtifactsDir
	}
	if o.NavigationTimeout == 0 {
		o.NavigationTimeout = DefaultOptions().NavigationTimeout
	}
	opts = o
}

// sharedBrowser launches (or attaches to) the browser on first use.
func sharedBrowser() *rod.Browser {
	mu.Lock()
	defer mu.Unlock()
	if browser != nil {
		return browser
	}

	controlURL := opts.ControlURL
	if controlURL == "" {
		controlURL = launcher.New().Headless(opts.Headless).MustLaunch()
	}
	browser = rod.New().ControlURL(controlURL).MustConnect()
	return browser
}

// Shutdown closes the shared browser. Safe to call when nothing was started.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()
	if browser == nil {
		return nil
	}
	err := browser.Close()
	browser = nil
	return err
}

// Page is one browser tab. Generated tests open one per test case.
type Page struct {
	page *rod.Page
}

// NewPage opens a fresh tab on the shared browser.
func NewPage() *Page {
	return &Page{page: sharedBrowser().MustPage()}
}

// MustClose closes the tab.
func (p *Page) MustClose() {
	p.page.MustClose()
}

// MustNavigate loads url and waits for the load event.
func (p *Page) MustNavigate(url string) {
	p.page.Timeout(opts.NavigationTimeout).MustNavigate(url).MustWaitLoad()
}

// MustURL returns the current location.
func (p *Page) MustURL() string {
	return p.page.MustInfo().URL
}

// URL returns the current location without panicking; used by failure
// diagnostics where a dead page must not mask the original error.
func (p *Page) URL() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

// ByTestID returns a locator for elements carrying the given stable test id.
func (p *Page) ByTestID(id string) *Locator {
	return &Locator{page: p.page, selector: testIDSelector(id)}
}

// Screenshot captures a full-page screenshot into the artifacts directory
// and returns its path.
func (p *Page) Screenshot() (string, error) {
	bin, err := p.page.Screenshot(true, nil)
	if err != nil {
		return "", err
	}

	mu.Lock()
	dir := opts.ArtifactsDir
	shotCount++
	name := fmt.Sprintf("failure-%03d.png", shotCount)
	mu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, bin, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// VideoPath returns the configured recording path when the file exists.
// Browsers driven over CDP do not record on their own; the path comes from
// an external recorder via Options.VideoPath.
func (p *Page) VideoPath() (string, error) {
	mu.Lock()
	path := opts.VideoPath
	mu.Unlock()
	if path == "" {
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// testIDSelector builds the CSS selector for a stable test id.
func testIDSelector(id string) string {
	return fmt.Sprintf("[data-testid=%q]", id)
}
