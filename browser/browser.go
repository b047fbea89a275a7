// Package browser adapts playwright-go to the narrow surface the
// verification runner drives: launch, navigate, role lookup, visibility
// waits, clicks and screenshots.
package browser

import (
	"fmt"
	"time"

	"citysim-verify/verify"

	"github.com/playwright-community/playwright-go"
)

// Options configures a launch.
type Options struct {
	// Headless runs Chromium without a window. Flip off for local
	// debugging only.
	Headless bool
	// SkipInstall skips the driver and browser download check, for
	// environments that preinstall them.
	SkipInstall bool
}

// Launcher launches Chromium sessions.
type Launcher struct {
	opts Options
}

// NewLauncher returns a Launcher with the given options.
func NewLauncher(opts Options) *Launcher {
	return &Launcher{opts: opts}
}

// Launch installs the Playwright driver if needed, starts it and
// launches Chromium.
func (l *Launcher) Launch() (verify.Browser, error) {
	if !l.opts.SkipInstall {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("install playwright browsers: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	br, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	return &chromium{pw: pw, browser: br}, nil
}

// chromium pairs a launched browser with the driver that owns it, so
// closing the one stops the other.
type chromium struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func (c *chromium) NewPage() (verify.Page, error) {
	p, err := c.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	return &page{page: p}, nil
}

// Close closes the browser, then stops the driver. The driver stops even
// when the browser close fails.
func (c *chromium) Close() error {
	err := c.browser.Close()
	if serr := c.pw.Stop(); err == nil {
		err = serr
	}
	return err
}

type page struct {
	page playwright.Page
}

func (p *page) Goto(url string) error {
	if _, err := p.page.Goto(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

func (p *page) GetByRole(role, name string) verify.Locator {
	return &locator{locator: p.page.Locator(RoleSelector(role, name))}
}

func (p *page) Locator(selector string) verify.Locator {
	return &locator{locator: p.page.Locator(selector)}
}

func (p *page) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	return nil
}

type locator struct {
	locator playwright.Locator
}

func (l *locator) First() verify.Locator {
	return &locator{locator: l.locator.First()}
}

// WaitVisible waits for the element to be visible. A zero timeout leaves
// the Timeout option unset so Playwright's default applies.
func (l *locator) WaitVisible(timeout time.Duration) error {
	opts := playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}
	if timeout > 0 {
		opts.Timeout = playwright.Float(float64(timeout.Milliseconds()))
	}
	if err := l.locator.WaitFor(opts); err != nil {
		return fmt.Errorf("wait for visible: %w", err)
	}
	return nil
}

func (l *locator) Click() error {
	if err := l.locator.Click(); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	return nil
}

func (l *locator) ClickPosition(x, y float64) error {
	err := l.locator.Click(playwright.LocatorClickOptions{
		Position: &playwright.Position{X: x, Y: y},
	})
	if err != nil {
		return fmt.Errorf("click at (%.0f, %.0f): %w", x, y, err)
	}
	return nil
}
