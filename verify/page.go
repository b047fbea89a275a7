package verify

import "time"

// Page is the single browser tab the runner drives.
type Page interface {
	// Goto loads the given URL and blocks until the page has loaded.
	Goto(url string) error
	// GetByRole resolves an element by its accessible role and exact name.
	GetByRole(role, name string) Locator
	// Locator resolves elements matching a selector.
	Locator(selector string) Locator
	// Screenshot captures the full page and writes it to path,
	// overwriting any previous capture.
	Screenshot(path string) error
}

// Locator is a lazy handle to an element on a Page. Resolution happens
// on the first action, so locating something that does not exist yet is
// not an error.
type Locator interface {
	// First narrows the locator to the first matching element.
	First() Locator
	// WaitVisible blocks until the element is visible or the timeout
	// elapses. A zero timeout means the browser layer's default.
	WaitVisible(timeout time.Duration) error
	// Click clicks the element's default point.
	Click() error
	// ClickPosition clicks at (x, y) relative to the element's
	// top-left corner.
	ClickPosition(x, y float64) error
}

// Browser owns pages. Whoever launched it must close it.
type Browser interface {
	NewPage() (Page, error)
	Close() error
}

// Launcher starts a browser instance.
type Launcher interface {
	Launch() (Browser, error)
}
