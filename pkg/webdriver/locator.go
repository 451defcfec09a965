package webdriver

import "github.com/go-rod/rod"

// Locator resolves elements by a stable test id. Must methods panic on
// failure, which the generated step guards catch and report.
type Locator struct {
	page     *rod.Page
	selector string
}

// MustCount returns how many elements match the test id.
func (l *Locator) MustCount() int {
	return len(l.page.MustElements(l.selector))
}

// MustClick clicks the matching element.
func (l *Locator) MustClick() {
	l.page.MustElement(l.selector).MustClick()
}

// MustVisible reports whether the matching element is visible.
func (l *Locator) MustVisible() bool {
	return l.page.MustElement(l.selector).MustVisible()
}

// MustText returns the matching element's text content.
func (l *Locator) MustText() string {
	return l.page.MustElement(l.selector).MustText()
}

// MustFill replaces the matching element's value.
func (l *Locator) MustFill(value string) {
	el := l.page.MustElement(l.selector)
	el.MustSelectAllText()
	el.MustInput(value)
}

// MustSelect chooses the option with the given text.
func (l *Locator) MustSelect(value string) {
	l.page.MustElement(l.selector).MustSelect(value)
}
