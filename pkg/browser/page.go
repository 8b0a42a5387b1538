package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/thesyncim/sitecheck/pkg/navigation"
)

// Page is a single browser tab. It implements navigation.Navigator.
// A Page is not safe for concurrent use.
type Page struct {
	page       *rod.Page
	navTimeout time.Duration
	timeout    time.Duration
}

var _ navigation.Navigator = (*Page)(nil)

// labelLookupJS resolves a form control from the text of its <label>, falling
// back to aria-label. Matching is case-insensitive on whitespace-collapsed text.
const labelLookupJS = `(label) => {
	const norm = (s) => (s || '').replace(/[\s*]+/g, ' ').trim().toLowerCase();
	const want = norm(label);
	for (const l of document.querySelectorAll('label')) {
		if (!norm(l.textContent).includes(want)) continue;
		const el = l.control || (l.htmlFor && document.getElementById(l.htmlFor));
		if (el) return el;
	}
	for (const el of document.querySelectorAll('[aria-label]')) {
		if (norm(el.getAttribute('aria-label')).includes(want)) return el;
	}
	return null;
}`

// roleLookupJS finds the first element matching selector whose accessible
// name (aria-label, text, or value) contains name.
const roleLookupJS = `(selector, name) => {
	const norm = (s) => (s || '').replace(/\s+/g, ' ').trim().toLowerCase();
	const want = norm(name);
	for (const el of document.querySelectorAll(selector)) {
		const text = norm(el.getAttribute('aria-label') || el.innerText || el.value);
		if (text.includes(want)) return el;
	}
	return null;
}`

// roleSelectors maps ARIA roles to the elements that carry them implicitly.
var roleSelectors = map[string]string{
	"button":  `button, input[type=submit], input[type=button], input[type=reset], [role=button]`,
	"link":    `a[href], [role=link]`,
	"textbox": `input:not([type]), input[type=text], input[type=email], textarea, [role=textbox]`,
}

// SetDefaultNavigationTimeout bounds every subsequent Goto call.
func (p *Page) SetDefaultNavigationTimeout(d time.Duration) {
	p.navTimeout = d
}

// Goto navigates to url and waits for the given ready state.
func (p *Page) Goto(url string, until navigation.ReadyState) error {
	page := p.page.Timeout(p.navTimeout)
	defer page.CancelTimeout()

	wait := page.WaitNavigation(lifecycleEvent(until))
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	wait()

	if err := page.GetContext().Err(); err != nil {
		return fmt.Errorf("timed out waiting for %s on %s: %w", until, url, err)
	}
	return nil
}

// WaitForTimeout blocks for d.
func (p *Page) WaitForTimeout(d time.Duration) {
	time.Sleep(d)
}

// Title returns the document title.
func (p *Page) Title() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", fmt.Errorf("failed to read page info: %w", err)
	}
	return info.Title, nil
}

// Eval executes JavaScript in the page and returns the result.
func (p *Page) Eval(js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	res, err := p.page.Eval(js, args...)
	if err != nil {
		return nil, fmt.Errorf("eval failed: %w", err)
	}
	return res, nil
}

// ByLabel returns the form control labelled label.
func (p *Page) ByLabel(label string) (*Element, error) {
	page := p.page.Timeout(p.timeout)
	defer page.CancelTimeout()

	el, err := page.ElementByJS(rod.Eval(labelLookupJS, label))
	if err != nil {
		return nil, fmt.Errorf("no element labelled %q: %w", label, err)
	}
	return p.element(el), nil
}

// ByRole returns the first element with the given ARIA role whose
// accessible name contains name.
func (p *Page) ByRole(role, name string) (*Element, error) {
	selector, ok := roleSelectors[role]
	if !ok {
		selector = fmt.Sprintf("[role=%q]", role)
	}

	page := p.page.Timeout(p.timeout)
	defer page.CancelTimeout()

	el, err := page.ElementByJS(rod.Eval(roleLookupJS, selector, name))
	if err != nil {
		return nil, fmt.Errorf("no %s named %q: %w", role, name, err)
	}
	return p.element(el), nil
}

// element wraps a located element. Rod hands the element the lookup's
// timeout context, which is cancelled once the lookup returns, so it is
// rebound to the page's own context.
func (p *Page) element(el *rod.Element) *Element {
	return &Element{el: el.Context(p.page.GetContext()), timeout: p.timeout}
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}

func lifecycleEvent(until navigation.ReadyState) proto.PageLifecycleEventName {
	if until == navigation.ReadyDOMContentLoaded {
		return proto.PageLifecycleEventNameDOMContentLoaded
	}
	return proto.PageLifecycleEventNameLoad
}
