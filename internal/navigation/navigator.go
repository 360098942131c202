package navigation

import (
	"fmt"
	"sync"

	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
)

// Page identifies one of the eight screens of the app
type Page string

const (
	PageLogin     Page = "login"
	PageDashboard Page = "dashboard"
	PageImpact    Page = "impact"
	PageReceive   Page = "receive"
	PagePost      Page = "post"
	PageRequest   Page = "request"
	PageLend      Page = "lend"
	PageProfile   Page = "profile"
)

// ParsePage validates a page identifier coming from the outside
func ParsePage(s string) (Page, error) {
	switch p := Page(s); p {
	case PageLogin, PageDashboard, PageImpact, PageReceive,
		PagePost, PageRequest, PageLend, PageProfile:
		return p, nil
	default:
		return "", fmt.Errorf("parse page %q: %w", s, sharingerrors.ErrUnknownPage)
	}
}

// Navigator holds the single current-page slot and tells subscribers when it
// changes. There is no history stack and no session guard on any page; login
// and logout are the only operations that navigate programmatically.
type Navigator struct {
	mu          sync.RWMutex
	current     Page
	subscribers []func(Page)
}

// NewNavigator creates a navigator positioned on the login page
func NewNavigator() *Navigator {
	return &Navigator{current: PageLogin}
}

// Current returns the page being shown
func (n *Navigator) Current() Page {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Navigate switches the current page. An identifier outside the page
// enumeration leaves the current page untouched.
func (n *Navigator) Navigate(page Page) error {
	if _, err := ParsePage(string(page)); err != nil {
		return err
	}

	n.mu.Lock()
	n.current = page
	subs := make([]func(Page), len(n.subscribers))
	copy(subs, n.subscribers)
	n.mu.Unlock()

	// Subscribers run after the slot is fully updated, outside the lock
	for _, fn := range subs {
		fn(page)
	}
	return nil
}

// Subscribe registers a callback invoked after every page change
func (n *Navigator) Subscribe(fn func(Page)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}
