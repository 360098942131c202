package navigation

import (
	"errors"
	"testing"

	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"

	"github.com/stretchr/testify/require"
)

// Test ParsePage
func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      Page
		wantError bool
	}{
		{name: "login", input: "login", want: PageLogin},
		{name: "dashboard", input: "dashboard", want: PageDashboard},
		{name: "impact", input: "impact", want: PageImpact},
		{name: "receive", input: "receive", want: PageReceive},
		{name: "post", input: "post", want: PagePost},
		{name: "request", input: "request", want: PageRequest},
		{name: "lend", input: "lend", want: PageLend},
		{name: "profile", input: "profile", want: PageProfile},
		{name: "unknown_page", input: "settings", wantError: true},
		{name: "empty", input: "", wantError: true},
		{name: "case_sensitive", input: "Dashboard", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			page, err := ParsePage(tc.input)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, sharingerrors.ErrUnknownPage))
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.want, page)
			}
		})
	}
}

// Test Navigate
func TestNavigator_Navigate(t *testing.T) {
	t.Parallel()

	nav := NewNavigator()
	require.Equal(t, PageLogin, nav.Current())

	require.NoError(t, nav.Navigate(PageDashboard))
	require.Equal(t, PageDashboard, nav.Current())

	// invalid identifiers leave the current page untouched
	err := nav.Navigate(Page("settings"))
	require.True(t, errors.Is(err, sharingerrors.ErrUnknownPage))
	require.Equal(t, PageDashboard, nav.Current())
}

// Test Subscribe
func TestNavigator_Subscribe(t *testing.T) {
	t.Parallel()

	nav := NewNavigator()

	var seen []Page
	nav.Subscribe(func(p Page) { seen = append(seen, p) })

	require.NoError(t, nav.Navigate(PageLend))
	require.NoError(t, nav.Navigate(PageProfile))
	require.Error(t, nav.Navigate(Page("nope")))

	require.Equal(t, []Page{PageLend, PageProfile}, seen)
}
