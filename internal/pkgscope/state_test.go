package pkgscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState() *AppState {
	s := NewAppState()
	s.apply(loadedMsg{lists: PackageLists{
		Apt: []Package{
			{Source: SourceApt, Name: "htop", Version: "3.0.5-7"},
			{Source: SourceApt, Name: "libssl3", Version: "3.0.2", IsSystem: true},
		},
		Flatpak: []Package{
			{Source: SourceFlatpak, Name: "org.mozilla.firefox", Version: "121.0"},
		},
		Snap: []Package{
			{Source: SourceSnap, Name: "core20", Version: "20240111", IsSystem: true},
			{Source: SourceSnap, Name: "spotify", Version: "1.2.26"},
		},
	}})
	return s
}

func TestAppStateStartsEmptyOnAptPage(t *testing.T) {
	s := NewAppState()
	assert.Equal(t, PageApt, s.currentPage)
	assert.False(t, s.loaded)
	assert.Empty(t, s.visible())
}

func TestAppStateLoadedReplacesListsWholesale(t *testing.T) {
	s := loadedState()
	require.True(t, s.loaded)
	assert.Equal(t, 5, s.lists.Total())

	// A second load supersedes everything, no merging.
	s.apply(loadedMsg{lists: PackageLists{
		Apt: []Package{{Source: SourceApt, Name: "vim", Version: "2:8.2"}},
	}})
	assert.Equal(t, 1, s.lists.Total())
}

func TestAppStateNavigateResetsNameSearchOnly(t *testing.T) {
	s := loadedState()
	s.apply(nameSearchMsg{term: "fire"})
	s.apply(sourceSearchMsg{term: "flat"})
	s.apply(includeSystemMsg{include: true})

	s.apply(navigateMsg{page: PageSnap})

	assert.Equal(t, PageSnap, s.currentPage)
	assert.Empty(t, s.nameSearch)
	assert.Equal(t, "flat", s.sourceSearch)
	assert.True(t, s.includeSystem)
}

func TestAppStateVisiblePerPage(t *testing.T) {
	s := loadedState()

	tests := []struct {
		name     string
		page     Page
		expected []string
	}{
		{
			name:     "apt page hides system packages",
			page:     PageApt,
			expected: []string{"htop"},
		},
		{
			name:     "flatpak page",
			page:     PageFlatpak,
			expected: []string{"org.mozilla.firefox"},
		},
		{
			name:     "snap page hides runtimes",
			page:     PageSnap,
			expected: []string{"spotify"},
		},
		{
			name:     "all page concatenates in load order",
			page:     PageAll,
			expected: []string{"htop", "org.mozilla.firefox", "spotify"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.apply(navigateMsg{page: tt.page})
			var names []string
			for _, pkg := range s.visible() {
				names = append(names, pkg.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestAppStateIncludeSystemShowsFullPage(t *testing.T) {
	s := loadedState()
	s.apply(navigateMsg{page: PageAll})
	s.apply(includeSystemMsg{include: true})

	assert.Len(t, s.visible(), 5, "no filters and include-system shows everything")
}

func TestAppStateFilteringDoesNotMutateLists(t *testing.T) {
	s := loadedState()
	s.apply(nameSearchMsg{term: "zzz-no-match"})
	assert.Empty(t, s.visible())
	assert.Equal(t, 5, s.lists.Total(), "filtering only changes what is displayed")
}

func TestAppStateDefaultIncludeSystemFromConfig(t *testing.T) {
	saved := defaultIncludeSystem
	defaultIncludeSystem = true
	t.Cleanup(func() { defaultIncludeSystem = saved })

	s := NewAppState()
	assert.True(t, s.includeSystem)
}
