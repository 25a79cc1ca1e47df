package pkgscope

// Page is the active navigation selection.
type Page int

const (
	PageApt Page = iota
	PageFlatpak
	PageSnap
	PageAll
)

func (p Page) String() string {
	switch p {
	case PageApt:
		return "APT Packages"
	case PageFlatpak:
		return "Flatpak Packages"
	case PageSnap:
		return "Snap Packages"
	case PageAll:
		return "All Packages"
	}
	return "unknown"
}

// AppState holds everything the interface renders. It is owned by the UI
// update path and only ever mutated through apply, so every transition stays
// inspectable and testable.
type AppState struct {
	lists         PackageLists
	loadErrors    LoadErrors
	loaded        bool
	currentPage   Page
	nameSearch    string
	sourceSearch  string
	includeSystem bool
}

// NewAppState returns the startup state: empty lists, APT page selected,
// include-system flag taken from the config default.
func NewAppState() *AppState {
	return &AppState{
		currentPage:   PageApt,
		includeSystem: defaultIncludeSystem,
	}
}

// Transition messages. The UI constructs these; apply is the only place state
// changes.
type (
	navigateMsg      struct{ page Page }
	nameSearchMsg    struct{ term string }
	sourceSearchMsg  struct{ term string }
	includeSystemMsg struct{ include bool }
	loadedMsg        struct {
		lists PackageLists
		errs  LoadErrors
	}
)

func (s *AppState) apply(msg any) {
	switch m := msg.(type) {
	case loadedMsg:
		s.lists = m.lists
		s.loadErrors = m.errs
		s.loaded = true
	case navigateMsg:
		s.currentPage = m.page
		// Switching pages drops the name search but keeps the source
		// search and the include-system flag.
		s.nameSearch = ""
	case nameSearchMsg:
		s.nameSearch = m.term
	case sourceSearchMsg:
		s.sourceSearch = m.term
	case includeSystemMsg:
		s.includeSystem = m.include
	}
}

// pagePackages returns the unfiltered package sequence backing the current
// page. The All page concatenates the three lists in load order.
func (s *AppState) pagePackages() []Package {
	switch s.currentPage {
	case PageApt:
		return s.lists.Apt
	case PageFlatpak:
		return s.lists.Flatpak
	case PageSnap:
		return s.lists.Snap
	}

	all := make([]Package, 0, s.lists.Total())
	all = append(all, s.lists.Apt...)
	all = append(all, s.lists.Flatpak...)
	all = append(all, s.lists.Snap...)
	return all
}

// visible applies the current filters to the current page.
func (s *AppState) visible() []Package {
	return filterPackages(s.pagePackages(), s.nameSearch, s.sourceSearch, s.includeSystem)
}
