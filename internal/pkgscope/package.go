package pkgscope

// Source identifies the package manager a record came from.
type Source int

const (
	SourceApt Source = iota
	SourceFlatpak
	SourceSnap
)

func (s Source) String() string {
	switch s {
	case SourceApt:
		return "APT"
	case SourceFlatpak:
		return "Flatpak"
	case SourceSnap:
		return "Snap"
	}
	return "unknown"
}

// Package is one installed unit as reported by its package manager. IsSystem
// marks dependency/runtime components that the user did not install as an
// application; it is computed once at parse time and never touched by the UI.
type Package struct {
	Source   Source
	Name     string
	Version  string
	IsSystem bool
}

// PackageLists is the payload of one load operation: the three per-source
// lists. A reload replaces it wholesale; there is no incremental merge.
type PackageLists struct {
	Apt     []Package
	Flatpak []Package
	Snap    []Package
}

// Total returns the number of packages across all three sources.
func (l PackageLists) Total() int {
	return len(l.Apt) + len(l.Flatpak) + len(l.Snap)
}
