package pkgscope

import (
	"context"
	"fmt"
	"strings"
)

// LoadErrors collects one labeled message per source that failed to load.
// Sources that parsed fine still contribute their packages; a failure is
// never allowed to abort the whole load.
type LoadErrors []string

func (e LoadErrors) Error() string {
	return strings.Join(e, "\n")
}

// LoadPackageLists runs the three source queries in order (APT, Flatpak,
// Snap) and aggregates the results. progress, if non-nil, is called after
// each source finishes, whether it succeeded or not. Sources disabled in the
// config are skipped silently.
func LoadPackageLists(ctx context.Context, r Runner, progress func(Source)) (PackageLists, LoadErrors) {
	loaders := []struct {
		source Source
		load   func(context.Context, Runner) ([]Package, error)
	}{
		{SourceApt, loadApt},
		{SourceFlatpak, loadFlatpak},
		{SourceSnap, loadSnap},
	}

	var lists PackageLists
	var errs LoadErrors

	for _, l := range loaders {
		if disabledSources[l.source] {
			continue
		}

		pkgs, err := l.load(ctx, r)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s error: %v", l.source, err))
		} else {
			switch l.source {
			case SourceApt:
				lists.Apt = pkgs
			case SourceFlatpak:
				lists.Flatpak = pkgs
			case SourceSnap:
				lists.Snap = pkgs
			}
		}

		if progress != nil {
			progress(l.source)
		}
	}

	return lists, errs
}
