package pkgscope

import (
	"context"
	"strings"
)

// loadApt queries dpkg for every installed package and apt-mark for the set
// the user installed explicitly, then classifies each record.
func loadApt(ctx context.Context, r Runner) ([]Package, error) {
	manual, err := loadManualSet(ctx, r)
	if err != nil {
		return nil, err
	}

	out, err := r.Output(ctx, "dpkg-query", "-W", "-f=${Package}\t${Version}\n")
	if err != nil {
		return nil, err
	}

	return parseDpkgList(out, manual), nil
}

// loadManualSet returns the package names apt-mark reports as manually
// installed.
func loadManualSet(ctx context.Context, r Runner) (map[string]struct{}, error) {
	out, err := r.Output(ctx, "apt-mark", "showmanual")
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set, nil
}

// parseDpkgList turns dpkg-query's tab-separated name/version output into
// package records. Lines with an empty name are dropped; a missing version
// column is kept as an empty string.
func parseDpkgList(out string, manual map[string]struct{}) []Package {
	var pkgs []Package

	for _, line := range strings.Split(out, "\n") {
		name, version, _ := strings.Cut(line, "\t")
		name = strings.TrimSpace(name)
		version = strings.TrimSpace(version)

		if name == "" {
			continue
		}

		_, isManual := manual[name]
		pkgs = append(pkgs, Package{
			Source:   SourceApt,
			Name:     name,
			Version:  version,
			IsSystem: aptIsSystem(name, isManual),
		})
	}

	return pkgs
}

// aptIsSystem reports whether an apt package is a dependency or runtime
// component rather than an application the user asked for. Only packages that
// are marked manual, not lib-prefixed and not matching a meta/runtime naming
// pattern count as user applications. This is a naming heuristic, not a walk
// of the real dependency graph.
func aptIsSystem(name string, manual bool) bool {
	if !manual {
		return true
	}
	if strings.HasPrefix(name, "lib") {
		return true
	}
	return aptIsMeta(name)
}

// aptIsMeta matches kernel images, language packs and split -data/-common
// payload packages that ride along with real applications.
func aptIsMeta(name string) bool {
	return strings.HasPrefix(name, "linux-") ||
		strings.HasPrefix(name, "language-pack-") ||
		strings.HasSuffix(name, "-data") ||
		strings.HasSuffix(name, "-common")
}
