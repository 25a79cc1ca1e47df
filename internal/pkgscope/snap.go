package pkgscope

import (
	"context"
	"strings"
)

// loadSnap lists installed snaps and classifies the OS-level ones.
func loadSnap(ctx context.Context, r Runner) ([]Package, error) {
	out, err := r.Output(ctx, "snap", "list")
	if err != nil {
		return nil, err
	}
	return parseSnapList(out), nil
}

// parseSnapList parses `snap list` output. The first line is the column
// header and is always skipped; lines with fewer than two columns are
// dropped. The notes column is the last field on the line.
func parseSnapList(out string) []Package {
	var pkgs []Package

	for i, line := range strings.Split(out, "\n") {
		if i == 0 {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) < 2 {
			continue
		}

		name := cols[0]
		version := cols[1]
		notes := cols[len(cols)-1]

		pkgs = append(pkgs, Package{
			Source:   SourceSnap,
			Name:     name,
			Version:  version,
			IsSystem: snapIsRuntime(name, notes),
		})
	}

	return pkgs
}

// snapIsRuntime reports whether a snap is an OS-level component. The notes
// column flags base/kernel/gadget roles directly; the name prefixes cover the
// shared-runtime naming convention (core18, gnome-3-38-2004, gtk-common-themes
// and friends).
func snapIsRuntime(name, notes string) bool {
	if strings.Contains(notes, "base") ||
		strings.Contains(notes, "kernel") ||
		strings.Contains(notes, "gadget") {
		return true
	}

	return strings.HasPrefix(name, "core") ||
		strings.HasPrefix(name, "gnome-") ||
		strings.HasPrefix(name, "gtk-") ||
		strings.HasPrefix(name, "mesa-")
}
