package pkgscope

import (
	"context"
	"strings"
)

// loadFlatpak lists installed flatpak applications. The query uses --app, so
// runtimes never show up and every record is a user application.
func loadFlatpak(ctx context.Context, r Runner) ([]Package, error) {
	out, err := r.Output(ctx, "flatpak", "list", "--app", "--columns=application,version,branch,origin")
	if err != nil {
		return nil, err
	}
	return parseFlatpakList(out), nil
}

// parseFlatpakList takes the first two whitespace columns of each line as
// name and version. Lines yielding no name are dropped.
func parseFlatpakList(out string) []Package {
	var pkgs []Package

	for _, line := range strings.Split(out, "\n") {
		cols := strings.Fields(line)
		if len(cols) == 0 {
			continue
		}

		name := cols[0]
		version := ""
		if len(cols) > 1 {
			version = cols[1]
		}

		pkgs = append(pkgs, Package{
			Source:   SourceFlatpak,
			Name:     name,
			Version:  version,
			IsSystem: false,
		})
	}

	return pkgs
}
