package pkgscope

import "strings"

// filterPackage decides whether a single package is visible under the current
// filters. Matching is plain case-folded substring containment. System
// packages are hidden unless includeSystem is set. Filtering never mutates
// the underlying lists.
func filterPackage(pkg Package, name, source string, includeSystem bool) bool {
	if name != "" && !strings.Contains(strings.ToLower(pkg.Name), strings.ToLower(name)) {
		return false
	}
	if source != "" && !strings.Contains(strings.ToLower(pkg.Source.String()), strings.ToLower(source)) {
		return false
	}
	return !pkg.IsSystem || includeSystem
}

// filterPackages returns the visible subset of pkgs in input order.
func filterPackages(pkgs []Package, name, source string, includeSystem bool) []Package {
	var out []Package
	for _, pkg := range pkgs {
		if filterPackage(pkg, name, source, includeSystem) {
			out = append(out, pkg)
		}
	}
	return out
}
