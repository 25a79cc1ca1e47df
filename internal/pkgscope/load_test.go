package pkgscope

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aptMarkCmd = "apt-mark showmanual"
	dpkgCmd    = "dpkg-query -W -f=${Package}\t${Version}\n"
	flatpakCmd = "flatpak list --app --columns=application,version,branch,origin"
	snapCmd    = "snap list"
)

func healthyRunner() fakeRunner {
	return fakeRunner{outputs: map[string]string{
		aptMarkCmd: "htop\n",
		dpkgCmd:    "htop\t3.0.5-7\nzlib1g\t1:1.2.11\n",
		flatpakCmd: "org.mozilla.firefox 121.0 stable flathub\n",
		snapCmd:    "Name  Version  Rev  Tracking  Publisher  Notes\ncore20  20240111  2182  latest/stable  canonical  base\n",
	}}
}

func resetDisabledSources(t *testing.T) {
	t.Helper()
	saved := disabledSources
	disabledSources = make(map[Source]bool)
	t.Cleanup(func() { disabledSources = saved })
}

func TestLoadPackageListsAllSourcesSucceed(t *testing.T) {
	resetDisabledSources(t)

	lists, errs := LoadPackageLists(context.Background(), healthyRunner(), nil)
	require.Empty(t, errs)

	assert.Len(t, lists.Apt, 2)
	assert.Len(t, lists.Flatpak, 1)
	assert.Len(t, lists.Snap, 1)
	assert.Equal(t, 4, lists.Total())
}

func TestLoadPackageListsPartialFailureKeepsSuccesses(t *testing.T) {
	resetDisabledSources(t)

	r := healthyRunner()
	r.errs = map[string]error{
		snapCmd: errors.New("failed to run `snap`: executable file not found in $PATH"),
	}

	lists, errs := LoadPackageLists(context.Background(), r, nil)

	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0], "Snap error: "))

	assert.Len(t, lists.Apt, 2, "succeeded sources still contribute")
	assert.Len(t, lists.Flatpak, 1)
	assert.Empty(t, lists.Snap)
}

func TestLoadPackageListsAptMarkFailureTakesDownApt(t *testing.T) {
	resetDisabledSources(t)

	r := healthyRunner()
	r.errs = map[string]error{
		aptMarkCmd: errors.New("`apt-mark` exited with exit status 100"),
	}

	lists, errs := LoadPackageLists(context.Background(), r, nil)

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "APT error: ")
	assert.Empty(t, lists.Apt)
	assert.Len(t, lists.Flatpak, 1)
}

func TestLoadPackageListsAllFail(t *testing.T) {
	resetDisabledSources(t)

	r := fakeRunner{} // every command is unexpected
	lists, errs := LoadPackageLists(context.Background(), r, nil)

	require.Len(t, errs, 3)
	assert.Equal(t, 0, lists.Total())

	// One line per failed source, in load order.
	joined := errs.Error()
	linesOut := strings.Split(joined, "\n")
	require.Len(t, linesOut, 3)
	assert.True(t, strings.HasPrefix(linesOut[0], "APT error: "))
	assert.True(t, strings.HasPrefix(linesOut[1], "Flatpak error: "))
	assert.True(t, strings.HasPrefix(linesOut[2], "Snap error: "))
}

func TestLoadPackageListsSkipsDisabledSources(t *testing.T) {
	resetDisabledSources(t)
	disabledSources[SourceSnap] = true

	r := healthyRunner()
	r.errs = map[string]error{snapCmd: errors.New("should never run")}

	lists, errs := LoadPackageLists(context.Background(), r, nil)
	assert.Empty(t, errs)
	assert.Empty(t, lists.Snap)
	assert.Len(t, lists.Apt, 2)
}

func TestLoadPackageListsProgressFiresPerSource(t *testing.T) {
	resetDisabledSources(t)

	var seen []Source
	r := healthyRunner()
	r.errs = map[string]error{flatpakCmd: errors.New("boom")}

	LoadPackageLists(context.Background(), r, func(s Source) {
		seen = append(seen, s)
	})

	// Progress ticks for failures too, so a bar always completes.
	assert.Equal(t, []Source{SourceApt, SourceFlatpak, SourceSnap}, seen)
}
