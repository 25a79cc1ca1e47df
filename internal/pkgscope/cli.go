package pkgscope

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gookit/color"
	"github.com/schollz/progressbar/v3"
)

// printHelp prints the commands table
func printHelp() {
	colSuccess.Println("Usage: pkgscope [command] [arguments]")
	colSuccess.Println("Running without a command opens the package browser")
	fmt.Println()
	color.Info.Println("Available Commands:")

	type cmdInfo struct {
		Cmd  string
		Args string
		Desc string
	}
	cmds := []cmdInfo{
		{"tui", "", "Browse installed packages interactively (default)"},
		{"list, ls", "[-system] [-source <s>] [query]", "Print installed packages, optionally filtered by name"},
		{"version, --version", "", "Version information"},
		{"help", "", "Show this help"},
	}

	// Find the longest usage string so the description column lines up.
	maxLen := 0
	for _, c := range cmds {
		length := len(c.Cmd) + len(c.Args)
		if c.Args != "" {
			length++ // Account for the space
		}
		if length > maxLen {
			maxLen = length
		}
	}
	columnWidth := maxLen + 4

	for _, c := range cmds {
		var usageString string
		if c.Args != "" {
			usageString = fmt.Sprintf("  %s %s", c.Cmd, c.Args)
		} else {
			usageString = fmt.Sprintf("  %s", c.Cmd)
		}

		fmt.Print("  ")
		color.Bold.Print(c.Cmd)
		if c.Args != "" {
			fmt.Print(" ")
			color.Cyan.Print(c.Args)
		}

		pad := columnWidth - len(usageString)
		if pad < 1 {
			pad = 1
		}
		fmt.Print(strings.Repeat(" ", pad))

		color.Info.Println(c.Desc)
	}

	fmt.Println()
}

func printVersion() {
	colArrow.Print("-> ")
	colSuccess.Printf("pkgscope %s (%s), built %s\n", version, arch, buildDate)
}

// Main is the CLI entrypoint for cmd/pkgscope.
func Main() {
	// Root context, cancelled on SIGINT/SIGTERM so in-flight package
	// manager invocations die with us.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigs:
			colArrow.Print("\n-> ")
			color.Danger.Printf("Received %v. Shutting down\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadConfig(configPath())
	if err != nil {
		colWarn.Printf("Warning: could not read config: %v\n", err)
	}
	initConfig(cfg)

	runner := NewExecRunner()

	cmd := "tui"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "tui":
		os.Exit(runTUI(ctx, runner))
	case "list", "ls":
		os.Exit(runList(ctx, runner, os.Args[2:]))
	case "version", "--version":
		printVersion()
	case "help", "-h", "--help":
		printHelp()
	default:
		fmt.Println("Unknown command:", cmd)
		printHelp()
		os.Exit(1)
	}
}

// runList loads all sources and prints a plain table, paged when it exceeds
// the terminal. Returns the process exit code.
func runList(ctx context.Context, r Runner, args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	includeSystem := fs.Bool("system", defaultIncludeSystem, "include system/runtime packages")
	sourceFilter := fs.String("source", "", "only show packages whose source matches the substring")
	fs.Parse(args)

	nameFilter := strings.Join(fs.Args(), " ")

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetDescription("Querying package managers"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	lists, errs := LoadPackageLists(ctx, r, func(Source) {
		bar.Add(1)
	})
	bar.Finish()

	for _, e := range errs {
		fmt.Fprint(os.Stderr, colArrow.Sprint("-> "))
		fmt.Fprintln(os.Stderr, colError.Sprint(e))
	}

	all := make([]Package, 0, lists.Total())
	all = append(all, lists.Apt...)
	all = append(all, lists.Flatpak...)
	all = append(all, lists.Snap...)

	if len(errs) > 0 && len(all) == 0 {
		return 1
	}

	visible := filterPackages(all, nameFilter, *sourceFilter, *includeSystem)
	if len(visible) == 0 {
		colArrow.Print("-> ")
		if nameFilter != "" {
			colSuccess.Printf("No packages found matching: %s\n", nameFilter)
		} else {
			colSuccess.Println("No packages found.")
		}
		return 0
	}

	if err := runPager("Installed Packages", formatPackageLines(visible)); err != nil {
		fmt.Fprintf(os.Stderr, "Error displaying package list: %v\n", err)
		return 1
	}
	return 0
}

// formatPackageLines renders packages as aligned columns, widths computed
// from the longest entry per column.
func formatPackageLines(pkgs []Package) []string {
	nameWidth := len("NAME")
	versionWidth := len("VERSION")
	for _, pkg := range pkgs {
		if len(pkg.Name) > nameWidth {
			nameWidth = len(pkg.Name)
		}
		if len(pkg.Version) > versionWidth {
			versionWidth = len(pkg.Version)
		}
	}

	lines := make([]string, 0, len(pkgs)+1)
	lines = append(lines, fmt.Sprintf("%-8s  %-*s  %-*s  %s",
		"SOURCE", nameWidth, "NAME", versionWidth, "VERSION", "SYSTEM"))

	for _, pkg := range pkgs {
		system := ""
		if pkg.IsSystem {
			system = "yes"
		}
		lines = append(lines, fmt.Sprintf("%-8s  %-*s  %-*s  %s",
			pkg.Source, nameWidth, pkg.Name, versionWidth, pkg.Version, system))
	}

	return lines
}
