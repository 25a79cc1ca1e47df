package pkgscope

import (
	"bufio"
	"os"
	"strings"
)

// Config struct
type Config struct {
	Values map[string]string
}

// loadConfig reads /etc/pkgscope.conf and applies defaults. A missing file is
// not an error; every key has a sane zero default.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Values: make(map[string]string)}

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			val = strings.Trim(val, `"'`)
			cfg.Values[key] = val
		}
		if err := scanner.Err(); err != nil {
			return cfg, err
		}
	}

	mergeEnvOverrides(cfg)

	return cfg, nil
}

// Merge PKGSCOPE_* env overrides
func mergeEnvOverrides(cfg *Config) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PKGSCOPE_") {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				cfg.Values[parts[0]] = parts[1]
			}
		}
	}
}

func initConfig(cfg *Config) {
	defaultIncludeSystem = isTruthy(cfg.Values["PKGSCOPE_INCLUDE_SYSTEM"])
	Debug = isTruthy(cfg.Values["PKGSCOPE_DEBUG"])

	disabledSources = make(map[Source]bool)
	for _, tok := range strings.Split(cfg.Values["PKGSCOPE_DISABLE"], ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "apt", "dpkg":
			disabledSources[SourceApt] = true
		case "flatpak":
			disabledSources[SourceFlatpak] = true
		case "snap":
			disabledSources[SourceSnap] = true
		}
	}
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// configPath resolves the config file location, honoring PKGSCOPE_CONFIG for
// relocated setups.
func configPath() string {
	if p := os.Getenv("PKGSCOPE_CONFIG"); p != "" {
		return p
	}
	return ConfigFile
}
