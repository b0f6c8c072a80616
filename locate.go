package bots

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// configBases are the file names probed in every config directory.
var configBases = []string{
	"botrc",
	"bots.yaml",
	"bots.json",
}

// configCandidates returns the default config paths in probe order:
// cwd, then home, then home/bots.
func configCandidates(cwd, home string) []string {
	dirs := []string{cwd, home, filepath.Join(home, "bots")}
	paths := make([]string, 0, len(dirs)*len(configBases))
	for _, dir := range dirs {
		for _, base := range configBases {
			paths = append(paths, filepath.Join(dir, base))
		}
	}
	return paths
}

// expandHome replaces a leading "~" with the home directory.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// firstExisting returns the first path that exists on disk.
func firstExisting(paths []string, home string) (string, bool) {
	for _, p := range paths {
		expanded := expandHome(p, home)
		if _, err := os.Stat(expanded); err == nil {
			return expanded, true
		}
	}
	return "", false
}

// FindConfigFile locates the config file. An explicit path is tried first,
// followed by the default locations.
func FindConfigFile(explicit string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return findConfigFile(explicit, cwd, xdg.Home)
}

func findConfigFile(explicit, cwd, home string) (string, error) {
	candidates := configCandidates(cwd, home)
	if explicit != "" {
		candidates = append([]string{explicit}, candidates...)
	}
	if p, ok := firstExisting(candidates, home); ok {
		return p, nil
	}
	if explicit != "" {
		return "", fmt.Errorf("%w: custom config file not found: %s", ErrConfigNotFound, explicit)
	}
	return "", fmt.Errorf("%w: no botrc, bots.yaml or bots.json in %s, ~ or ~/bots", ErrConfigNotFound, cwd)
}
