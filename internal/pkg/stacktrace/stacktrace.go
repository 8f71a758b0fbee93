// Package stacktrace trims goroutine stack dumps for logging.
package stacktrace

import "strings"

// InternalPaths returns the "internal/...go:line" locations found in a raw
// stack trace, dropping frames outside the module's internal tree.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines)/2)

	for _, line := range lines {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		location, _, _ := strings.Cut(line, " ")
		if _, rel, found := strings.Cut(location, "/internal/"); found {
			paths = append(paths, "internal/"+rel)
		}
	}

	return paths
}
