package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first. Pre-compiled
// so normalization stays cheap on the hot path.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/api/v1/usuarios/senha/\d+$`), template: "/api/v1/usuarios/senha/:id"},
	{pattern: regexp.MustCompile(`^/api/v1/usuarios/\d+$`), template: "/api/v1/usuarios/:id"},
	{pattern: regexp.MustCompile(`^/api/v1/artigos/\d+$`), template: "/api/v1/artigos/:id"},
}

// NormalizePath collapses dynamic URL paths to templates so that metric
// labels keep a bounded cardinality. /api/v1/artigos/123 becomes
// /api/v1/artigos/:id; static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
