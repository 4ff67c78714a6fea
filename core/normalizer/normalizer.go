package normalizer

import (
	"path/filepath"
	"strings"

	"github.com/lwaldron/repath/core/models"
)

// Normalize computes the canonical import string for an absolute on-disk
// target, or reports that none could be determined.
//
// Targets outside the base URL are never rewritten, regardless of flags.
// Inside it, the alias table is scanned in declaration order unless
// onlyAbsolute is set; the first matching entry wins. Without an alias match
// the base-relative path itself is the answer, unless onlyAliases is set.
func Normalize(absTarget, baseURL string, table models.AliasTable, onlyAliases, onlyAbsolute bool) (string, bool) {
	rel, err := filepath.Rel(baseURL, absTarget)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	if escapesBase(rel) {
		return "", false
	}

	if !onlyAbsolute {
		if aliased, ok := table.Match(rel); ok {
			return aliased, true
		}
	}

	if !onlyAliases {
		return rel, true
	}

	return "", false
}

func escapesBase(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, "../")
}
