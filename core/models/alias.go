package models

import "strings"

// AliasEntry maps a source-tree path prefix back to the alias prefix that
// should stand in for it. Both sides have their trailing wildcard stripped.
type AliasEntry struct {
	Prefix string // value side of the declaration, e.g. "utils" for "utils/*"
	Alias  string // key side of the declaration, e.g. "@utils" for "@utils/*"
}

// AliasTable is the inverted form of compilerOptions.paths, ordered by
// declaration. Entries are not deduplicated; the first prefix match wins.
type AliasTable []AliasEntry

func stripWildcard(s string) string {
	if strings.HasSuffix(s, "/*") {
		return strings.TrimSuffix(s, "/*")
	}
	return strings.TrimSuffix(s, "*")
}

// BuildAliasTable inverts the declared alias table. Each target path of a
// declared alias becomes its own entry keyed by the target prefix, so a
// single alias with several targets yields several entries.
func BuildAliasTable(paths []PathsEntry) AliasTable {
	var table AliasTable
	for _, entry := range paths {
		alias := stripWildcard(entry.Alias)
		for _, target := range entry.Targets {
			table = append(table, AliasEntry{
				Prefix: stripWildcard(target),
				Alias:  alias,
			})
		}
	}
	return table
}

// Match returns the alias-qualified form of rel, using the first entry whose
// prefix is a plain string prefix of rel. The match is intentionally not
// aligned to path segment boundaries.
func (t AliasTable) Match(rel string) (string, bool) {
	for _, entry := range t {
		if strings.HasPrefix(rel, entry.Prefix) {
			return entry.Alias + rel[len(entry.Prefix):], true
		}
	}
	return "", false
}
