package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/lwaldron/repath/core/models"
)

// parseData parses a tsconfig/jsconfig document, tolerating comments and
// trailing commas. A syntax error yields the structured error list instead
// of a config; type-level oddities (compilerOptions not an object, baseUrl
// not a string, paths not an object) are not errors and simply leave the
// corresponding field empty.
func parseData(path string, data []byte) (*models.ProjectConfig, []models.ParseError) {
	text := jsonc.ToJSON(data)

	var doc map[string]interface{}
	if err := json.Unmarshal(text, &doc); err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			return nil, []models.ParseError{{
				Offset: int(syn.Offset),
				Length: 1,
				Code:   classify(syn.Error()),
			}}
		}
		// Valid JSON that is not an object. Nothing to extract.
		doc = nil
	}

	cfg := &models.ProjectConfig{
		Path: path,
		Dir:  filepath.Dir(path),
	}

	if co, ok := doc["compilerOptions"].(map[string]interface{}); ok {
		if base, ok := co["baseUrl"].(string); ok {
			cfg.BaseURL = base
			cfg.HasBase = true
		}
	}
	cfg.Paths = extractPaths(text)

	return cfg, nil
}

func classify(msg string) models.ParseErrorCode {
	switch {
	case strings.Contains(msg, "looking for beginning of value"):
		return models.ValueExpected
	case strings.Contains(msg, "looking for beginning of object key"):
		return models.PropertyNameExpected
	case strings.Contains(msg, "after top-level value"):
		return models.EndOfFileExpected
	default:
		return models.InvalidSymbol
	}
}

// extractPaths pulls compilerOptions.paths out of the document with a token
// decoder so declaration order survives; map-based decoding would shuffle the
// aliases and break first-match-wins semantics.
func extractPaths(text []byte) []models.PathsEntry {
	dec := json.NewDecoder(bytes.NewReader(text))
	if !expectDelim(dec, '{') {
		return nil
	}
	for dec.More() {
		key, ok := nextKey(dec)
		if !ok {
			return nil
		}
		if key != "compilerOptions" {
			if skipValue(dec) != nil {
				return nil
			}
			continue
		}
		return compilerOptionsPaths(dec)
	}
	return nil
}

func compilerOptionsPaths(dec *json.Decoder) []models.PathsEntry {
	if !expectDelim(dec, '{') {
		return nil
	}
	for dec.More() {
		key, ok := nextKey(dec)
		if !ok {
			return nil
		}
		if key != "paths" {
			if skipValue(dec) != nil {
				return nil
			}
			continue
		}
		return pathsEntries(dec)
	}
	return nil
}

func pathsEntries(dec *json.Decoder) []models.PathsEntry {
	if !expectDelim(dec, '{') {
		// paths is not an object: no usable aliases.
		return nil
	}

	var entries []models.PathsEntry
	for dec.More() {
		alias, ok := nextKey(dec)
		if !ok {
			return entries
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return entries
		}

		var values []interface{}
		if err := json.Unmarshal(raw, &values); err != nil {
			// Non-array declaration, dropped.
			continue
		}

		entry := models.PathsEntry{Alias: alias}
		for _, value := range values {
			if s, ok := value.(string); ok {
				entry.Targets = append(entry.Targets, s)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func expectDelim(dec *json.Decoder, want json.Delim) bool {
	tok, err := dec.Token()
	if err != nil {
		return false
	}
	delim, ok := tok.(json.Delim)
	return ok && delim == want
}

func nextKey(dec *json.Decoder) (string, bool) {
	tok, err := dec.Token()
	if err != nil {
		return "", false
	}
	key, ok := tok.(string)
	return key, ok
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
