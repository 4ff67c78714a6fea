package engine

import (
	"path/filepath"
	"strings"

	"github.com/lwaldron/repath/core/logger"
	"github.com/lwaldron/repath/core/models"
	"github.com/lwaldron/repath/core/normalizer"
	"github.com/lwaldron/repath/core/roots"
	"github.com/lwaldron/repath/core/tsconfig"
)

// Options are supplied once per rule invocation by the lint host.
type Options struct {
	// ProjectRoot holds the configured root globs; empty means "walk upward
	// from the file to the nearest package manifest".
	ProjectRoot []string

	// OnlyPathAliases restricts proposals to alias-qualified forms.
	OnlyPathAliases bool

	// OnlyAbsoluteImports restricts proposals to base-relative forms.
	OnlyAbsoluteImports bool
}

type ResultKind int

const (
	KindProposal ResultKind = iota
	KindMalformedConfig
)

// Result is what the engine hands back to the lint host: either a proposed
// replacement for the import literal, or a malformed-configuration
// diagnostic to surface to the user.
type Result struct {
	Kind        ResultKind
	Original    string
	Replacement string
	ConfigPath  string
	ParseErrors []models.ParseError
}

// Engine checks import literals against the project's path configuration.
// It is safe to share one Engine across every file of a run; all mutable
// state lives in the global caches.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Check inspects one import occurrence. rawLiteral is the literal token as
// written, including its quote character. A nil result with a nil error
// means the import is acceptable as-is (or the rule is inapplicable here).
func (e *Engine) Check(filePath, rawLiteral string) (*Result, error) {
	quote, spec := splitQuote(rawLiteral)
	if !isRelative(spec) {
		return nil, nil
	}

	fileDir := filepath.Dir(filePath)
	target := filepath.Clean(filepath.Join(fileDir, spec))

	rootDirs, err := roots.Resolve(e.opts.ProjectRoot, fileDir)
	if err != nil {
		return nil, err
	}
	if len(rootDirs) == 0 {
		logger.Debug("No root candidates for %s", filePath)
		return nil, nil
	}

	located, err := tsconfig.Locate(rootDirs, filePath)
	if err != nil {
		return nil, err
	}

	switch res := located.(type) {
	case models.Malformed:
		return &Result{
			Kind:        KindMalformedConfig,
			Original:    rawLiteral,
			ConfigPath:  res.Path,
			ParseErrors: res.Errors,
		}, nil

	case models.Found:
		cfg := res.Config
		if !cfg.HasBase {
			logger.Debug("Config %s declares no baseUrl", cfg.Path)
			return nil, nil
		}

		base := filepath.Join(cfg.Dir, cfg.BaseURL)
		table := models.BuildAliasTable(cfg.Paths)

		canonical, ok := normalizer.Normalize(target, base, table,
			e.opts.OnlyPathAliases, e.opts.OnlyAbsoluteImports)
		if !ok || canonical == spec {
			return nil, nil
		}

		replacement := canonical
		if quote != 0 {
			replacement = string(quote) + canonical + string(quote)
		}
		logger.Debug("Proposing %s -> %s in %s", spec, canonical, filePath)
		return &Result{
			Kind:        KindProposal,
			Original:    rawLiteral,
			Replacement: replacement,
		}, nil
	}

	return nil, nil
}

// splitQuote strips a surrounding quote character off the literal, returning
// it so a proposed replacement can keep the original quoting style.
func splitQuote(raw string) (byte, string) {
	if len(raw) >= 2 {
		first := raw[0]
		if (first == '\'' || first == '"' || first == '`') && raw[len(raw)-1] == first {
			return first, raw[1 : len(raw)-1]
		}
	}
	return 0, raw
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
