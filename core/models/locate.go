package models

import "fmt"

// ParseErrorCode classifies a syntax error in a project config file.
type ParseErrorCode int

const (
	InvalidSymbol ParseErrorCode = iota + 1
	PropertyNameExpected
	ValueExpected
	EndOfFileExpected
)

func (c ParseErrorCode) String() string {
	switch c {
	case InvalidSymbol:
		return "InvalidSymbol"
	case PropertyNameExpected:
		return "PropertyNameExpected"
	case ValueExpected:
		return "ValueExpected"
	case EndOfFileExpected:
		return "EndOfFileExpected"
	default:
		return "Unknown"
	}
}

// ParseError is one structured syntax error inside a config file.
type ParseError struct {
	Offset int
	Length int
	Code   ParseErrorCode
}

func (e ParseError) String() string {
	return fmt.Sprintf("%s at offset %d", e.Code, e.Offset)
}

// LocateResult is the outcome of searching the candidate roots for a project
// configuration. Exactly one of the three variants below is returned so that
// callers stay exhaustive over the outcomes.
type LocateResult interface {
	locateResult()
}

// NotFound means no candidate root contained a config file.
type NotFound struct{}

// Malformed means a config file was found but could not be parsed. It is a
// reportable diagnostic, not an error: linting continues with other files.
type Malformed struct {
	Path   string
	Errors []ParseError
}

// Found carries the winning root and its parsed configuration.
type Found struct {
	Root   string
	Config *ProjectConfig
}

func (NotFound) locateResult()  {}
func (Malformed) locateResult() {}
func (Found) locateResult()     {}
