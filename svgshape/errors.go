package svgshape

import "fmt"

// ErrorMode determines how the converter reacts to markup features
// it does not handle: silently skip them, log a warning, or fail.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// InvalidInputError reports that the input markup does not resolve
// to a single root element. It is always fatal.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid markup input: " + e.Reason
}

// MalformedAttributeError reports a required numeric attribute that
// is absent or not a number. Defaulting it to zero would silently
// produce degenerate geometry, so it propagates to the caller.
type MalformedAttributeError struct {
	Tag   string
	Attr  string
	Value string
}

func (e MalformedAttributeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("element %s: missing required attribute %s", e.Tag, e.Attr)
	}
	return fmt.Sprintf("element %s: attribute %s has invalid value %q", e.Tag, e.Attr, e.Value)
}

// UnsupportedFeatureError reports a markup feature the converter does
// not implement. It is only returned in StrictErrorMode; the other
// modes record a diagnostic instead.
type UnsupportedFeatureError struct {
	Feature string
}

func (e UnsupportedFeatureError) Error() string {
	return "unsupported markup feature: " + e.Feature
}

// DiagnosticKind classifies a non-fatal conversion diagnostic.
type DiagnosticKind uint8

const (
	DiagUnsupportedElement DiagnosticKind = iota
	DiagUnsupportedTransform
	DiagUnsupportedStyleAttr
	DiagUnsupportedPathCommand
	DiagMalformedValue
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnsupportedElement:
		return "unsupported element"
	case DiagUnsupportedTransform:
		return "unsupported transform"
	case DiagUnsupportedStyleAttr:
		return "unsupported style attribute"
	case DiagUnsupportedPathCommand:
		return "unsupported path command"
	case DiagMalformedValue:
		return "malformed value"
	}
	return "unknown"
}

// Diagnostic is one non-fatal finding recorded during conversion.
// The converter collects them instead of printing, so callers decide
// on a reporting policy.
type Diagnostic struct {
	Kind   DiagnosticKind
	Detail string
}

func (d Diagnostic) String() string {
	return d.Kind.String() + ": " + d.Detail
}
