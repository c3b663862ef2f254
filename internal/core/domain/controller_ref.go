package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// RefEncoding describes how a persisted controller identifier is spelled.
type RefEncoding int

const (
	// RefEmpty means no controller.
	RefEmpty RefEncoding = iota
	// RefFullName is the canonical namespace-qualified encoding.
	RefFullName
	// RefAssemblyQualified carries assembly, version, culture and key token after the type name.
	RefAssemblyQualified
	// RefBareName is a simple type name without namespace.
	RefBareName
)

// ControllerRef is a parsed controller type identifier as stored by the property editor.
type ControllerRef struct {
	Raw      string
	TypeName string
	Encoding RefEncoding
}

// ParseControllerRef classifies a persisted identifier.
func ParseControllerRef(raw string) ControllerRef {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ControllerRef{Raw: raw, Encoding: RefEmpty}
	}

	if idx := topLevelComma(trimmed); idx >= 0 {
		return ControllerRef{
			Raw:      raw,
			TypeName: strings.TrimSpace(trimmed[:idx]),
			Encoding: RefAssemblyQualified,
		}
	}

	if strings.Contains(stripGenericArgs(trimmed), ".") {
		return ControllerRef{Raw: raw, TypeName: trimmed, Encoding: RefFullName}
	}
	return ControllerRef{Raw: raw, TypeName: trimmed, Encoding: RefBareName}
}

// IsCanonical reports whether the identifier needs no migration.
func (r ControllerRef) IsCanonical() bool {
	return r.Encoding == RefEmpty || (r.Encoding == RefFullName && r.Raw == r.TypeName)
}

// Canonicalize returns the canonical identifier, resolving bare names against the
// given controller types.
func (r ControllerRef) Canonicalize(controllers []CandidateType) (string, error) {
	switch r.Encoding {
	case RefEmpty:
		return r.Raw, nil
	case RefFullName, RefAssemblyQualified:
		return r.TypeName, nil
	}

	var matches []string
	for _, c := range controllers {
		if c.Name == r.TypeName {
			matches = append(matches, c.FullName)
		}
	}

	slices.Sort(matches)
	matches = slices.Compact(matches)

	switch len(matches) {
	case 0:
		return "", zerr.With(zerr.Wrap(ErrUnknownControllerRef, "cannot canonicalize identifier"), "identifier", r.Raw)
	case 1:
		return matches[0], nil
	default:
		err := zerr.Wrap(ErrAmbiguousControllerRef, "cannot canonicalize identifier")
		err = zerr.With(err, "identifier", r.Raw)
		return "", zerr.With(err, "candidates", strings.Join(matches, ", "))
	}
}

// topLevelComma finds the first comma outside generic argument brackets.
func topLevelComma(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func stripGenericArgs(s string) string {
	if idx := strings.IndexByte(s, '['); idx >= 0 {
		return s[:idx]
	}
	return s
}
