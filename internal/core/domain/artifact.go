package domain

import "strings"

// RootGroup holds the ordered types assigned to one output root.
type RootGroup struct {
	Root  string
	Types []CandidateType
}

// FullNames returns the full names of the group's types in order.
func (g RootGroup) FullNames() []string {
	names := make([]string, len(g.Types))
	for i, t := range g.Types {
		names[i] = t.FullName
	}
	return names
}

// Section is the slice of an artifact generated for one marker kind.
type Section struct {
	Kind  MarkerKind
	Types []CandidateType
}

// GeneratedArtifact is the rendered output for one root.
type GeneratedArtifact struct {
	Root        string
	Path        string
	Text        string
	Fingerprint string
}

// RootPlan is the scanning result for one root, before rendering.
type RootPlan struct {
	Root     string
	Sections []Section
}

// FullNames returns every full name in render order across sections.
func (p RootPlan) FullNames() []string {
	var names []string
	for _, s := range p.Sections {
		for _, t := range s.Types {
			names = append(names, t.FullName)
		}
	}
	return names
}

// NormalizeLineEndings converts CRLF and lone CR to LF.
func NormalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
