// Package registry serves type and unit queries from a host registry snapshot.
package registry

import (
	"slices"
	"strings"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Registry = (*Registry)(nil)

// MaxAncestorDepth bounds base chain construction.
const MaxAncestorDepth = 64

// Registry is an in-memory index over one snapshot.
type Registry struct {
	units        map[string]string
	byMarker     map[string][]domain.CandidateType
	byCapability map[string][]domain.CandidateType
}

// New indexes the given units (name to definition file) and types. Ancestor
// chains are derived from Base for entries that do not carry one.
func New(units map[string]string, types []domain.CandidateType) (*Registry, error) {
	byName := make(map[string]domain.CandidateType, len(types))
	for _, t := range types {
		if t.FullName == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTypeEntry, "invalid registry"), "unit", t.Unit)
		}
		if _, ok := byName[t.FullName]; !ok {
			byName[t.FullName] = t
		}
	}

	r := &Registry{
		units:        make(map[string]string, len(units)),
		byMarker:     make(map[string][]domain.CandidateType),
		byCapability: make(map[string][]domain.CandidateType),
	}
	for name, def := range units {
		r.units[name] = def
	}

	for _, t := range types {
		if t.Name == "" {
			t.Name = simpleName(t.FullName, t.Namespace)
		}
		if t.Kind == "" {
			t.Kind = domain.KindClass
		}
		if len(t.Ancestors) == 0 {
			ancestors, err := ancestorsOf(t, byName)
			if err != nil {
				return nil, err
			}
			t.Ancestors = ancestors
		}
		for _, m := range t.Markers {
			r.byMarker[m] = append(r.byMarker[m], t)
		}
		for _, c := range t.Capabilities {
			r.byCapability[c] = append(r.byCapability[c], t)
		}
	}

	return r, nil
}

// TypesWithMarker returns every type carrying the given marker annotation.
func (r *Registry) TypesWithMarker(marker string) []domain.CandidateType {
	return slices.Clone(r.byMarker[marker])
}

// TypesImplementing returns every type declaring the given capability.
func (r *Registry) TypesImplementing(capability string) []domain.CandidateType {
	return slices.Clone(r.byCapability[capability])
}

// Units returns the sorted names of units that have a definition file.
func (r *Registry) Units() []string {
	names := make([]string, 0, len(r.units))
	for name, def := range r.units {
		if def != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// DefinitionFile returns the definition file of the unit.
func (r *Registry) DefinitionFile(unit string) (string, error) {
	def := r.units[unit]
	if def == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrNoDefinitionFile, "lookup failed"), "unit", unit)
	}
	return def, nil
}

// ancestorsOf walks Base links until the root sentinel or a type outside the
// snapshot. Cycles and overlong chains are rejected.
func ancestorsOf(t domain.CandidateType, byName map[string]domain.CandidateType) ([]string, error) {
	var ancestors []string
	seen := map[string]bool{t.FullName: true}

	base := t.Base
	for base != "" && base != domain.RootSentinel {
		if seen[base] || len(ancestors) >= MaxAncestorDepth {
			return nil, zerr.With(zerr.Wrap(domain.ErrAncestorChainTooDeep, "invalid registry"), "type", t.FullName)
		}
		seen[base] = true
		ancestors = append(ancestors, base)

		next, ok := byName[base]
		if !ok {
			break
		}
		if len(next.Ancestors) > 0 {
			for _, a := range next.Ancestors {
				if a == domain.RootSentinel {
					break
				}
				ancestors = append(ancestors, a)
			}
			break
		}
		base = next.Base
	}

	return ancestors, nil
}

func simpleName(fullName, namespace string) string {
	if namespace != "" {
		if rest, ok := strings.CutPrefix(fullName, namespace+"."); ok {
			return rest
		}
	}
	if idx := strings.LastIndexByte(fullName, '.'); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}
