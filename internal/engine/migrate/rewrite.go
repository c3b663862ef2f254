// Package migrate rewrites persisted controller identifiers in UXML documents
// to the canonical namespace-qualified encoding.
package migrate

import (
	"bytes"
	"regexp"

	"go.trai.ch/ulink/internal/core/domain"
)

var controllerAttr = regexp.MustCompile(`(?:^|\s)controller-type\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// Change is one identifier rewritten in a document.
type Change struct {
	Line int
	From string
	To   string
}

// Issue is an identifier that could not be canonicalized and was left as is.
type Issue struct {
	Line       int
	Identifier string
	Err        error
}

// Result is the outcome of rewriting one document.
type Result struct {
	Content []byte
	Changes []Change
	Issues  []Issue
}

// Changed reports whether the document content differs from the input.
func (r *Result) Changed() bool {
	return len(r.Changes) > 0
}

// Rewrite canonicalizes every controller-type attribute value in doc.
// Empty values and values already canonical are left untouched.
func Rewrite(doc []byte, controllers []domain.CandidateType) Result {
	matches := controllerAttr.FindAllSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return Result{Content: doc}
	}

	var (
		out    bytes.Buffer
		result Result
		last   int
	)
	out.Grow(len(doc))

	for _, m := range matches {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}

		raw := string(doc[start:end])
		ref := domain.ParseControllerRef(raw)
		if ref.IsCanonical() {
			continue
		}

		line := bytes.Count(doc[:start], []byte("\n")) + 1

		canonical, err := ref.Canonicalize(controllers)
		if err != nil {
			result.Issues = append(result.Issues, Issue{Line: line, Identifier: raw, Err: err})
			continue
		}
		if canonical == raw {
			continue
		}

		out.Write(doc[last:start])
		out.WriteString(canonical)
		last = end

		result.Changes = append(result.Changes, Change{Line: line, From: raw, To: canonical})
	}

	if len(result.Changes) == 0 {
		result.Content = doc
		return result
	}

	out.Write(doc[last:])
	result.Content = out.Bytes()
	return result
}
