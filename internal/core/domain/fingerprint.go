package domain

import (
	"hash/fnv"
	"strconv"
)

// Fingerprint hashes the ordered full names with FNV-1a 64 and returns the
// unsigned decimal form. Names are joined by '\n', so order matters.
func Fingerprint(names []string) string {
	h := fnv.New64a()
	for i, name := range names {
		if i > 0 {
			_, _ = h.Write([]byte{'\n'})
		}
		_, _ = h.Write([]byte(name))
	}
	return strconv.FormatUint(h.Sum64(), 10)
}
