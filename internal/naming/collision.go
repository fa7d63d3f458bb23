package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks which input file owns each output path. Two
// inputs can map to the same output (a.mp3 and a.flac both become a.wav);
// the first claimant keeps the plain name and later ones get a numbered
// "_dupN" stem suffix. All methods are goroutine-safe.
type CollisionResolver struct {
	mu     sync.Mutex
	owners map[string]string // output path → owning input path
	next   map[string]int    // contested output path → next free number
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners: make(map[string]string),
		next:   make(map[string]int),
	}
}

// Resolve returns the final output path for input. An unclaimed output (or
// one already owned by input) is returned as-is; a contested one gets the
// lowest free "_dupN" variant.
func (cr *CollisionResolver) Resolve(input, requestedOutput string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if owner, ok := cr.owners[requestedOutput]; !ok || owner == input {
		cr.owners[requestedOutput] = input
		return requestedOutput
	}

	ext := filepath.Ext(requestedOutput)
	stem := strings.TrimSuffix(requestedOutput, ext)

	n := cr.next[requestedOutput]
	if n == 0 {
		n = 1
	}
	for {
		candidate := fmt.Sprintf("%s_dup%d%s", stem, n, ext)
		if owner, ok := cr.owners[candidate]; !ok || owner == input {
			cr.next[requestedOutput] = n + 1
			cr.owners[candidate] = input
			return candidate
		}
		n++
	}
}
