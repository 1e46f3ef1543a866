// Package corpus loads the single text that a search server indexes.
//
// Its only contract with [github.com/AntonChernev/suffix-tree-search/internal/suffixtree]
// is handing it a complete string before construction begins; it has no
// further role once the server has started.
package corpus

import (
	"fmt"
	"os"
)

// Load reads the complete contents of path and returns it as a string
// suitable for [suffixtree.Build]. It is the caller's responsibility to call
// Load exactly once, before building the tree; corpus has no notion of
// reloading or watching the file for changes.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("corpus: reading %s: %w", path, err)
	}
	return string(data), nil
}
