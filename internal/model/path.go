// Package model defines the data structures shared across the commit gate.
package model

import "path/filepath"

// Path represents a file system path. Paths produced by the change-set
// resolver are relative to the repository root; the snapshot workspace root
// is absolute.
type Path string

func (p Path) String() string {
	return string(p)
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	parts := append([]string{string(p)}, elem...)
	return Path(filepath.Join(parts...))
}
