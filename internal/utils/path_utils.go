// Package utils holds small path-manipulation helpers shared by the CLI:
// turning a parsed import path into a candidate source file, and deriving
// a module's display name from its file path.
package utils

import (
	"path/filepath"
	"strings"

	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
)

// ResolveModulePath turns an import's dotted path into a candidate source
// file. A root-anchored path (a leading dot in source, Global) is joined
// under rootDir; everything else is joined under baseDir, the importing
// file's own directory. GroupSegment entries (reserved, never produced by
// the parser today) are skipped rather than expanded.
func ResolveModulePath(rootDir, baseDir string, path ast.CompoundDottedName) string {
	dir := baseDir
	if path.Global {
		dir = rootDir
	}
	var names []string
	for _, seg := range path.Segments {
		switch s := seg.(type) {
		case ast.IdentSegment:
			names = append(names, s.Name)
		case ast.GlobSegment:
			names = append(names, s.Pattern)
		}
	}
	return filepath.Join(dir, filepath.Join(names...)) + config.SourceFileExt
}

// ExtractModuleName derives a module name from a file path: the base
// filename with the source extension removed.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, config.SourceFileExt)
}

// GetModuleDir returns the directory context for a module path. If path
// points to a source file, returns the file's directory; otherwise path is
// assumed to already be a directory and is returned unchanged.
func GetModuleDir(path string) string {
	if strings.HasSuffix(path, config.SourceFileExt) {
		return filepath.Dir(path)
	}
	return path
}
