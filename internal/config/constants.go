package config

// SourceFileExt is the canonical extension for Cobalt source files. The
// lexer that turns them into tokens lives outside this module.
const SourceFileExt = ".co"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".co", ".cobalt"}

// Flags is threaded through every parser entry point and sub-call but is
// not consulted by the parser itself today — see the design notes on the
// Flags struct being "plumbed but unread". It exists for future syntactic
// extensions (e.g. future dialect toggles) and for callers, who interpret
// ErrorCap/WarningsAsErrors on their own; the parser always collects every
// diagnostic regardless of these fields.
type Flags struct {
	ErrorCap         int
	WarningsAsErrors bool

	// CacheDir, when non-empty, names a directory the caller wants
	// translation-unit results recorded into. The parser never reads this
	// field; it exists so it travels alongside ErrorCap/WarningsAsErrors to
	// callers that build an internal/unitcache.Recorder from the same Flags
	// value used to drive Parse.
	CacheDir string
}
