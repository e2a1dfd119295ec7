// Command cobaltfront is a minimal CLI around the parser module, trimmed
// down from the host toolchain's full lex/parse/analyze/evaluate/VM
// pipeline: this one only parses. Input is a JSON-encoded []token.Token
// dump (lexing happens upstream, outside this module) and output is either
// a tree dump or a diagnostic listing.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/teris-io/cli"

	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/logging"
	"github.com/cobalt-lang/cobaltfront/internal/parser"
	"github.com/cobalt-lang/cobaltfront/internal/pipeline"
	"github.com/cobalt-lang/cobaltfront/internal/prettyprinter"
	"github.com/cobalt-lang/cobaltfront/internal/token"
	"github.com/cobalt-lang/cobaltfront/internal/unitcache"
	"github.com/cobalt-lang/cobaltfront/internal/utils"
)

const defaultWorkers = 4

var log = logging.Default()

// fileResult is what one worker produces for one input path.
type fileResult struct {
	path  string
	top   *ast.TopLevel
	diags []*diagnostics.Diagnostic
	err   error
}

func loadTokens(path string) ([]token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var toks []token.Token
	if err := json.Unmarshal(data, &toks); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toks, nil
}

// parseFiles fans paths out over a small bounded worker pool; each worker
// runs a one-stage pipeline.Pipeline over its own Context on its own
// disjoint token slice, so the parser's single-threaded contract is never
// shared across goroutines.
func parseFiles(paths []string, flags config.Flags, workers int) []fileResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan string, len(paths))
	results := make(chan fileResult, len(paths))
	var wg sync.WaitGroup
	stages := pipeline.New(parser.Processor{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				toks, err := loadTokens(path)
				if err != nil {
					results <- fileResult{path: path, err: err}
					continue
				}
				ctx := pipeline.NewContext(path, toks, flags)
				if err := stages.Run(ctx); err != nil {
					results <- fileResult{path: path, err: err}
					continue
				}
				results <- fileResult{path: path, top: ctx.AstRoot, diags: ctx.Errors}
			}
		}()
	}
	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() { wg.Wait(); close(results) }()

	byPath := make(map[string]fileResult, len(paths))
	for r := range results {
		byPath[r.path] = r
	}
	ordered := make([]fileResult, 0, len(paths))
	for _, p := range paths {
		ordered = append(ordered, byPath[p])
	}
	return ordered
}

func dumpTree(top *ast.TopLevel) string {
	p := prettyprinter.NewTreePrinter()
	top.Accept(p)
	return p.String()
}

// collectImports walks a file's top-level items (recursing into modules)
// and resolves each import to a candidate source file rooted at rootDir,
// relative to the importing file's own directory.
func collectImports(rootDir, filePath string, top *ast.TopLevel) []string {
	baseDir := utils.GetModuleDir(filePath)
	var out []string
	var walk func(items []ast.Statement)
	walk = func(items []ast.Statement) {
		for _, item := range items {
			switch it := item.(type) {
			case *ast.ImportStmt:
				out = append(out, utils.ResolveModulePath(rootDir, baseDir, it.Path))
			case *ast.ModuleDecl:
				walk(it.Body)
			}
		}
	}
	walk(top.Items)
	return out
}

func recorderFor(cacheDir string) (*unitcache.Recorder, error) {
	if cacheDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return unitcache.Open(filepath.Join(cacheDir, "cache.db"))
}

func runParse(args []string, options map[string]string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "cobaltfront parse: at least one token-dump file is required")
		return 1
	}

	flags := config.Flags{CacheDir: options["cache"]}

	rec, err := recorderFor(flags.CacheDir)
	if err != nil {
		log.Printf("cache disabled: %v", err)
	}
	if rec != nil {
		defer func() { _ = rec.Close() }()
	}

	results := parseFiles(args, flags, defaultWorkers)

	exitCode := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			exitCode = 1
			continue
		}

		if rec != nil {
			unit := unitcache.NewUnit(r.path)
			if err := rec.Record(unit, r.diags); err != nil {
				log.Printf("record %s: %v", r.path, err)
			}
		}

		if len(r.diags) > 0 {
			exitCode = 1
			for _, d := range r.diags {
				fmt.Fprintf(os.Stderr, "%s: %s\n", r.path, d.Error())
			}
			continue
		}

		if _, treeRequested := options["tree"]; treeRequested {
			fmt.Printf("%s:\n%s", r.path, dumpTree(r.top))
		}

		if rootDir, ok := options["root"]; ok {
			for _, imp := range collectImports(rootDir, r.path, r.top) {
				fmt.Printf("%s: import %s\n", r.path, imp)
			}
		}
	}
	return exitCode
}

var app = cli.New("Parses Cobalt token dumps and reports diagnostics or a tree dump.").
	WithArg(cli.NewArg("inputs", "JSON token-dump files (.cobalt.tok) to parse").
		AsOptional().WithType(cli.TypeString)).
	WithOption(cli.NewOption("tree", "Print a tree dump of each successfully parsed file").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("cache", "Cache directory for translation-unit diagnostics").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("root", "Project root for resolving import statements; prints resolved import paths").
		WithType(cli.TypeString)).
	WithAction(runParse)

func main() {
	os.Exit(app.Run(os.Args, os.Stdout))
}
