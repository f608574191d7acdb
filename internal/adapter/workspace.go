package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/tjx666/abracadabra/internal/model"
)

//nolint:gochecknoglobals // The supported language surface is fixed.
var sourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

// Workspace resolves the files a batch command operates on. Roots may be
// single files, directories, or directories with a `/...` suffix for a
// recursive walk. Paths matching an ignore pattern are skipped.
type Workspace struct {
	ignores []glob.Glob
}

// NewWorkspace compiles the ignore patterns. Patterns match against any
// path segment, so "node_modules" ignores the tree at every depth.
func NewWorkspace(ignorePatterns []string) (*Workspace, error) {
	ignores := make([]glob.Glob, 0, len(ignorePatterns))

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}

		ignores = append(ignores, g)
	}

	return &Workspace{ignores: ignores}, nil
}

// Resolve expands roots into the sorted, deduplicated list of source files.
func (w *Workspace) Resolve(roots []model.Path) ([]model.Path, error) {
	seen := make(map[string]struct{})

	var files []model.Path

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			w.collect(rootPath, seen, &files)
			continue
		}

		err = w.walk(rootPath, recursive, func(path string) {
			w.collect(path, seen, &files)
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func (w *Workspace) collect(path string, seen map[string]struct{}, files *[]model.Path) {
	if !sourceExtensions[filepath.Ext(path)] || w.ignored(path, false) {
		return
	}

	if _, exists := seen[path]; exists {
		return
	}

	seen[path] = struct{}{}
	*files = append(*files, model.Path(path))
}

func (w *Workspace) walk(root string, recursive bool, visit func(path string)) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && (w.ignored(path, true) || !recursive) {
				return filepath.SkipDir
			}

			return nil
		}

		visit(path)

		return nil
	})
}

// ignored reports whether the path matches an ignore pattern. Patterns are
// tested against the full slash path and against each segment, so both
// "**/node_modules/**" and a bare "node_modules" work. Directories get a
// trailing slash so path globs ending in "/**" match them too.
func (w *Workspace) ignored(path string, isDir bool) bool {
	candidate := filepath.ToSlash(path)
	if isDir {
		candidate += "/"
	}

	for _, g := range w.ignores {
		if g.Match(candidate) {
			return true
		}

		for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
			if g.Match(segment) {
				return true
			}
		}
	}

	return false
}

func normalizeRootPath(root string) (path string, recursive bool, err error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
