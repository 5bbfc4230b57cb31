// Package source discovers and reads the plaintext documents a build
// indexes. It does not parse HTML or Markdown structure — each file's
// contents become one document's Body verbatim (spec's explicit
// non-goal); richer formats are expected to be pre-rendered to plaintext
// before being handed to statidx.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/statidx/statidx/internal/docmodel"
)

// Discover walks root and returns every regular file whose name matches
// one of patterns (shell glob patterns against the base name, e.g.
// "*.txt"). A nil or empty patterns matches every regular file.
func Discover(root string, patterns []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if len(patterns) > 0 && !matchesAny(d.Name(), patterns) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering documents under %s: %w", root, err)
	}
	return paths, nil
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Read loads path as a plaintext InputDocument. Title defaults to the
// file's base name with its extension stripped; callers that want a
// better title (e.g. a document's first heading) should override it after
// Read returns.
func Read(path string, stemAlgorithm docmodel.StemAlgorithm) (docmodel.InputDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return docmodel.InputDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	return docmodel.InputDocument{
		Title:         title,
		URL:           path,
		Body:          string(data),
		StemAlgorithm: stemAlgorithm,
	}, nil
}
