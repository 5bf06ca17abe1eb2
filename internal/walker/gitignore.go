package walker

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreStack tracks .gitignore rules while descending into directories.
// Each layer corresponds to one directory; directories without a
// .gitignore push a nil parser to keep stack depth aligned.
type ignoreStack struct {
	layers []ignoreLayer
}

type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

func newIgnoreStack() *ignoreStack {
	return &ignoreStack{}
}

// push compiles dir's .gitignore, if any, onto the stack.
func (s *ignoreStack) push(dir string) {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		parser = nil
	}
	s.layers = append(s.layers, ignoreLayer{dir: dir, parser: parser})
}

func (s *ignoreStack) pop() {
	if len(s.layers) > 0 {
		s.layers = s.layers[:len(s.layers)-1]
	}
}

// isIgnored reports whether any active layer ignores the path. Each
// layer matches against the path relative to its own directory;
// directories are checked with a trailing slash, per gitignore rules.
func (s *ignoreStack) isIgnored(fullPath string, isDir bool) bool {
	for _, layer := range s.layers {
		if layer.parser == nil {
			continue
		}
		rel, err := filepath.Rel(layer.dir, fullPath)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if layer.parser.MatchesPath(rel) {
			return true
		}
	}
	return false
}
