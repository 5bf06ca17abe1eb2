package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func collect(t *testing.T, roots []string, opts Options) []string {
	t.Helper()
	fileCh, errCh := Walk(roots, opts)
	go func() {
		for range errCh {
		}
	}()
	var paths []string
	for entry := range fileCh {
		paths = append(paths, entry.Path)
	}
	sort.Strings(paths)
	return paths
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, ".hidden"), "h")
	writeFile(t, filepath.Join(root, ".git", "config"), "g")
	writeFile(t, filepath.Join(root, "skipme", "c.txt"), "c")
	writeFile(t, filepath.Join(root, ".gitignore"), "skipme/\n")

	t.Run("default", func(t *testing.T) {
		got := collect(t, []string{root}, Options{})
		want := []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "sub", "b.txt"),
		}
		if len(got) != len(want) {
			t.Fatalf("Walk() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Walk()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("no ignore", func(t *testing.T) {
		got := collect(t, []string{root}, Options{NoIgnore: true})
		found := false
		for _, p := range got {
			if p == filepath.Join(root, "skipme", "c.txt") {
				found = true
			}
		}
		if !found {
			t.Errorf("NoIgnore should surface ignored files, got %v", got)
		}
	})

	t.Run("hidden", func(t *testing.T) {
		got := collect(t, []string{root}, Options{Hidden: true})
		foundHidden, foundGit := false, false
		for _, p := range got {
			if p == filepath.Join(root, ".hidden") {
				foundHidden = true
			}
			if p == filepath.Join(root, ".git", "config") {
				foundGit = true
			}
		}
		if !foundHidden {
			t.Errorf("Hidden should surface dotfiles, got %v", got)
		}
		if foundGit {
			t.Error(".git contents must stay skipped even with Hidden")
		}
	})

	t.Run("glob", func(t *testing.T) {
		writeFile(t, filepath.Join(root, "notes.md"), "m")
		got := collect(t, []string{root}, Options{Globs: []string{"*.md"}})
		if len(got) != 1 || got[0] != filepath.Join(root, "notes.md") {
			t.Errorf("glob filter: got %v, want just notes.md", got)
		}
	})

	t.Run("file root bypasses filters", func(t *testing.T) {
		target := filepath.Join(root, ".hidden")
		got := collect(t, []string{target}, Options{})
		if len(got) != 1 || got[0] != target {
			t.Errorf("Walk(file) = %v, want [%s]", got, target)
		}
	})

	t.Run("missing root reports error", func(t *testing.T) {
		fileCh, errCh := Walk([]string{filepath.Join(root, "nope")}, Options{})
		for range fileCh {
		}
		var errs []error
		for err := range errCh {
			errs = append(errs, err)
		}
		if len(errs) != 1 {
			t.Errorf("got %d errors, want 1", len(errs))
		}
	})
}

func TestNestedGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", ".gitignore"), "*.log\n")
	writeFile(t, filepath.Join(root, "sub", "keep.txt"), "k")
	writeFile(t, filepath.Join(root, "sub", "drop.log"), "d")
	writeFile(t, filepath.Join(root, "top.log"), "t")

	got := collect(t, []string{root}, Options{})
	for _, p := range got {
		if p == filepath.Join(root, "sub", "drop.log") {
			t.Error("nested .gitignore rule was not applied")
		}
	}
	foundKeep, foundTop := false, false
	for _, p := range got {
		if p == filepath.Join(root, "sub", "keep.txt") {
			foundKeep = true
		}
		if p == filepath.Join(root, "top.log") {
			foundTop = true
		}
	}
	if !foundKeep {
		t.Error("sub/keep.txt should be emitted")
	}
	if !foundTop {
		t.Error("top.log is outside the nested rule's directory and should be emitted")
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "text", data: []byte("hello\nworld\n"), want: false},
		{name: "empty", data: nil, want: false},
		{name: "nul byte", data: []byte{'a', 0, 'b'}, want: true},
		{name: "nul beyond probe", data: append(make([]byte, 0, 9000), append(bytesOf('x', 8500), 0)...), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestIsBinaryExtension(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "image.png", want: true},
		{name: "libfoo.so.1.2", want: true},
		{name: "archive.TAR", want: true},
		{name: "notes.txt", want: false},
		{name: "Makefile", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinaryExtension(tt.name); got != tt.want {
				t.Errorf("IsBinaryExtension(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
