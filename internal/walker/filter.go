package walker

import (
	"bytes"
	"path/filepath"
	"strings"
)

// IsBinary reports whether data looks binary: a NUL byte within the
// first 8KB, matching GNU grep's probe.
func IsBinary(data []byte) bool {
	limit := 8192
	if len(data) < limit {
		limit = len(data)
	}
	return bytes.IndexByte(data[:limit], 0) >= 0
}

// IsBinaryExtension reports file extensions that are known binary
// formats, so those files are skipped without being opened. Versioned
// shared libraries ("libfoo.so.1.2") are handled too.
func IsBinaryExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := binaryExts[ext]; ok {
		return true
	}
	return strings.Contains(name, ".so.")
}

var binaryExts = map[string]struct{}{
	".so": {}, ".a": {}, ".o": {}, ".dll": {}, ".dylib": {}, ".exe": {},
	".bin": {}, ".elf": {}, ".class": {}, ".pyc": {}, ".wasm": {},
	".gz": {}, ".bz2": {}, ".xz": {}, ".zst": {}, ".zip": {}, ".tar": {},
	".7z": {}, ".rar": {}, ".jar": {}, ".deb": {}, ".rpm": {},
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {},
	".ico": {}, ".tiff": {}, ".webp": {},
	".mp3": {}, ".mp4": {}, ".ogg": {}, ".flac": {}, ".wav": {},
	".mkv": {}, ".webm": {}, ".avi": {}, ".mov": {},
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
	".db": {}, ".sqlite": {}, ".swp": {},
}

// matchGlobs reports whether name matches any of the globs. An empty
// glob list matches everything.
func matchGlobs(globs []string, name string) bool {
	if len(globs) == 0 {
		return true
	}
	for _, g := range globs {
		if ok, err := filepath.Match(g, name); err == nil && ok {
			return true
		}
	}
	return false
}
