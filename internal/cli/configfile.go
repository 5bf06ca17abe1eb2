package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfigArgs reads the mlgrep config file and returns parsed
// arguments to prepend to the command line. Location:
// MLGREP_CONFIG_PATH env var, or ~/.mlgrep. Format: one flag per line,
// # comments and empty lines ignored. Returns nil if no file is found.
func LoadConfigArgs() []string {
	path := os.Getenv("MLGREP_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".mlgrep")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, line)
	}
	return args
}
