// mlgrep searches text files for a multiline pattern: a block of
// fragments, one per line, where spaces match any character. A match
// requires every fragment to start at the same column on consecutive
// lines, and no landscape character is reused across matches.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/mlgrep/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfg cli.Config
	var colorFlag string
	exitCode := 0

	root := &cobra.Command{
		Use:   "mlgrep -f pattern-file [flags] [landscape...]",
		Short: "search for a multiline pattern in text files",
		Long: `mlgrep locates a multiline pattern in text files. The pattern file
holds one fragment per line; spaces in a fragment match any single
character. A match places fragment i+1 directly below fragment i at the
same column, and characters consumed by one match are never reused by
another. With no landscape paths, mlgrep reads from stdin.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Paths = args
			switch colorFlag {
			case "always":
				cfg.Color = cli.ColorAlways
			case "never":
				cfg.Color = cli.ColorNever
			case "auto":
				cfg.Color = cli.ColorAuto
			default:
				return fmt.Errorf("invalid --color value %q (auto, always, never)", colorFlag)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			exitCode = cli.Run(cfg)
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&cfg.PatternFile, "pattern-file", "f", "", "file holding the multiline pattern (required)")
	flags.BoolVarP(&cfg.CountOnly, "count", "c", false, "print only the match count per landscape")
	flags.BoolVarP(&cfg.FilesOnly, "files-with-matches", "l", false, "print only names of landscapes with matches")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "search directories recursively")
	flags.BoolVarP(&cfg.ShowBlocks, "show", "s", false, "print the matched lines under each match position")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", true, "prefix shown lines with line numbers")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "emit JSON Lines output")
	flags.BoolVar(&cfg.PCRE, "pcre", false, "scan fragments with the PCRE backend")
	flags.BoolVar(&cfg.WatchMode, "watch", false, "re-run the search when a landscape changes")
	flags.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not honor .gitignore files")
	flags.BoolVar(&cfg.Hidden, "hidden", false, "include hidden files and directories")
	flags.StringSliceVarP(&cfg.Globs, "glob", "g", nil, "only search files whose name matches the glob")
	flags.IntVar(&cfg.Workers, "workers", 0, "number of search workers in recursive mode (0 = auto)")
	flags.Int64Var(&cfg.MmapThreshold, "mmap-threshold", 0, "file size in bytes above which mmap is used (0 = default)")
	flags.StringVar(&colorFlag, "color", "auto", "when to use color: auto, always, never")

	root.SetArgs(append(cli.LoadConfigArgs(), os.Args[1:]...))
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mlgrep:", err)
		return 2
	}
	return exitCode
}
