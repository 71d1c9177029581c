package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomeedit/tome/internal/buffer"
	"github.com/tomeedit/tome/internal/document"
	"github.com/tomeedit/tome/internal/search"
)

type grepFlags struct {
	ignoreCase bool
	regex      bool
	word       bool
}

func newGrepCommand(root *rootFlags) *cobra.Command {
	flags := &grepFlags{}

	cmd := &cobra.Command{
		Use:   "grep PATTERN FILE...",
		Short: "Search file contents with the editor's search engine",
		Long: `Search files for a pattern, printing matching lines as path:line:text.
Files pass through the same load pipeline as the editor, so searches see
decoded text regardless of the on-disk charset.

Examples:
  tome grep TODO main.go
  tome grep -i -re 'func\s+\w+' *.go`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrep(cmd, args[0], args[1:], root, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "case-insensitive match")
	cmd.Flags().BoolVar(&flags.regex, "re", false, "treat the pattern as a regular expression")
	cmd.Flags().BoolVarP(&flags.word, "word", "w", false, "match whole words only")

	return cmd
}

func runGrep(cmd *cobra.Command, pattern string, paths []string, root *rootFlags, flags *grepFlags) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	m := document.NewManager(cfg)

	var fl buffer.FindFlags
	if !flags.ignoreCase {
		fl |= buffer.MatchCase
	}
	if flags.regex {
		fl |= buffer.Regex
	}
	if flags.word {
		fl |= buffer.WholeWord
	}

	out := cmd.OutOrStdout()
	docs, err := m.OpenFiles(paths, true, nil, "")
	for _, doc := range docs {
		buf := doc.Buf
		pos := 0
		for {
			r, ok := search.FindNext(buf, pattern, fl, pos, search.WrapNever, nil)
			if !ok {
				break
			}
			line := buf.LineFromPosition(r.Start)
			lineText := buf.TextRange(buffer.Range{
				Start: buf.PositionFromLine(line),
				End:   buf.LineEndPosition(line),
			})
			fmt.Fprintf(out, "%s:%d:%s\n", doc.DisplayPath, line+1, lineText)

			// One hit per line.
			if line+1 >= buf.LineCount() {
				break
			}
			pos = buf.PositionFromLine(line + 1)
		}
	}
	return err
}
