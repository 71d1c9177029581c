package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomeedit/tome/internal/document"
	"github.com/tomeedit/tome/internal/encoding"
)

type convertFlags struct {
	to  string
	bom bool
}

func newConvertCommand(root *rootFlags) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert -to ENCODING FILE",
		Short: "Re-encode a file in place",
		Long: `Load a file, change its encoding through the attribute layer and save it
back. The BOM flag is only honored for Unicode charsets.

Examples:
  tome convert -to UTF-16LE -bom notes.txt
  tome convert -to ISO-8859-1 legacy.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.to, "to", "", "target charset name")
	cmd.Flags().BoolVar(&flags.bom, "bom", false, "write a byte-order mark")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, path string, root *rootFlags, flags *convertFlags) error {
	if !encoding.CharsetSupported(flags.to) {
		return fmt.Errorf("unsupported charset %q", flags.to)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	m := document.NewManager(cfg)

	doc, err := m.Open(path, false, nil, "")
	if err != nil {
		return err
	}
	from, fromBOM := doc.Charset, doc.HasBOM

	doc.SetEncoding(flags.to)
	if cmd.Flags().Changed("bom") {
		doc.SetBOM(flags.bom)
	}
	if err := m.Save(doc, true); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s%s -> %s%s\n",
		path, from, bomSuffix(fromBOM), doc.Charset, bomSuffix(doc.HasBOM))
	return nil
}

func bomSuffix(bom bool) string {
	if bom {
		return "+BOM"
	}
	return ""
}
