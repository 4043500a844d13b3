package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/ui/markdown"
)

var (
	keysWidth int
	keysStyle string
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the key reference",
	Long: `Print every key the editor understands, per mode, rendered as markdown.

Examples:
  quill keys
  quill keys --style notty | less`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := markdown.New(keysWidth, keysStyle)
		if err != nil {
			return err
		}
		out, err := r.Render(markdown.KeyReference(editor.Bindings()))
		if err != nil {
			return fmt.Errorf("rendering key reference: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	keysCmd.Flags().IntVar(&keysWidth, "width", 80, "word wrap width")
	keysCmd.Flags().StringVar(&keysStyle, "style", "", `glamour style ("dark", "light", "notty"; default: detect)`)
	rootCmd.AddCommand(keysCmd)
}
