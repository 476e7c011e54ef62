package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-ascii/internal/ascii"
	apperr "github.com/ironsheep/image-ascii/internal/errors"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	var first string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Rebuild ASCII art from run-length text",
		Long: `Decode run-length text (runs joined by '-', one row per line) back into
ASCII art. Reads stdin when no file is given.

The encoding does not record which symbol a row starts with, so --first
supplies it: one symbol for every row, or one symbol per row.`,
		Example: `  image-ascii decode art.rle
  printf '4-2\n6\n' | image-ascii decode --first '#.'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				text, err = io.ReadAll(cmd.InOrStdin())
			} else {
				text, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read run-length text: %w", err)
			}

			grid, err := decodeText(string(text), first, root)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("decoded", "rows", len(grid))
			fmt.Fprintln(cmd.OutOrStdout(), grid.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", string(ascii.DarkGlyph), "first symbol of each row (one for all rows, or one per row)")
	return cmd
}

func decodeText(text, first string, root *rootOptions) (ascii.Grid, error) {
	firsts := []rune(first)
	if len(firsts) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidRequest, "--first must not be empty")
	}

	conv, err := root.cfg.Conversion()
	if err != nil {
		return nil, err
	}
	alpha, err := conv.Alphabet()
	if err != nil {
		return nil, err
	}

	runs, err := ascii.ParseRLE(text)
	if err != nil {
		return nil, err
	}
	return ascii.DecodeRLE(runs, firsts, alpha)
}
