package cli

import (
	"github.com/spf13/cobra"

	apperr "github.com/ironsheep/image-ascii/internal/errors"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show image dimensions and format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return apperr.Wrap(apperr.ErrCodeDecode, err, "failed to read %s", args[0])
			}
			info, err := imaging.Info(data)
			if err != nil {
				return apperr.Wrap(apperr.ErrCodeDecode, err, "failed to read %s", args[0])
			}

			out := cmd.OutOrStdout()
			printKeyValue(out, "format", info.Format)
			printKeyValue(out, "size", number(info.Width)+" x "+number(info.Height))
			printDetail(out, "%d bytes", info.SizeBytes)
			return nil
		},
	}
}
