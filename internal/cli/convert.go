package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-ascii/internal/ascii"
	apperr "github.com/ironsheep/image-ascii/internal/errors"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

type convertOptions struct {
	rows   string
	cols   string
	rle    bool
	json   bool
	crop   string
	output string
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Render an image as ASCII art",
		Long: `Convert an image file to a rows x cols grid of '#' and '.' characters.

Use "-" as the file to read the image from stdin. By default the grid is
printed; --rle prints the run-length encoding instead and --json prints both.`,
		Example: `  image-ascii convert photo.png --rows 20 --cols 40
  image-ascii convert photo.png --rows 20 --cols 40 --rle
  cat photo.png | image-ascii convert - --rows 10 --cols 10 --json
  image-ascii convert photo.png --rows 8 --cols 8 --crop 0,0,64,64 -o crop.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.rows, "rows", "", "number of output rows (required)")
	cmd.Flags().StringVar(&opts.cols, "cols", "", "number of output columns (required)")
	cmd.Flags().BoolVar(&opts.rle, "rle", false, "print the run-length encoding instead of the grid")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the grid and encoding as JSON")
	cmd.Flags().StringVar(&opts.crop, "crop", "", "crop region x1,y1,x2,y2 applied before downsampling")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("rle", "json")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")

	return cmd
}

func runConvert(cmd *cobra.Command, root *rootOptions, opts *convertOptions, path string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	conv, err := root.cfg.Conversion()
	if err != nil {
		return err
	}

	rows, err := ascii.ParseDimension("rows", opts.rows, conv.MaxDimension)
	if err != nil {
		return err
	}
	cols, err := ascii.ParseDimension("cols", opts.cols, conv.MaxDimension)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeDecode, err, "failed to read %s", path)
	}
	logger.Debug("read image", "path", path, "bytes", len(data))

	var res *ascii.Result
	if opts.crop == "" {
		res, err = ascii.Convert(data, rows, cols, conv)
	} else {
		res, err = convertRegion(data, opts.crop, rows, cols, conv)
	}
	if err != nil {
		return err
	}

	text, err := formatResult(res, opts)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		printSuccess(cmd.OutOrStdout(), "Wrote %s", opts.output)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}

	prog.done(fmt.Sprintf("Converted %s to %dx%d", path, rows, cols))
	return nil
}

// convertRegion decodes data, crops it to the x1,y1,x2,y2 region and converts
// the crop.
func convertRegion(data []byte, region string, rows, cols int, conv ascii.Config) (*ascii.Result, error) {
	r, err := parseRegion(region)
	if err != nil {
		return nil, err
	}

	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeDecode, err, "failed to decode image")
	}
	cropped, err := imaging.Crop(img, r)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidRequest, err, "invalid --crop")
	}
	return ascii.ConvertImage(cropped, rows, cols, conv)
}

// parseRegion parses "x1,y1,x2,y2".
func parseRegion(s string) (imaging.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return imaging.Region{}, apperr.New(apperr.ErrCodeInvalidRequest,
			"--crop must be x1,y1,x2,y2, got %q", s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Region{}, apperr.Wrap(apperr.ErrCodeInvalidRequest, err,
				"--crop coordinate %d is not an integer", i+1)
		}
		v[i] = n
	}
	return imaging.Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func formatResult(res *ascii.Result, opts *convertOptions) (string, error) {
	switch {
	case opts.json:
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case opts.rle:
		return res.RLE, nil
	default:
		return res.ASCII, nil
	}
}

// readInput reads path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return imaging.LoadFile(path)
}
