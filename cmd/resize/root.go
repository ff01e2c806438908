package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/vatsal3003/image-resize/internal/config"
	"github.com/vatsal3003/image-resize/internal/resize"
	"github.com/vatsal3003/image-resize/pkg/models"
)

func newRootCommand(logger *log.Logger) *cobra.Command {
	var (
		cfg     *config.Config
		width   int
		height  int
		scale   float64
		filter  string
		quality int
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "resize [flags] SOURCE [TARGET]",
		Short: "Resize a single image by width/height or by scale",
		Long: `Resize a single image file.

Pass --scale to multiply both sides by one factor, or --width and/or --height
to set them directly. A missing side is derived from the source aspect ratio.
Without TARGET the result is written next to SOURCE as NAME__WxH.EXT, where
WxH are the source dimensions.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.NewResizeRequest(args[0], "")
			if len(args) == 2 {
				req.TargetPath = args[1]
			}

			flags := cmd.Flags()
			if flags.Changed("width") {
				req = req.WithWidth(width)
			}
			if flags.Changed("height") {
				req = req.WithHeight(height)
			}
			if flags.Changed("scale") {
				req = req.WithScale(scale)
			}

			// Reject bad arguments before the codec is even configured.
			if err := resize.ValidateRequest(req); err != nil {
				return err
			}

			opts := cfg.CodecOptions()
			if flags.Changed("filter") {
				opts.Filter = filter
			}
			if flags.Changed("quality") {
				opts.JPEGQuality = quality
			}

			codec, err := resize.NewImagingCodec(opts)
			if err != nil {
				return err
			}

			processor := resize.NewImageProcessor(codec, cfg.ProportionTolerance, logger)
			res, err := processor.Process(req)
			if err != nil {
				return err
			}

			if !quiet {
				logger.Printf("INFO resized %s (%s) to %s (%s)", req.SourcePath, res.SourceSize, res.TargetPath, res.TargetSize)
			}
			return nil
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.IntVar(&width, "width", 0, "target width in pixels")
	flags.IntVar(&height, "height", 0, "target height in pixels")
	flags.Float64Var(&scale, "scale", 0, "scale factor applied to both sides")
	flags.StringVar(&filter, "filter", defaults.Filter, "resample filter (lanczos, catmullrom, linear, box, nearest, ...)")
	flags.IntVar(&quality, "quality", defaults.JPEGQuality, "JPEG output quality, 1-100")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only print warnings and errors")

	return cmd
}
