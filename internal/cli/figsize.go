package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/piwi3910/figlayout/internal/layout"
	"github.com/piwi3910/figlayout/internal/style"
)

// newFigsizeCmd computes figure dimensions for a style and layout intent.
func newFigsizeCmd() *cobra.Command {
	var (
		styleName string
		columns   float64
		widthProp float64
		height    float64
		aspect    float64
		dpi       float64
	)

	cmd := &cobra.Command{
		Use:   "figsize",
		Short: "Compute publication-compliant figure dimensions",
		Example: `  figlayout figsize --style nature --columns 1
  figlayout figsize --style nature --width 1.0 --height 1.0
  figlayout figsize --style ieee --columns 2 --aspect 1.778 --dpi 300`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := style.Load(styleName)
			if err != nil {
				return err
			}
			for _, w := range cfg.Warnings {
				logger.Warn(w)
			}

			req := layout.SizeRequest{AspectRatio: aspect, PixelDensity: dpi}
			if cmd.Flags().Changed("columns") {
				req.Columns = layout.Float64(columns)
			}
			if cmd.Flags().Changed("width") {
				req.WidthProportion = layout.Float64(widthProp)
			}
			if cmd.Flags().Changed("height") {
				req.Height = layout.Float64(height)
			}

			eng := layout.New(cfg, nil)
			w, h, err := eng.ComputeFigsize(req)
			if err != nil {
				return err
			}

			density := dpi
			if density == 0 {
				density = 100
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.3f x %.3f in (%d x %d px at %.0f dpi)\n",
				w, h, int(math.Round(w*density)), int(math.Round(h*density)), density)
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", style.DefaultName, "style name or path to a .yml style file")
	cmd.Flags().Float64VarP(&columns, "columns", "c", 0, "figure width in text columns")
	cmd.Flags().Float64VarP(&widthProp, "width", "w", 0, "figure width as a fraction of the page width [0,1]")
	cmd.Flags().Float64Var(&height, "height", 0, "height override: (0,1] fraction of page height, >1 absolute inches")
	cmd.Flags().Float64Var(&aspect, "aspect", 0, "width/height ratio when no height is given (default golden ratio)")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "device pixel density for the rounding step (default 100)")
	return cmd
}
