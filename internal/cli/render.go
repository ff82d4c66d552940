package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/figlayout/internal/layout"
	"github.com/piwi3910/figlayout/internal/render"
	"github.com/piwi3910/figlayout/internal/style"
)

// Demo grid geometry, in figure fractions.
const (
	gridMargin  = 0.08
	gridSpacing = 0.06
)

// panelAdder is the part of a figure backend the grid builder needs.
type panelAdder interface {
	AddPanel(x, y, w, h float64, label string)
}

// newRenderCmd renders a labeled demo grid figure to a PDF or PNG file.
func newRenderCmd() *cobra.Command {
	var (
		styleName string
		columns   float64
		rows      int
		cols      int
		dpi       float64
		out       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a labeled demo figure",
		Long:  `Render computes the figure size for the chosen style, builds a demo grid of panels labeled A, B, C, ..., places the labels in the style's conventions, and writes the result. The output format follows the file extension: .pdf or .png.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := style.Load(styleName)
			if err != nil {
				return err
			}
			for _, w := range cfg.Warnings {
				logger.Warn(w)
			}

			eng := layout.New(cfg, nil)
			w, h, err := eng.ComputeFigsize(layout.SizeRequest{
				Columns:      layout.Float64(columns),
				PixelDensity: dpi,
			})
			if err != nil {
				return err
			}
			logger.Debug("computed figsize", "width_in", w, "height_in", h)

			switch strings.ToLower(filepath.Ext(out)) {
			case ".pdf":
				fig := render.NewPDFFigure(w, h)
				fig.SetProvenance(cfg.Name)
				buildGrid(fig, rows, cols)
				if err := eng.PlaceLabels(fig, layout.PlaceOptions{}); err != nil {
					return err
				}
				if err := fig.Save(out); err != nil {
					return err
				}
			case ".png":
				fig := render.NewRasterFigure(w, h, dpi)
				buildGrid(fig, rows, cols)
				if err := eng.PlaceLabels(fig, layout.PlaceOptions{}); err != nil {
					return err
				}
				if err := fig.SavePNG(out); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output format %q (use .pdf or .png)", filepath.Ext(out))
			}

			logger.Info("figure written", "path", out, "panels", rows*cols)
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", style.DefaultName, "style name or path to a .yml style file")
	cmd.Flags().Float64VarP(&columns, "columns", "c", 1, "figure width in text columns")
	cmd.Flags().IntVar(&rows, "rows", 2, "demo grid rows")
	cmd.Flags().IntVar(&cols, "cols", 2, "demo grid columns")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "pixel density for raster output (default 100)")
	cmd.Flags().StringVarP(&out, "out", "o", "figure.pdf", "output file (.pdf or .png)")
	return cmd
}

// buildGrid fills the figure with a rows x cols grid of labeled panels.
func buildGrid(fig panelAdder, rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	panelW := (1 - 2*gridMargin - float64(cols-1)*gridSpacing) / float64(cols)
	panelH := (1 - 2*gridMargin - float64(rows-1)*gridSpacing) / float64(rows)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := gridMargin + float64(c)*(panelW+gridSpacing)
			// Row 0 is the top row; panel origins are bottom-left.
			y := 1 - gridMargin - float64(r)*(panelH+gridSpacing) - panelH
			fig.AddPanel(x, y, panelW, panelH, panelLabel(r*cols+c))
		}
	}
}

// panelLabel yields A..Z then AA, AB, ... for larger grids.
func panelLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return string(rune('A'+i/26-1)) + string(rune('A'+i%26))
}
