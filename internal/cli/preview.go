package cli

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/spf13/cobra"

	"github.com/piwi3910/figlayout/internal/layout"
	"github.com/piwi3910/figlayout/internal/render"
	"github.com/piwi3910/figlayout/internal/style"
)

// newPreviewCmd shows the rendered demo figure in a window, sized to the
// computed pixel dimensions.
func newPreviewCmd() *cobra.Command {
	var (
		styleName string
		columns   float64
		rows      int
		cols      int
		dpi       float64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a labeled demo figure in a window",
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

			fig := render.NewRasterFigure(w, h, dpi)
			buildGrid(fig, rows, cols)
			if err := eng.PlaceLabels(fig, layout.PlaceOptions{}); err != nil {
				return err
			}

			pw, ph := fig.PixelSize()
			logger.Debug("previewing figure", "style", cfg.Name, "px_w", pw, "px_h", ph)

			application := app.New()
			window := application.NewWindow("figlayout: " + cfg.Name)
			img := canvas.NewImageFromImage(fig.Image())
			img.FillMode = canvas.ImageFillContain
			window.SetContent(img)
			window.Resize(fyne.NewSize(float32(pw), float32(ph)))
			window.CenterOnScreen()
			window.ShowAndRun()
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleName, "style", "s", style.DefaultName, "style name or path to a .yml style file")
	cmd.Flags().Float64VarP(&columns, "columns", "c", 1, "figure width in text columns")
	cmd.Flags().IntVar(&rows, "rows", 2, "demo grid rows")
	cmd.Flags().IntVar(&cols, "cols", 2, "demo grid columns")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "pixel density (default 100)")
	return cmd
}
