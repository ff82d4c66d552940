package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/figlayout/internal/export"
	"github.com/piwi3910/figlayout/internal/style"
)

// newStylesCmd lists the available styles and optionally exports the
// catalog to a spreadsheet.
func newStylesCmd() *cobra.Command {
	var (
		output     string
		exportPath string
		importPath string
	)

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List available figure styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if importPath != "" {
				names, err := style.ImportUserStyles(importPath)
				if err != nil {
					return err
				}
				logger.Info("styles imported", "path", importPath, "styles", len(names))
			}

			builtin := style.Available()
			user, err := style.UserStyles()
			if err != nil {
				return err
			}

			for _, name := range builtin {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			for _, name := range user {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (user)\n", name)
			}

			if exportPath != "" {
				if err := style.ExportUserStyles(exportPath); err != nil {
					return err
				}
				logger.Info("styles exported", "path", exportPath)
			}

			if output == "" {
				return nil
			}

			names := append(append([]string{}, builtin...), user...)
			configs := make([]*style.Config, 0, len(names))
			for _, name := range names {
				cfg, err := style.Load(name)
				if err != nil {
					return fmt.Errorf("load style %q: %w", name, err)
				}
				configs = append(configs, cfg)
			}
			if err := export.WriteCatalog(output, configs); err != nil {
				return err
			}
			logger.Info("catalog written", "path", output, "styles", len(configs))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the catalog to an xlsx file")
	cmd.Flags().StringVar(&exportPath, "export", "", "export user styles to a JSON archive")
	cmd.Flags().StringVar(&importPath, "import", "", "import user styles from a JSON archive")
	return cmd
}
