package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"TheoVia/internal/countdown"
	"TheoVia/web/components"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the landing page to a static HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := components.StaticView(countdown.NewPromo().String())

			var buf bytes.Buffer
			if err := components.Landing(view).Render(cmd.Context(), &buf); err != nil {
				return err
			}

			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", out, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "output file")
	return cmd
}
