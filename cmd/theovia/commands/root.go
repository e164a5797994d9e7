package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "theovia",
		Short: "Landing page server for the TheoVia theology course",
	}

	root.AddCommand(serveCmd(), exportCmd())
	return root.Execute()
}
