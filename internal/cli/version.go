package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("inkpad version %s\n", ink.Version)
		},
	}
}
