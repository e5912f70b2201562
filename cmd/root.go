package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roomdesk",
		Short: "Hotel room inventory and reservation desk",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newBookCmd())
	root.AddCommand(newCancelCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newShellCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
