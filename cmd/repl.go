package cmd

import (
	"github.com/bmatsuo/subscheme/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive interpreter session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
