package main

import (
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract and validate addresses buried in arbitrary text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		p, err := initPipeline()
		if err != nil {
			return err
		}

		return printResult(p.ExtractFromText(cmd.Context(), text))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
