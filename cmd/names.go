package main

import (
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names [text]",
	Short: "Guess plausible addresses for person names mentioned in text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		p, err := initPipeline()
		if err != nil {
			return err
		}

		return printResult(p.GenerateFromNames(cmd.Context(), text))
	},
}

func init() {
	rootCmd.AddCommand(namesCmd)
}
