package main

import (
	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains [text]",
	Short: "Discover contact addresses for domains mentioned in text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		p, err := initPipeline()
		if err != nil {
			return err
		}

		return printResult(p.GenerateFromDomains(cmd.Context(), text))
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
