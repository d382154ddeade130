package main

import (
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

// readInput joins the positional args, falling back to stdin so large text
// blocks can be piped in.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", eris.Wrap(err, "read stdin")
	}
	return string(data), nil
}

var findCmd = &cobra.Command{
	Use:   "find [criteria]",
	Short: "Find validated addresses for companies matching search criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := readInput(args)
		if err != nil {
			return err
		}

		p, err := initPipeline()
		if err != nil {
			return err
		}

		return printResult(p.FindByCriteria(cmd.Context(), criteria))
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
