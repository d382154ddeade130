package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/mailscout/internal/config"
	"github.com/sells-group/mailscout/internal/model"
)

var (
	cfg        *config.Config
	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "mailscout",
	Short: "Email discovery pipeline",
	Long:  "Finds, extracts, and validates business email addresses using an LLM for candidate generation, domain contact discovery for enrichment, and a deliverability vendor for validation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func printResult(result *model.PipelineResult) error {
	if outputJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	for _, addr := range result.Addresses {
		fmt.Println(addr)
	}
	fmt.Println()
	fmt.Println(result.Narrative)
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "emit the result as JSON")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
