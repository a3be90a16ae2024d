package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rustyeddy/binopt/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate, validate, or inspect configuration files",
	Long: `Manage configuration files for trading sessions.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file
  show     - Print the resolved session parameters

Examples:
  binopt config init --output my-config.yml
  binopt config validate --file my-config.yml
  binopt config show --file my-config.yml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with default settings.

Example:
  binopt config init --output config.yml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check if a configuration file is valid and can be loaded.

Example:
  binopt config validate --file config.yml`,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved session parameters",
	Long: `Load a configuration file and print the session parameters it resolves
to, with defaults filled in for the optional keys. A missing file shows the
built-in defaults, matching what binopt run would use.

Example:
  binopt config show --file config.yml`,
	RunE: runConfigShow,
}

var (
	configInitOutput   string
	configValidatePath string
	configShowPath     string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "config.yml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
	configShowCmd.Flags().StringVarP(&configShowPath, "file", "f", "config.yml", "path to config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  binopt run --config %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
	printConfig(cfg)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configShowPath)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("No config at %s, showing defaults\n", configShowPath)
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	printConfig(cfg)
	return nil
}

func printConfig(cfg *config.Config) {
	sc := cfg.SessionConfig()
	fmt.Printf("  Balance: $%.2f (Risk: %.1f%% per trade)\n", sc.InitialBalance, sc.RiskPercent)
	fmt.Printf("  Payout: %.0f%%\n", sc.PayoutPercent)
	fmt.Printf("  Stops: %.0f%% drawdown or %d consecutive losses\n", sc.StopLossPercent, sc.MaxConsecutiveLosses)
	if jc := cfg.Journal; jc != nil {
		dest := jc.Path
		if jc.Type == config.JournalCSV {
			dest = jc.Dir
		}
		fmt.Printf("  Journal: %s (%s)\n", jc.Type, dest)
	} else {
		fmt.Println("  Journal: disabled")
	}
}
