// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"reposeed/internal/config"
	"reposeed/internal/issue"

	"github.com/spf13/cobra"
)

var (
	// configCmd is the parent of the config subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage reposeed configuration",
		Long: `Manage reposeed configuration.

Configuration is stored in:
  - Linux: ~/.config/reposeed/config.cue
  - macOS: ~/Library/Application Support/reposeed/config.cue
  - Windows: %APPDATA%\reposeed\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), args[0], args[1])
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
}

// showConfig prints the effective configuration. It loads through a
// Provider rather than the package-level cache so the output reflects the
// same explicit inputs every time, including the --config override.
func showConfig(ctx context.Context) error {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssueCard(os.Stderr, issue.ConfigLoadFailedId)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	// Derive the config file path from the standard config directory since
	// the provider does not cache resolved paths.
	cfgPath := ""
	if cfgDir, dirErr := config.ConfigDir(); dirErr == nil {
		cfgPath = cfgDir + "/" + config.ConfigFileName + "." + config.ConfigFileExt
	}
	switch {
	case cfgFile != "":
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgFile)
	case cfgPath != "" && fileExistsCheck(cfgPath):
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	default:
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	// Show values
	fmt.Printf("%s: %s\n", keyStyle.Render("repository"), valueStyle.Render(string(cfg.Repository)))
	fmt.Printf("%s: %s\n", keyStyle.Render("layout"), valueStyle.Render(string(cfg.Layout)))
	fmt.Printf("%s: %s\n", keyStyle.Render("recursive"), valueStyle.Render(fmt.Sprintf("%v", cfg.Recursive)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfigFile() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s/config.cue\n", SuccessStyle.Render("✓"), cfgDir)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s/config.cue\n", cfgDir)
	return nil
}

func setConfigValue(ctx context.Context, key, value string) error {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return err
	}

	switch key {
	case "repository":
		cfg.Repository = config.RepositoryPath(value)

	case "layout":
		cfg.Layout = config.LayoutKind(value)

	case "recursive":
		cfg.Recursive = value == "true" || value == "1"

	case "ui.color_scheme":
		cfg.UI.ColorScheme = config.ColorScheme(value)

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: repository, layout, recursive, ui.color_scheme, ui.verbose", key)
	}

	// The typed values validate themselves; reject bad input before it
	// reaches the file.
	if ok, errs := cfg.IsValid(); !ok {
		return errs[0]
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
