package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"finishline/internal/config"
	"finishline/internal/log"
	"finishline/internal/querycache"
	"finishline/internal/race"
	"finishline/internal/ui/app"
	"finishline/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// the Bubble Tea program starts, so the terminal's OSC 11 response
	// cannot race with the input loop and leak into text fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "finishline",
	Short:   "A terminal ui for race finisher registration",
	Long:    `A terminal user interface for registering race finishers, ranking them by finish time and filtering results by time window.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/finishline/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to .finishline/debug.log")
	rootCmd.Flags().String("locale", "",
		"BCP 47 tag used for name casing (e.g. nb, tr)")

	// Bind flags to viper
	_ = viper.BindPFlag("locale", rootCmd.Flags().Lookup("locale"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("locale", defaults.Locale)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .finishline/config.yaml (current directory)
		// 2. ~/.config/finishline/config.yaml (user config)
		if _, err := os.Stat(".finishline/config.yaml"); err == nil {
			viper.SetConfigFile(".finishline/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "finishline"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .finishline/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".finishline/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if debug || os.Getenv("FINISHLINE_DEBUG") != "" {
		if err := os.MkdirAll(".finishline", 0o755); err == nil {
			if cleanup, err := log.Init(".finishline/debug.log"); err == nil {
				defer cleanup()
			}
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	tag, err := cfg.LanguageTag()
	if err != nil {
		tag = language.Und
	}
	log.Info(log.CatConfig, "configuration loaded", "locale", cfg.Locale, "config", viper.ConfigFileUsed())

	registry := race.NewRegistry(race.NewNameFormatter(tag))
	store := querycache.New(registry, querycache.DefaultExpiration, querycache.DefaultCleanupInterval)

	model := app.New(store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
