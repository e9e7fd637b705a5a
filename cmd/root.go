package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/internal/adapters/host"
	"github.com/kamal-hamza/mx-cli/internal/adapters/repository"
	"github.com/kamal-hamza/mx-cli/internal/core/services"
	"github.com/kamal-hamza/mx-cli/internal/log"
	"github.com/kamal-hamza/mx-cli/pkg/config"
	"github.com/kamal-hamza/mx-cli/pkg/library"
	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

var (
	// Global library and config
	appLibrary *library.Library
	appConfig  *config.Config
	appLogger  *log.Logger

	// Adapters
	sceneHost      *host.CommandPortHost
	descriptorRepo *repository.DescriptorRepository

	// Services
	session     *services.Session
	itemService *services.ItemService

	// Global flags
	debugFlag   bool
	addressFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mx",
	Short: "MX - Maya scene file library",
	Long: ui.StyleTitle.Render("MX") + " - Maya Scene File Library\n\n" +
		"Save selected objects from a running Maya session as library items and\n" +
		"bring them back as imports or references, each under its own namespace.\n" +
		"Maya must have a python commandPort open, for example:\n" +
		"  cmds.commandPort(name=\":7001\", sourceType=\"python\")",
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&addressFlag, "address", "", "Maya commandPort address (overrides host_address)")
}

// needsLibrary lists the commands that only run against an initialized library
var needsLibrary = map[string]bool{
	"save":   true,
	"load":   true,
	"select": true,
	"info":   true,
	"list":   true,
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Skip initialization for init and version
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	lib, err := library.New()
	if err != nil {
		return fmt.Errorf("failed to determine library location: %w", err)
	}

	cfg, err := config.Load(lib.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg
	ui.SetTheme(cfg.ColorTheme)

	if cfg.LibraryPath != "" {
		lib, err = library.NewAt(cfg.LibraryPath)
		if err != nil {
			return err
		}
	}
	appLibrary = lib

	if needsLibrary[cmd.Name()] && !appLibrary.Exists() {
		fmt.Println(ui.FormatError("Library not initialized"))
		fmt.Println(ui.FormatInfo("Run 'mx init' to initialize the library"))
		os.Exit(1)
	}

	logger, err := log.NewLogger(log.Options{
		Development: debugFlag,
		Debug:       debugFlag,
		OutputPath:  logOutput(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	appLogger = logger

	address := cfg.HostAddress
	if addressFlag != "" {
		address = addressFlag
	}

	// Initialize adapters
	sceneHost = host.NewCommandPortHost(address, cfg.HostTimeout(), appLogger)
	descriptorRepo = repository.NewOSDescriptorRepository()

	// Initialize services
	session = services.NewSession(sceneHost, descriptorRepo, appLogger, cfg.SceneAttrs)
	itemService = services.NewItemService(session)

	return nil
}

// shutdownApp closes the host connection and flushes logs
func shutdownApp(cmd *cobra.Command, args []string) error {
	if sceneHost != nil {
		sceneHost.Close()
	}
	if appLogger != nil {
		// Sync on stderr fails on some terminals; nothing to report
		_ = appLogger.Sync()
	}
	return nil
}

// logOutput picks the log destination: the configured file, stderr when debugging,
// otherwise the library log file
func logOutput() string {
	if appConfig.LogFile != "" {
		return appConfig.LogFile
	}
	if debugFlag {
		return "stderr"
	}
	if err := os.MkdirAll(appLibrary.LogsPath, 0755); err != nil {
		return "stderr"
	}
	return appLibrary.LogPath()
}

// getContext returns a context cancelled on interrupt
func getContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
