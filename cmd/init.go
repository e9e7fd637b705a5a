package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/pkg/config"
	"github.com/kamal-hamza/mx-cli/pkg/library"
	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the mx library",
	Long: `Initialize the mx library directory structure.

This creates the managed library at ~/.local/share/mx/ with the following structure:
  - items/      : Saved items (<name>.model/, <name>.mayafile/)
  - logs/       : mx.log
  - config.yaml : Global configuration (in ~/.config/mx/)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	lib, err := library.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine library location"))
		return err
	}

	if lib.Exists() {
		fmt.Println(ui.FormatWarning("Library already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + lib.RootPath))
		return nil
	}

	fmt.Println(ui.FormatInfo("Initializing mx library..."))
	fmt.Println()

	if err := lib.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize library"))
		return err
	}

	if err := createDefaultConfig(lib); err != nil {
		// Don't fail - config is optional
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
	} else {
		fmt.Println(ui.FormatSuccess("Config created"))
	}

	fmt.Println(ui.FormatSuccess("Library initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", lib.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", lib.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. In Maya: cmds.commandPort(name=\":7001\", sourceType=\"python\")"))
	fmt.Println(ui.FormatMuted("  2. Save the selection: mx save chair --objects chair_geo"))
	fmt.Println(ui.FormatMuted("  3. Reference it back: mx load chair"))

	return nil
}

// createDefaultConfig writes the default config unless one exists already
func createDefaultConfig(lib *library.Library) error {
	if _, err := os.Stat(lib.ConfigPath); err == nil {
		return nil
	}
	return config.DefaultConfig().Save(lib.ConfigPath)
}
