package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

var configEdit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the mx configuration",
	Long: `Show the effective mx configuration, or open the config file in $EDITOR.

Examples:
  mx config
  mx config --edit`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVarP(&configEdit, "edit", "e", false, "Open the config file in your editor")
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := appLibrary.ConfigPath

	if configEdit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := appConfig.Save(path); err != nil {
				return err
			}
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	}

	attrs := "(none)"
	if len(appConfig.SceneAttrs) > 0 {
		attrs = strings.Join(appConfig.SceneAttrs, ", ")
	}
	libraryPath := appConfig.LibraryPath
	if libraryPath == "" {
		libraryPath = appLibrary.RootPath + " (default)"
	}

	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println(ui.FormatMuted(path))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("host_address", appConfig.HostAddress))
	fmt.Println(ui.RenderKeyValue("host_timeout_seconds", strconv.Itoa(appConfig.HostTimeoutSeconds)))
	fmt.Println(ui.RenderKeyValue("library_path", libraryPath))
	fmt.Println(ui.RenderKeyValue("default_file_format", appConfig.DefaultFileFormat))
	fmt.Println(ui.RenderKeyValue("default_load_type", appConfig.DefaultLoadType))
	fmt.Println(ui.RenderKeyValue("default_grouping", strconv.FormatBool(appConfig.DefaultGrouping)))
	fmt.Println(ui.RenderKeyValue("default_namespace", strconv.FormatBool(appConfig.DefaultNamespace)))
	fmt.Println(ui.RenderKeyValue("scene_attrs", attrs))
	fmt.Println(ui.RenderKeyValue("log_file", appConfig.LogFile))
	fmt.Println(ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
	return nil
}
