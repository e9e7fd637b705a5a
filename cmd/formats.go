package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

// formatsCmd represents the formats command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported scene file formats and item kinds",
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("Scene file formats"))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "FORMAT"},
		{Header: "EXTENSION"},
		{Header: ""},
	})
	for _, f := range domain.FileFormats() {
		note := ""
		if f == domain.DefaultFileFormat {
			note = "default"
		}
		table.AddRow([]string{f.String(), f.Extension(), note})
	}
	fmt.Print(table.Render())

	fmt.Println()
	fmt.Println(ui.FormatTitle("Item kinds"))
	fmt.Println()

	kinds := ui.NewTable([]ui.TableColumn{
		{Header: "KIND"},
		{Header: "DIRECTORY"},
		{Header: "DESCRIPTOR"},
	})
	for _, k := range domain.Kinds() {
		kinds.AddRow([]string{k.Name, "<name>" + k.Extension, k.TransferBasename})
	}
	fmt.Print(kinds.Render())
}
