package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

var infoCopy bool

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [item]",
	Short: "Show an item's descriptor",
	Long: `Show the metadata, objects and captured attributes of an item.

Examples:
  mx info chair
  mx info chair --copy   # copy the scene file path to the clipboard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVarP(&infoCopy, "copy", "c", false, "Copy the scene file path to the clipboard")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx, cancel := getContext()
	defer cancel()

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	itemPath, err := resolveItem(ctx, arg)
	if err != nil {
		if errors.Is(err, errCancelled) {
			fmt.Println(ui.FormatInfo("Operation cancelled."))
			return nil
		}
		return err
	}

	item, t, err := itemService.Info(ctx, itemPath)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatTitle(item.Name))
	fmt.Println(ui.FormatMuted(item.TransferPath()))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Kind", item.Kind.Name))
	fmt.Println(ui.RenderKeyValue("Scene", item.ScenePath()))

	for _, key := range t.MetadataKeys() {
		v, _ := t.Metadata(key)
		fmt.Println(ui.RenderKeyValue(key, fmt.Sprint(v)))
	}

	fmt.Println()
	fmt.Println(ui.StyleHeader.Render("Objects (" + strconv.Itoa(item.ObjectCount) + ")"))

	table := ui.NewTable([]ui.TableColumn{
		{Header: "OBJECT"},
		{Header: "ATTRIBUTE"},
		{Header: "TYPE"},
		{Header: "VALUE", MaxWidth: 40},
	})
	for _, name := range t.Objects() {
		attrs := t.Attrs(name)
		if attrs.Len() == 0 {
			table.AddRow([]string{name, "", "", ""})
			continue
		}
		for i, attr := range attrs.Keys() {
			data, _ := attrs.Get(attr)
			obj := name
			if i > 0 {
				obj = ""
			}
			table.AddRow([]string{obj, attr, data.Type, fmt.Sprint(data.Value)})
		}
	}
	fmt.Print(table.Render())

	if infoCopy {
		if err := clipboard.WriteAll(item.ScenePath()); err != nil {
			fmt.Println(ui.FormatMuted("(Clipboard access failed, please copy manually)"))
		} else {
			fmt.Println(ui.FormatSuccess("Scene path copied to clipboard"))
		}
	}

	return nil
}
