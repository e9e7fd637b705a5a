package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

var listKind string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list [folder]",
	Short:   "List library items",
	Aliases: []string{"ls"},
	Long: `List the items in the library, or in one folder of it.

Examples:
  mx list
  mx list props
  mx list --kind mayafile`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", "", "Only list items of this kind (model, mayafile)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := getContext()
	defer cancel()

	var folder string
	if len(args) > 0 {
		folder = args[0]
	}
	root := appLibrary.Folder(folder)

	var kind *domain.AssetKind
	if listKind != "" {
		k, err := domain.KindByName(listKind)
		if err != nil {
			return err
		}
		kind = &k
	}

	items, err := itemService.List(ctx, root)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list items"))
		return err
	}

	if kind != nil {
		filtered := items[:0]
		for _, it := range items {
			if it.Kind.Name == kind.Name {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if len(items) == 0 {
		fmt.Println(ui.FormatInfo("No items found"))
		fmt.Println(ui.FormatMuted("Save one with: mx save <name> --objects <obj>"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: ""},
		{Header: "NAME"},
		{Header: "FOLDER"},
		{Header: "SCENE"},
		{Header: "OBJECTS", Align: ui.AlignRight},
		{Header: "DESCRIPTION", MaxWidth: 40},
	})
	for _, it := range items {
		rel, err := filepath.Rel(root, filepath.Dir(it.Dir))
		if err != nil || rel == "." {
			rel = ""
		}
		table.AddRow([]string{
			ui.KindIcon(it.Kind.Name),
			it.Name,
			rel,
			it.MayaFilename,
			strconv.Itoa(it.ObjectCount),
			strings.ReplaceAll(it.Description, "\n", " "),
		})
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Items (%d)", len(items))))
	fmt.Println()
	fmt.Print(table.Render())
	return nil
}
