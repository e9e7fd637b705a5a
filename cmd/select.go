package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

var selectNamespaces []string

// selectCmd represents the select command
var selectCmd = &cobra.Command{
	Use:   "select [item]",
	Short: "Select an item's objects in Maya",
	Long: `Select the objects recorded in an item's descriptor, replacing the current
selection. With --namespace every object is selected inside each namespace.

Examples:
  mx select chair
  mx select chair --namespace chair000,chair001`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().StringSliceVarP(&selectNamespaces, "namespace", "n", nil, "Namespaces to select in (comma separated)")
}

func runSelect(cmd *cobra.Command, args []string) error {
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

	if err := itemService.Select(ctx, itemPath, splitList(selectNamespaces)); err != nil {
		fmt.Println(ui.FormatError("Failed to select objects"))
		printHostHint(err)
		return err
	}

	fmt.Println(ui.FormatSuccess("Selected objects of " + itemPath))
	return nil
}
