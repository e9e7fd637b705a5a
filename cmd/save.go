package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/services"
	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

var (
	saveObjects []string
	saveFormat  string
	saveComment string
	saveKind    string
	saveFolder  string
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Export objects from Maya as a library item",
	Long: `Export objects from the running Maya session as a library item.

The objects are exported to <name>.mb (or .ma) inside <folder>/<name>.model/
next to a model.json descriptor holding the captured attributes.

Examples:
  mx save chair --objects chair_geo
  mx save shot010 --kind mayafile --objects cam,set --format mayaAscii
  mx save chair_v002 --folder props --objects chair_geo --comment "new legs"`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringSliceVarP(&saveObjects, "objects", "o", nil, "Objects to export (comma separated)")
	saveCmd.Flags().StringVarP(&saveFormat, "format", "f", "", "Scene file format (mayaBinary, mayaAscii)")
	saveCmd.Flags().StringVarP(&saveComment, "comment", "m", "", "Description stored with the item")
	saveCmd.Flags().StringVarP(&saveKind, "kind", "k", "model", "Item kind (model, mayafile)")
	saveCmd.Flags().StringVar(&saveFolder, "folder", "", "Folder inside the library, or an absolute path")
	saveCmd.MarkFlagRequired("objects")
}

func runSave(cmd *cobra.Command, args []string) error {
	kind, err := domain.KindByName(saveKind)
	if err != nil {
		return err
	}

	format := saveFormat
	if !cmd.Flags().Changed("format") {
		format = appConfig.DefaultFileFormat
	}

	ctx, cancel := getContext()
	defer cancel()

	objects := splitList(saveObjects)
	fmt.Println(ui.FormatInfo(fmt.Sprintf("Exporting %d object(s): %s", len(objects), strings.Join(objects, ", "))))

	item, err := itemService.Save(ctx, services.SaveItemRequest{
		Folder:   appLibrary.Folder(saveFolder),
		Name:     args[0],
		Kind:     kind,
		FileType: format,
		Comment:  saveComment,
		Objects:  objects,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to save item"))
		printHostHint(err)
		return err
	}

	fmt.Println(ui.FormatSuccess("Saved " + item.Name))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Item", item.Dir))
	fmt.Println(ui.RenderKeyValue("Scene", item.MayaFilename))
	fmt.Println(ui.RenderKeyValue("Format", item.FileType))
	return nil
}
