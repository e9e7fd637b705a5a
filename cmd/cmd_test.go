package cmd

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/internal/core/ports/mocks"
	"github.com/kamal-hamza/mx-cli/internal/core/services"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"init", "save", "load", "select", "info", "list", "formats", "config", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Fatalf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "mx" {
		t.Errorf("Expected root command Use to be 'mx', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}

	for _, flag := range []string{"debug", "address"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestLoadFlagDefaults verifies load defaults follow the domain defaults
func TestLoadFlagDefaults(t *testing.T) {
	for name, want := range map[string]string{
		"grouping":  "true",
		"namespace": "true",
	} {
		f := loadCmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("load has no --%s flag", name)
		}
		if f.DefValue != want {
			t.Errorf("--%s default = %s, want %s", name, f.DefValue, want)
		}
	}
}

// TestServiceInitialization verifies services can be initialized with mocks
func TestServiceInitialization(t *testing.T) {
	host := mocks.NewMockSceneHost()
	store := mocks.NewMockDescriptorStore()

	s := services.NewSession(host, store, nil, []string{"visibility"})
	if s == nil {
		t.Fatal("Session is nil")
	}
	if services.NewItemService(s) == nil {
		t.Error("ItemService is nil")
	}
	if s.Cache(domain.ModelKind) == s.Cache(domain.MayaFileKind) {
		t.Error("each kind should have its own cache")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a, b", "", "c,,", " d "})
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList = %v, want %v", got, want)
	}
	if splitList(nil) != nil {
		t.Error("splitList(nil) should be nil")
	}
}

func TestParseHostOptions(t *testing.T) {
	opts, err := parseHostOptions([]string{
		"loadReferenceDepth=none",
		"mergeNamespacesOnClash=False",
		"depth=2",
		"scale=0.5",
	})
	if err != nil {
		t.Fatalf("parseHostOptions failed: %v", err)
	}

	want := map[string]any{
		"loadReferenceDepth":     "none",
		"mergeNamespacesOnClash": false,
		"depth":                  2,
		"scale":                  0.5,
	}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("parseHostOptions = %#v, want %#v", opts, want)
	}

	if _, err := parseHostOptions([]string{"novalue"}); err == nil {
		t.Error("expected error for missing '='")
	}
	if _, err := parseHostOptions([]string{"=x"}); err == nil {
		t.Error("expected error for empty key")
	}
	if opts, err := parseHostOptions(nil); err != nil || opts != nil {
		t.Errorf("parseHostOptions(nil) = %v, %v", opts, err)
	}
}

func TestMatchItems(t *testing.T) {
	items := []domain.Item{
		{Name: "chair", Dir: filepath.Join("lib", "chair.model")},
		{Name: "chair_v002", Dir: filepath.Join("lib", "chair_v002.model")},
		{Name: "armchair", Dir: filepath.Join("lib", "armchair.model")},
		{Name: "table", Dir: filepath.Join("lib", "table.model")},
	}

	if got := matchItems(items, "Chair"); len(got) != 1 || got[0].Name != "chair" {
		t.Errorf("exact match should win, got %v", got)
	}
	if got := matchItems(items, "chai"); len(got) != 3 {
		t.Errorf("expected 3 partial matches, got %d", len(got))
	}
	if got := matchItems(items, "lamp"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
