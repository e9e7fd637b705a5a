package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/kamal-hamza/mx-cli/internal/core/domain"
	"github.com/kamal-hamza/mx-cli/pkg/ui"
)

// errCancelled is returned when the user closes the picker
var errCancelled = errors.New("operation cancelled")

// resolveItem turns a command argument into an item path.
// An existing path is used as is; otherwise the argument is matched against
// item names in the library. With no argument, or several matches, the user
// picks one with the fuzzy finder.
func resolveItem(ctx context.Context, arg string) (string, error) {
	if arg != "" {
		if _, err := os.Stat(arg); err == nil {
			return arg, nil
		}
	}

	items, err := itemService.List(ctx, appLibrary.ItemsPath)
	if err != nil {
		return "", err
	}

	candidates := items
	if arg != "" {
		candidates = matchItems(items, arg)
	}

	switch len(candidates) {
	case 0:
		if arg == "" {
			return "", fmt.Errorf("library is empty, save an item first")
		}
		return "", fmt.Errorf("no item matching %q", arg)
	case 1:
		return candidates[0].Dir, nil
	}

	item, err := pickItem(candidates)
	if err != nil {
		return "", err
	}
	return item.Dir, nil
}

// matchItems returns exact name matches, falling back to substring matches
func matchItems(items []domain.Item, query string) []domain.Item {
	var exact, partial []domain.Item
	q := strings.ToLower(query)
	for _, it := range items {
		name := strings.ToLower(it.Name)
		switch {
		case name == q:
			exact = append(exact, it)
		case strings.Contains(name, q):
			partial = append(partial, it)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return partial
}

// pickItem launches the fuzzy finder over items
func pickItem(items []domain.Item) (domain.Item, error) {
	idx, err := fuzzyfinder.Find(
		items,
		func(i int) string {
			it := items[i]
			rel, err := filepath.Rel(appLibrary.ItemsPath, it.Dir)
			if err != nil {
				rel = it.Dir
			}
			return fmt.Sprintf("%s  %s  %s", it.Name, it.Kind.Name, rel)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return itemPreview(items[i])
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return domain.Item{}, errCancelled
		}
		return domain.Item{}, err
	}
	return items[idx], nil
}

// itemPreview renders the picker preview for one item
func itemPreview(it domain.Item) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("Name: %s\n", it.Name))
	s.WriteString(fmt.Sprintf("Kind: %s\n", it.Kind.Name))
	s.WriteString(fmt.Sprintf("Scene: %s\n", it.MayaFilename))
	s.WriteString(fmt.Sprintf("Format: %s\n", it.FileType))
	s.WriteString(fmt.Sprintf("Objects: %d\n", it.ObjectCount))
	if it.Description != "" {
		s.WriteString(fmt.Sprintf("\n%s\n", it.Description))
	}
	return s.String()
}

// splitList splits comma separated flag values, dropping blanks
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseHostOptions parses key=value pairs passed with --option.
// Values are typed as bool, int, float or string, in that order.
func parseHostOptions(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	opts := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q, expected key=value", pair)
		}
		opts[key] = parseOptionValue(strings.TrimSpace(value))
	}
	return opts, nil
}

func parseOptionValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// printHostHint explains how to reach Maya when a host call fails
func printHostHint(err error) {
	var hostErr *domain.HostOperationError
	if errors.As(err, &hostErr) {
		fmt.Println(ui.FormatMuted("Is Maya running with a python commandPort on " + sceneHostAddress() + "?"))
	}
}

func sceneHostAddress() string {
	if addressFlag != "" {
		return addressFlag
	}
	return appConfig.HostAddress
}
