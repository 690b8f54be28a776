package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.scnd.dev/open/flaskgen/command/flaskgen/procedure/blueprint"
)

type Options struct {
	Verbose bool
	Out     io.Writer
}

// Result summarizes a completed emission.
type Result struct {
	Root        string
	Directories int
	Files       int
}

// Emit writes the blueprint under base/<name> in two passes: every
// directory first, then every file in phase order. Directory creation is
// idempotent and file writes are full overwrites. The first failure aborts
// the run and leaves the tree partially written.
func Emit(base string, bp *blueprint.Blueprint, options *Options) (*Result, error) {
	if options == nil {
		options = &Options{}
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	root := filepath.Join(base, bp.Name)
	fmt.Fprintf(out, "Generating Flask project: %s\n\n", bp.Name)

	// * create directory structure
	fmt.Fprintln(out, "Creating directories...")
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("unable to create directory %s: %w", root, err)
	}
	for _, dir := range bp.Directories {
		path := filepath.Join(root, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("unable to create directory %s: %w", path, err)
		}
	}

	result := &Result{
		Root:        root,
		Directories: len(bp.Directories),
	}

	// * write files phase by phase
	for _, phase := range bp.Phases {
		fmt.Fprintf(out, "%s...\n", phase.Label)
		for _, file := range phase.Files {
			path := filepath.Join(root, file.Path)
			if err := os.WriteFile(path, file.Body, 0644); err != nil {
				return nil, fmt.Errorf("unable to write file %s: %w", path, err)
			}
			if options.Verbose {
				fmt.Fprintf(out, "  wrote %s\n", file.Path)
			}
			result.Files++
		}
	}

	return result, nil
}
