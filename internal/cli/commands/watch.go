package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/silt-lang/silt/internal/bind"
	"github.com/silt-lang/silt/internal/cli/clictx"
	"github.com/silt-lang/silt/internal/diagnostic"
	"github.com/silt-lang/silt/internal/driver"
	"github.com/silt-lang/silt/pkg/syntax"
)

// NewWatchCommand builds "silt watch <dir>": watches a module source
// directory with github.com/fsnotify/fsnotify and re-scope-checks any
// changed ".silt" file, printing its diagnostics as soon as it changes.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and re-check .silt files on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0])
		},
	}
}

func runWatch(cmd *cobra.Command, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s for changes (ctrl-c to stop)\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".silt") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			checkFileOnChange(cmd, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

func checkFileOnChange(cmd *cobra.Command, path string) {
	src, err := readSource(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return
	}

	raw, conv, parseErrs := driver.Parse(path, src)
	for _, pe := range parseErrs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: syntax error: %s\n", path, pe.Error())
	}

	engine := diagnostic.NewEngineContext(cmd.Context())
	printer := diagnostic.NewPrinter(cmd.OutOrStdout(), clictx.Styles(cmd.Context()), conv, path)
	engine.Register(printer.Consumer())

	checker := bind.NewChecker(engine, conv)
	checker.CheckModule(syntax.Root(raw), nil)

	if !engine.HasErrors() && len(parseErrs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
}
