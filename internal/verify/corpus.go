package verify

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/txtar"
)

// Case is one corpus fixture: a named source file plus the expectations
// embedded in it. Archives that bundle more than one file (e.g. a module
// and a dependency it imports) surface every ".silt" file as a Source;
// expectations are collected from all of them.
type Case struct {
	Name    string
	Sources map[string]string // archive file name -> contents
}

// LoadCorpus reads every ".txt" txtar archive in dir and returns one Case
// per archive, named after the archive's file stem — the same "bundle
// related fixtures in one text archive" idiom golang.org/x/tools/txtar is
// used for elsewhere in the ecosystem's own golden-file tests.
func LoadCorpus(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus dir %s: %w", dir, err)
	}

	var cases []Case
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		arc := txtar.Parse(data)
		c := Case{
			Name:    entry.Name()[:len(entry.Name())-len(".txt")],
			Sources: make(map[string]string, len(arc.Files)),
		}
		for _, f := range arc.Files {
			c.Sources[f.Name] = string(f.Data)
		}
		cases = append(cases, c)
	}
	return cases, nil
}
