package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/dscope"
)

// Schema constrains interpreter config files.
const Schema = `
tape?: {
	prealloc?: int & >=1
}
trace?: bool
`

var configPaths = cmds.Collect[string]("-config")

func init() {
	cmds.Define("-config-usage", cmds.Func(func() {
		os.Stderr.WriteString("config schema:\n")
		os.Stderr.WriteString(Schema)
		os.Exit(0)
	}).Desc("print the config file schema"))
}

type Module struct {
	dscope.Module
}

func (Module) Loader() Loader {
	var paths []string

	if dir, err := os.UserConfigDir(); err == nil {
		defaultPath := filepath.Join(dir, "bf", "config.cue")
		if _, err := os.Stat(defaultPath); err == nil {
			paths = append(paths, defaultPath)
		}
	}

	paths = append(paths, *configPaths...)

	return NewLoader(paths, Schema)
}
