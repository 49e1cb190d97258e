package rtconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/realtype/cmds"
	"github.com/reusee/realtype/configs"
	"github.com/reusee/realtype/logs"
	"github.com/reusee/realtype/modes"
)

//go:embed schema.cue
var Schema string

var configFlags = cmds.Collect[string]("-config", "add a config file")

var filenames = []string{
	"realtype.cue",
	".realtype.cue",
}

// ConfigFiles are the explicit config file paths.
// When empty, files are discovered in well known directories, except under test modes.
type ConfigFiles []string

func (Module) ConfigFiles() ConfigFiles {
	return ConfigFiles(*configFlags)
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	files ConfigFiles,
	mode modes.Mode,
) configs.Loader {

	paths := []string(files)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if len(paths) > 0 || mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, Schema)
	}

	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, Schema)
}
