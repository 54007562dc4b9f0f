package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// Set via DG_DEBUG in the environment
	Debug bool
	// Set via DG_LIBRARY in the environment
	Library string
	// Set via DG_LIBRARY_PATH in the environment
	LibraryPath []string
	// Set via DG_NUM_PARALLEL in the environment
	NumParallel int
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"DG_DEBUG":        {"DG_DEBUG", Debug, "Show additional debug information (e.g. DG_DEBUG=1)"},
		"DG_LIBRARY":      {"DG_LIBRARY", Library, "Exact path to the extractor library, skipping discovery"},
		"DG_LIBRARY_PATH": {"DG_LIBRARY_PATH", LibraryPath, "Extra directories to search for the extractor library"},
		"DG_NUM_PARALLEL": {"DG_NUM_PARALLEL", NumParallel, "Number of extraction workers (default one per CPU)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

func LogLevel() slog.Level {
	if Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	// defaults, so a reload starts clean
	Debug = false
	Library = ""
	LibraryPath = nil
	NumParallel = 0

	if debug := clean("DG_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	Library = clean("DG_LIBRARY")

	if dirs := clean("DG_LIBRARY_PATH"); dirs != "" {
		LibraryPath = filepath.SplitList(dirs)
	}

	if np := clean("DG_NUM_PARALLEL"); np != "" {
		n, err := strconv.Atoi(np)
		if err == nil && n >= 0 {
			NumParallel = n
		}
	}
}
