package dg

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/dream-go/godg/envconfig"
	"github.com/dream-go/godg/format"
)

// nativeAPI is the two-function surface this package calls into. Tests
// inject fakes through the dlopen hook below.
type nativeAPI struct {
	getNumFeatures       func() int32
	extractSingleExample func(sgf, out unsafe.Pointer) int32
}

var (
	dlopen = openLibrary
	exit   = os.Exit
)

// Library is a loaded handle to the native extractor. It is read-only after
// Open and is held for the process lifetime; no locking is needed to share
// it. Whether concurrent native calls are safe is the native library's
// contract, not this layer's.
type Library struct {
	path        string
	api         nativeAPI
	numFeatures int
	layout      layout
}

// Discover returns the ordered candidate paths for the extractor library.
// DG_LIBRARY, when set, is used alone. Otherwise the platform library name
// is searched in DG_LIBRARY_PATH, then the dynamic loader path
// (LD_LIBRARY_PATH or PATH), then the working directory.
func Discover() []string {
	if envconfig.Library != "" {
		return []string{envconfig.Library}
	}

	name := libraryName()
	var candidates []string
	for _, dir := range envconfig.LibraryPath {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	for _, dir := range filepath.SplitList(os.Getenv(searchPathEnv)) {
		if dir == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, name))
	}
	return append(candidates, defaultCandidates()...)
}

// Open loads the first candidate that can be opened, queries the feature
// count, and finalizes the example layout. With no arguments the Discover
// list is used. Load failures are logged per candidate and the next one is
// tried; if none load, an error naming every candidate is returned.
func Open(candidates ...string) (*Library, error) {
	if len(candidates) == 0 {
		candidates = Discover()
	}

	for _, path := range candidates {
		api, err := dlopen(path)
		if err != nil {
			slog.Debug("unable to load extractor library", "library", path, "error", err)
			continue
		}
		return newLibrary(path, api)
	}

	return nil, fmt.Errorf("no loadable extractor library among [%s]", strings.Join(candidates, " "))
}

// MustOpen opens the library from the discovered candidates and terminates
// the process when none load. A missing extractor library is an
// unrecoverable startup condition for hosts that call this.
func MustOpen() *Library {
	lib, err := Open()
	if err != nil {
		slog.Error("failed to load the shared library", "library", libraryName(), "error", err)
		exit(1)
		return nil
	}
	return lib
}

var defaultLibrary = sync.OnceValue(MustOpen)

// Default returns the process-wide library handle, loading it on first use
// and holding it until exit.
func Default() *Library {
	return defaultLibrary()
}

// NumFeatures reports the number of feature planes through the process-wide
// handle. See (*Library).NumFeatures.
func NumFeatures() int {
	return Default().NumFeatures()
}

// ExtractSingleExample extracts one record through the process-wide handle.
// See (*Library).ExtractSingleExample.
func ExtractSingleExample(sgf string) (*Example, error) {
	return Default().ExtractSingleExample(sgf)
}

func newLibrary(path string, api nativeAPI) (*Library, error) {
	// The feature count parameterizes the example layout, so it is queried
	// exactly once, before anything can allocate a buffer.
	n := int(api.getNumFeatures())
	if n <= 0 {
		return nil, fmt.Errorf("library %s reported %d feature planes", path, n)
	}

	lib := &Library{
		path:        path,
		api:         api,
		numFeatures: n,
		layout:      exampleLayout(n),
	}
	slog.Debug("extractor library loaded",
		"library", path,
		"features", n,
		"example_size", format.HumanBytes(int64(lib.layout.size)))
	return lib, nil
}

// Path returns the candidate that was loaded.
func (l *Library) Path() string {
	return l.path
}

// NumFeatures returns the number of feature planes the extractor produces.
// The native constant is queried once at load; repeated calls return the
// cached value.
func (l *Library) NumFeatures() int {
	return l.numFeatures
}

// ExampleSize returns the byte size of one native example buffer,
// 4*NumFeatures()*BoardPoints for the tensor plus the fixed trailer.
func (l *Library) ExampleSize() int {
	return l.layout.size
}
