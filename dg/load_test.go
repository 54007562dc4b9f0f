package dg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dream-go/godg/envconfig"
)

func TestOpenReturnsFirstLoadable(t *testing.T) {
	defer func() { dlopen = openLibrary }()

	var attempts []string
	dlopen = func(path string) (nativeAPI, error) {
		attempts = append(attempts, path)
		if path == "second.so" || path == "third.so" {
			return fakeAPI(4, 0, nil), nil
		}
		return nativeAPI{}, errors.New("cannot open shared object file")
	}

	lib, err := Open("first.so", "second.so", "third.so")
	require.NoError(t, err)
	assert.Equal(t, "second.so", lib.Path())
	assert.Equal(t, []string{"first.so", "second.so"}, attempts)
	assert.Equal(t, 4, lib.NumFeatures())
	assert.Equal(t, exampleLayout(4).size, lib.ExampleSize())
}

func TestOpenNoLoadableCandidate(t *testing.T) {
	defer func() { dlopen = openLibrary }()
	dlopen = func(path string) (nativeAPI, error) {
		return nativeAPI{}, errors.New("no such file")
	}

	lib, err := Open("missing.so", "also-missing.so")
	assert.Nil(t, lib)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.so")
	assert.Contains(t, err.Error(), "also-missing.so")
}

func TestMustOpenExitsWhenNothingLoads(t *testing.T) {
	defer func() {
		dlopen = openLibrary
		exit = os.Exit
	}()
	dlopen = func(path string) (nativeAPI, error) {
		return nativeAPI{}, errors.New("no such file")
	}

	var code int
	exit = func(c int) { code = c }

	lib := MustOpen()
	assert.Nil(t, lib)
	assert.Equal(t, 1, code)
}

func TestNumFeaturesQueriedOnce(t *testing.T) {
	calls := 0
	lib, err := newLibrary("stub", nativeAPI{
		getNumFeatures: func() int32 {
			calls++
			return 8
		},
	})
	require.NoError(t, err)

	for range 5 {
		assert.Equal(t, 8, lib.NumFeatures())
	}
	assert.Equal(t, 1, calls)
}

func TestNonPositiveFeatureCount(t *testing.T) {
	lib, err := newLibrary("stub", nativeAPI{getNumFeatures: func() int32 { return 0 }})
	assert.Nil(t, lib)
	require.Error(t, err)
}

func TestDiscoverExplicitLibrary(t *testing.T) {
	t.Cleanup(envconfig.LoadConfig)
	t.Setenv("DG_LIBRARY", "/opt/dream-go/libgo.so")
	envconfig.LoadConfig()

	assert.Equal(t, []string{"/opt/dream-go/libgo.so"}, Discover())
}

func TestDiscoverSearchOrder(t *testing.T) {
	t.Cleanup(envconfig.LoadConfig)
	t.Setenv("DG_LIBRARY", "")
	t.Setenv("DG_LIBRARY_PATH", "/opt/dream-go")
	t.Setenv(searchPathEnv, "/usr/local/lib")
	envconfig.LoadConfig()

	name := libraryName()
	want := []string{
		filepath.Join("/opt/dream-go", name),
		filepath.Join("/usr/local/lib", name),
	}
	want = append(want, defaultCandidates()...)
	assert.Equal(t, want, Discover())
}
