//go:build darwin || freebsd || linux

package dg

import (
	"runtime"

	"github.com/ebitengine/purego"
)

const searchPathEnv = "LD_LIBRARY_PATH"

func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libgo.dylib"
	}
	return "libgo.so"
}

func defaultCandidates() []string {
	if runtime.GOOS == "darwin" {
		return []string{"./libgo.dylib", "./libgo.so"}
	}
	return []string{"./libgo.so"}
}

func openLibrary(path string) (nativeAPI, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nativeAPI{}, err
	}

	api, err := bindAPI(func(name string) (uintptr, error) {
		return purego.Dlsym(handle, name)
	})
	if err != nil {
		_ = purego.Dlclose(handle)
		return nativeAPI{}, err
	}
	return api, nil
}
