package dg

import (
	"golang.org/x/sys/windows"
)

const searchPathEnv = "PATH"

func libraryName() string {
	return "go.dll"
}

func defaultCandidates() []string {
	return []string{"go.dll", "libgo.dll"}
}

func openLibrary(path string) (nativeAPI, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nativeAPI{}, err
	}

	api, err := bindAPI(func(name string) (uintptr, error) {
		return windows.GetProcAddress(handle, name)
	})
	if err != nil {
		_ = windows.FreeLibrary(handle)
		return nativeAPI{}, err
	}
	return api, nil
}
