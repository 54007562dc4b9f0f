package dg

import (
	"github.com/ebitengine/purego"
)

// bindAPI resolves the two entry points through the platform symbol lookup
// and registers Go trampolines for them. Both symbols must be present; a
// library that loads but lacks one is treated like any other failed
// candidate.
func bindAPI(lookup func(name string) (uintptr, error)) (nativeAPI, error) {
	var api nativeAPI

	addr, err := lookup("get_num_features")
	if err != nil {
		return nativeAPI{}, err
	}
	purego.RegisterFunc(&api.getNumFeatures, addr)

	addr, err = lookup("extract_single_example")
	if err != nil {
		return nativeAPI{}, err
	}
	purego.RegisterFunc(&api.extractSingleExample, addr)

	return api, nil
}
