// Package dg binds the Dream Go feature extractor shared library
// (libgo.so / go.dll). The library turns a single SGF game record into a
// fixed-layout training example: a feature tensor, a policy distribution,
// and the position's color, winner, move index, and move number. All of the
// feature engineering lives on the native side; this package only discovers
// the library, declares the foreign struct layout, and copies fields into
// Go-owned values.
package dg

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	// BoardPoints is the number of intersections on the 19x19 board the
	// native extractor encodes. Each feature plane holds one value per
	// intersection.
	BoardPoints = 361

	// policyBytes is the fixed size of the native policy field. The policy
	// string is NUL-terminated inside it.
	policyBytes = 905
)

// Example is one training position copied out of the native extractor.
// Every field is Go-owned; nothing references native memory after the
// extraction call returns.
type Example struct {
	// Features holds the spatial feature planes, NumFeatures()*BoardPoints
	// float32 values. Their encoding is the native library's contract.
	Features []float32

	// Index is the move index within the game record.
	Index int32

	// Color encodes the side to move. Its domain belongs to the native
	// contract and is passed through untouched.
	Color int32

	// Policy is the encoded move distribution, truncated at the first NUL
	// of the native 905-byte field.
	Policy string

	// Winner encodes the game outcome, untouched like Color.
	Winner int32

	// Number is the move number.
	Number int32
}

func decodeExample(buf []byte, lo layout) *Example {
	ex := &Example{
		Features: make([]float32, lo.featureCount),
		Index:    int32(binary.NativeEndian.Uint32(buf[lo.index:])),
		Color:    int32(binary.NativeEndian.Uint32(buf[lo.color:])),
		Winner:   int32(binary.NativeEndian.Uint32(buf[lo.winner:])),
		Number:   int32(binary.NativeEndian.Uint32(buf[lo.number:])),
	}

	for i := range ex.Features {
		ex.Features[i] = math.Float32frombits(binary.NativeEndian.Uint32(buf[4*i:]))
	}

	policy := buf[lo.policy : lo.policy+policyBytes]
	if i := bytes.IndexByte(policy, 0); i >= 0 {
		policy = policy[:i]
	}
	ex.Policy = string(policy)

	return ex
}
