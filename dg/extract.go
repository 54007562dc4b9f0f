package dg

import (
	"fmt"
	"runtime"
	"unsafe"
)

// StatusError is a non-zero status returned by the native extractor, e.g.
// for a malformed or unscoreable record. The meaning of individual codes
// belongs to the native contract; callers typically skip the record.
type StatusError struct {
	Status int32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("extractor returned status %d", e.Status)
}

// ExtractSingleExample parses one SGF game record into an Example. The call
// is synchronous and stateless; each invocation allocates its own receiving
// buffer, so calls are independent of each other.
//
// On a non-zero native status the example is nil and the error is a
// *StatusError carrying the code.
func (l *Library) ExtractSingleExample(sgf string) (*Example, error) {
	// NUL-terminated copy for the native side.
	csgf := make([]byte, len(sgf)+1)
	copy(csgf, sgf)

	// The buffer backs the native Example struct and must stay alive until
	// every field has been copied out.
	buf := make([]byte, l.layout.size)
	status := l.api.extractSingleExample(unsafe.Pointer(&csgf[0]), unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(csgf)
	if status != 0 {
		return nil, &StatusError{Status: status}
	}

	ex := decodeExample(buf, l.layout)
	runtime.KeepAlive(buf)
	return ex, nil
}
