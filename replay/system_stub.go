//go:build !robotgo

package replay

// SystemAvailable reports whether this build can drive the OS pointer.
const SystemAvailable = false

// NewSystem reports ErrNoSystemPointer; rebuild with -tags robotgo (cgo
// required) to drive the OS mouse.
func NewSystem() (Pointer, error) {
	return nil, ErrNoSystemPointer
}
