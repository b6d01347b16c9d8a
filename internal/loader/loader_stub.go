//go:build !linux

package loader

import "errors"

// ErrUnsupported indicates seccomp filters cannot be installed on this platform.
var ErrUnsupported = errors.New("seccomp filter installation unsupported on this platform")

// Install is unavailable off Linux; filters can still be generated anywhere.
func Install(filter []byte) error {
	return ErrUnsupported
}
