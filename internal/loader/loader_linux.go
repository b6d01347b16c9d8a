//go:build linux

// Package loader installs a compiled filter into the calling process. The
// generator itself never does this; it is the privileged step a sandboxed
// runner performs after receiving the generator's output.
package loader

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Install applies filter, a serialized sock_filter program, to the current
// process and all threads started after it. PR_SET_NO_NEW_PRIVS is set first,
// as the kernel requires for unprivileged callers, and cannot be undone.
func Install(filter []byte) error {
	if len(filter) == 0 || len(filter)%8 != 0 {
		return fmt.Errorf("malformed filter program: %d bytes", len(filter))
	}
	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return fmt.Errorf("set no_new_privs: %w", err)
	}
	prog := unix.SockFprog{
		Len:    uint16(len(filter) / 8),
		Filter: (*unix.SockFilter)(unsafe.Pointer(&filter[0])),
	}
	_, _, errno := unix.Syscall(unix.SYS_SECCOMP,
		unix.SECCOMP_SET_MODE_FILTER, 0, uintptr(unsafe.Pointer(&prog)))
	runtime.KeepAlive(filter)
	if errno != 0 {
		return fmt.Errorf("seccomp(SET_MODE_FILTER): %w", errno)
	}
	return nil
}
