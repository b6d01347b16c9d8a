// Package policy holds the static syscall allow-list for the test runner and
// the per-architecture tables that resolve symbolic syscall names to numbers.
//
// The table is deliberately plain data: the set of permitted syscalls is a
// security decision that must be reviewable in a single diff.
package policy

import (
	"errors"
	"fmt"
)

// Arch identifies the instruction-set ABI whose syscall numbering a filter
// targets. One filter is valid for exactly one Arch.
type Arch string

const (
	ArchAArch64 Arch = "aarch64"
	ArchX8664   Arch = "x86_64"
)

// Linux audit architecture tokens, as reported in seccomp_data.arch.
// These are ABI constants and identical on every host.
const (
	auditArchAArch64 = 0xc00000b7
	auditArchX8664   = 0xc000003e
)

var (
	ErrUnsupportedArch = errors.New("unsupported architecture")
	ErrUnknownSyscall  = errors.New("unknown syscall")
)

// ParseArch validates a user-supplied architecture name.
func ParseArch(s string) (Arch, error) {
	a := Arch(s)
	if _, ok := tables[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedArch, s)
	}
	return a, nil
}

// Supported reports whether filters can be compiled for a.
func (a Arch) Supported() bool {
	_, ok := tables[a]
	return ok
}

// AuditArch returns the AUDIT_ARCH_* token the kernel stores in
// seccomp_data.arch for this architecture.
func (a Arch) AuditArch() uint32 {
	switch a {
	case ArchAArch64:
		return auditArchAArch64
	case ArchX8664:
		return auditArchX8664
	}
	return 0
}

func (a Arch) String() string { return string(a) }

// Syscall is one resolved allow-list entry: the symbolic name kept for audit
// output and the number the kernel compares against on the target Arch.
type Syscall struct {
	Name string
	Nr   uint32
}

// Resolve maps a syscall name to its number on arch. A name the architecture
// does not define is a policy-authoring error and fails the whole run; a
// partially resolved allow-list must never become a filter.
func Resolve(arch Arch, name string) (Syscall, error) {
	table, ok := tables[arch]
	if !ok {
		return Syscall{}, fmt.Errorf("%w: %q", ErrUnsupportedArch, arch)
	}
	nr, ok := table[name]
	if !ok {
		return Syscall{}, fmt.Errorf("%w: %q on %s", ErrUnknownSyscall, name, arch)
	}
	return Syscall{Name: name, Nr: nr}, nil
}

// ResolveAll resolves names in order, stopping at the first failure.
func ResolveAll(arch Arch, names []string) ([]Syscall, error) {
	out := make([]Syscall, 0, len(names))
	for _, name := range names {
		sc, err := Resolve(arch, name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
