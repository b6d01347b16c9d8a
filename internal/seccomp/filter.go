// Package seccomp builds the rule set a filter is compiled from: one target
// architecture, a fail-closed default, and an ordered allow-list of syscalls.
package seccomp

import (
	"errors"
	"fmt"

	"github.com/probe-rs/hive-software/internal/policy"
)

// Action is a seccomp return value, as delivered to the kernel by a filter's
// return instruction.
type Action uint32

const (
	// ActionKillProcess terminates the whole process immediately.
	ActionKillProcess Action = 0x80000000
	// ActionAllow lets the syscall proceed.
	ActionAllow Action = 0x7fff0000
)

func (a Action) String() string {
	switch a {
	case ActionKillProcess:
		return "KILL_PROCESS"
	case ActionAllow:
		return "ALLOW"
	}
	return fmt.Sprintf("0x%08x", uint32(a))
}

var (
	ErrDuplicateRule = errors.New("duplicate rule")
	ErrFinished      = errors.New("rule set already finished")
)

// Rule pairs one syscall with the action taken when it matches.
type Rule struct {
	Syscall policy.Syscall
	Action  Action
}

// RuleSet is the completed, immutable policy handed to an encoder. Anything
// not covered by a rule gets the default action.
type RuleSet struct {
	arch  policy.Arch
	def   Action
	rules []Rule
}

func (rs *RuleSet) Arch() policy.Arch { return rs.arch }
func (rs *RuleSet) Default() Action   { return rs.def }

// Rules returns the rules in insertion order. The returned slice is a copy;
// the set itself never changes after Finish.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Builder accumulates allow rules for one architecture. The default action is
// always ActionKillProcess: a syscall is either explicitly allowed here or the
// process dies.
type Builder struct {
	arch     policy.Arch
	rules    []Rule
	seen     map[uint32]string
	finished bool
}

// NewBuilder starts an empty rule set for arch.
func NewBuilder(arch policy.Arch) (*Builder, error) {
	if !arch.Supported() {
		return nil, fmt.Errorf("%w: %q", policy.ErrUnsupportedArch, arch)
	}
	return &Builder{
		arch: arch,
		seen: make(map[uint32]string),
	}, nil
}

// Allow appends an allow rule for sc. Registering the same syscall number
// twice is a policy-authoring bug and fails the build; it is never merged or
// skipped. The builder is left unchanged on error.
func (b *Builder) Allow(sc policy.Syscall) error {
	if b.finished {
		return ErrFinished
	}
	if prev, ok := b.seen[sc.Nr]; ok {
		return fmt.Errorf("%w: %s (%d) already allowed as %s", ErrDuplicateRule, sc.Name, sc.Nr, prev)
	}
	b.seen[sc.Nr] = sc.Name
	b.rules = append(b.rules, Rule{Syscall: sc, Action: ActionAllow})
	return nil
}

// Finish freezes the builder and returns the completed rule set. Further
// Allow calls fail with ErrFinished.
func (b *Builder) Finish() *RuleSet {
	b.finished = true
	return &RuleSet{
		arch:  b.arch,
		def:   ActionKillProcess,
		rules: b.rules,
	}
}
