// Package compile lowers a completed rule set into its two output forms: the
// classic-BPF filter program the kernel interprets, and an equivalent
// human-readable decision table.
//
// Both encoders are pure functions over the same immutable rule set and must
// decide the same action for every syscall number; the binary encoder is the
// loadable artifact, the text encoder exists so the loadable artifact can be
// audited without a BPF disassembler.
package compile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/net/bpf"

	"github.com/probe-rs/hive-software/internal/seccomp"
)

// Offsets into struct seccomp_data, the buffer a seccomp filter reads.
const (
	seccompDataNr   = 0 // int nr
	seccompDataArch = 4 // __u32 arch
)

// MaxRules bounds the allow-list size: the skip fields of a conditional jump
// are 8 bits wide, and the farthest jump in the generated layout spans the
// whole comparison chain plus the default return.
const MaxRules = 254

// ErrTooManyRules reports an allow-list the instruction format cannot address.
var ErrTooManyRules = errors.New("too many rules for one filter program")

// Program is a compiled filter, held both as symbolic instructions and as the
// raw form the kernel loads.
type Program struct {
	insns []bpf.Instruction
	raw   []bpf.RawInstruction
}

// Instructions returns the program in symbolic form, one entry per kernel
// instruction in program order.
func (p *Program) Instructions() []bpf.Instruction {
	out := make([]bpf.Instruction, len(p.insns))
	copy(out, p.insns)
	return out
}

// Len returns the instruction count.
func (p *Program) Len() int { return len(p.raw) }

// Bytes serializes the program as the kernel expects it: consecutive 8-byte
// sock_filter records in native byte order.
func (p *Program) Bytes() []byte {
	out := make([]byte, 0, len(p.raw)*8)
	for _, ri := range p.raw {
		out = binary.NativeEndian.AppendUint16(out, ri.Op)
		out = append(out, ri.Jt, ri.Jf)
		out = binary.NativeEndian.AppendUint32(out, ri.K)
	}
	return out
}

// BPF encodes rs as a loadable seccomp filter.
//
// Program layout, for n rules:
//
//	0:     ld  seccomp_data.arch
//	1:     jne AUDIT_ARCH_<target>  -> n+3
//	2:     ld  seccomp_data.nr
//	3+i:   jeq rule[i].nr           -> n+4    (i = 0..n-1)
//	n+3:   ret default action
//	n+4:   ret ALLOW                          (omitted when n == 0)
//
// The leading architecture check keeps a filter built for one syscall
// numbering from silently deciding under another. Comparisons are emitted in
// insertion order: the decision is order-independent (at most one rule per
// number) and a fixed order keeps the encoding byte-for-byte reproducible.
func BPF(rs *seccomp.RuleSet) (*Program, error) {
	rules := rs.Rules()
	n := len(rules)
	if n > MaxRules {
		return nil, fmt.Errorf("%w: %d rules, limit %d", ErrTooManyRules, n, MaxRules)
	}

	insns := make([]bpf.Instruction, 0, n+5)
	insns = append(insns,
		bpf.LoadAbsolute{Off: seccompDataArch, Size: 4},
		bpf.JumpIf{Cond: bpf.JumpNotEqual, Val: rs.Arch().AuditArch(), SkipTrue: uint8(n + 1)},
		bpf.LoadAbsolute{Off: seccompDataNr, Size: 4},
	)
	for i, r := range rules {
		insns = append(insns, bpf.JumpIf{
			Cond:     bpf.JumpEqual,
			Val:      r.Syscall.Nr,
			SkipTrue: uint8(n - i),
		})
	}
	insns = append(insns, bpf.RetConstant{Val: uint32(rs.Default())})
	if n > 0 {
		insns = append(insns, bpf.RetConstant{Val: uint32(seccomp.ActionAllow)})
	}

	raw, err := bpf.Assemble(insns)
	if err != nil {
		return nil, fmt.Errorf("assemble filter: %w", err)
	}
	return &Program{insns: insns, raw: raw}, nil
}
