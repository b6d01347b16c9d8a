package compile

import (
	"fmt"
	"strings"

	"github.com/probe-rs/hive-software/internal/seccomp"
)

// Text renders rs as an auditable decision table: one line per rule in
// insertion order, then the default action. It is a formatting transform
// only; rules are never added, dropped, or reordered.
func Text(rs *seccomp.RuleSet) string {
	var b strings.Builder
	for _, r := range rs.Rules() {
		fmt.Fprintf(&b, "%s(%d) => %s\n", r.Syscall.Name, r.Syscall.Nr, r.Action)
	}
	fmt.Fprintf(&b, "default => %s\n", rs.Default())
	return b.String()
}
