package seccomp

import (
	"fmt"

	"github.com/probe-rs/hive-software/internal/policy"
)

// RunnerRuleSet resolves the static runner allow-list against arch and builds
// the rule set for it. The first unresolved name or duplicate registration
// aborts the build; no partial rule set is ever returned.
func RunnerRuleSet(arch policy.Arch) (*RuleSet, error) {
	b, err := NewBuilder(arch)
	if err != nil {
		return nil, err
	}
	for _, name := range policy.RunnerAllowList {
		sc, err := policy.Resolve(arch, name)
		if err != nil {
			return nil, err
		}
		if err := b.Allow(sc); err != nil {
			return nil, fmt.Errorf("allow %s: %w", name, err)
		}
	}
	return b.Finish(), nil
}
