// Package cli wires the filter generator's command surface: no argument emits
// the loadable BPF program on stdout, the single argument "human" emits the
// decision table instead.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probe-rs/hive-software/internal/compile"
	"github.com/probe-rs/hive-software/internal/policy"
	"github.com/probe-rs/hive-software/internal/seccomp"
)

const humanHint = "If you'd like to display the generated filter in human readable form, please use the 'human' argument."

func NewRoot(version string) *cobra.Command {
	var arch string
	cmd := &cobra.Command{
		Use:           "runner-seccomp [human]",
		Short:         "Generate the seccomp allow-list filter for test runner processes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, arch)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate("runner-seccomp {{.Version}}\n")

	cmd.Flags().StringVar(&arch, "arch", string(policy.ArchAArch64), "target architecture (aarch64|x86_64)")

	return cmd
}

func run(cmd *cobra.Command, args []string, archName string) error {
	// Usage problems go to stdout, mirroring the tool's long-standing
	// behavior; the non-zero exit is what callers key on.
	switch {
	case len(args) > 1:
		fmt.Fprintf(cmd.OutOrStdout(), "Tool does not allow more than one argument.\n\n%s\n", humanHint)
		return &ExitError{code: 1}
	case len(args) == 1 && args[0] != "human":
		fmt.Fprintf(cmd.OutOrStdout(), "Argument '%s' is invalid in this context.\n\n%s\n", args[0], humanHint)
		return &ExitError{code: 1}
	}
	human := len(args) == 1

	arch, err := policy.ParseArch(archName)
	if err != nil {
		return err
	}
	rs, err := seccomp.RunnerRuleSet(arch)
	if err != nil {
		return fmt.Errorf("build rule set: %w", err)
	}

	if human {
		_, err = fmt.Fprint(cmd.OutOrStdout(), compile.Text(rs))
		return err
	}
	prog, err := compile.BPF(rs)
	if err != nil {
		return fmt.Errorf("encode filter: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(prog.Bytes())
	return err
}
