package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probe-rs/hive-software/internal/compile"
	"github.com/probe-rs/hive-software/internal/policy"
	"github.com/probe-rs/hive-software/internal/seccomp"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRoot("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultModeEmitsBPF(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	rs, err := seccomp.RunnerRuleSet(policy.ArchAArch64)
	require.NoError(t, err)
	prog, err := compile.BPF(rs)
	require.NoError(t, err)
	require.Equal(t, string(prog.Bytes()), out)

	// Byte-identical across invocations.
	again, err := execute(t)
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestHumanModeEmitsDecisionTable(t *testing.T) {
	out, err := execute(t, "human")
	require.NoError(t, err)

	rs, err := seccomp.RunnerRuleSet(policy.ArchAArch64)
	require.NoError(t, err)
	require.Equal(t, compile.Text(rs), out)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(policy.RunnerAllowList)+1)
}

func TestArchFlagSelectsTable(t *testing.T) {
	out, err := execute(t, "--arch", "x86_64")
	require.NoError(t, err)

	rs, err := seccomp.RunnerRuleSet(policy.ArchX8664)
	require.NoError(t, err)
	prog, err := compile.BPF(rs)
	require.NoError(t, err)
	require.Equal(t, string(prog.Bytes()), out)

	aarch64, err := execute(t)
	require.NoError(t, err)
	require.NotEqual(t, aarch64, out)
}

func TestUnsupportedArchFlag(t *testing.T) {
	_, err := execute(t, "--arch", "riscv64")
	require.ErrorIs(t, err, policy.ErrUnsupportedArch)
}

func TestInvalidArgument(t *testing.T) {
	out, err := execute(t, "robot")

	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 1, ee.Code())
	require.Empty(t, ee.Message())

	require.Contains(t, out, "Argument 'robot' is invalid in this context.")
	require.Contains(t, out, "'human' argument")
}

func TestTooManyArguments(t *testing.T) {
	out, err := execute(t, "human", "extra")

	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 1, ee.Code())

	require.Contains(t, out, "Tool does not allow more than one argument.")
	// No filter output may leak alongside a usage error.
	require.NotContains(t, out, "=> ALLOW")
}

func TestExitError(t *testing.T) {
	require.Equal(t, "exit 2", (&ExitError{code: 2}).Error())
	require.Equal(t, "boom", (&ExitError{code: 1, message: "boom"}).Error())
	require.Equal(t, 1, (*ExitError)(nil).Code())
}
