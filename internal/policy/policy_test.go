package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		in   string
		want Arch
		ok   bool
	}{
		{"aarch64", ArchAArch64, true},
		{"x86_64", ArchX8664, true},
		{"riscv64", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseArch(tc.in)
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, tc.want, got)
				require.True(t, got.Supported())
			} else {
				require.ErrorIs(t, err, ErrUnsupportedArch)
			}
		})
	}
}

func TestAuditArchTokens(t *testing.T) {
	require.Equal(t, uint32(0xc00000b7), ArchAArch64.AuditArch())
	require.Equal(t, uint32(0xc000003e), ArchX8664.AuditArch())
	require.NotEqual(t, ArchAArch64.AuditArch(), ArchX8664.AuditArch())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		arch Arch
		name string
		nr   uint32
	}{
		{ArchAArch64, "read", 63},
		{ArchAArch64, "write", 64},
		{ArchAArch64, "exit", 93},
		{ArchAArch64, "futex", 98},
		{ArchAArch64, "statx", 291},
		{ArchX8664, "read", 0},
		{ArchX8664, "write", 1},
		{ArchX8664, "exit", 60},
		{ArchX8664, "futex", 202},
		{ArchX8664, "statx", 332},
	}

	for _, tc := range tests {
		t.Run(string(tc.arch)+"/"+tc.name, func(t *testing.T) {
			sc, err := Resolve(tc.arch, tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.name, sc.Name)
			require.Equal(t, tc.nr, sc.Nr)
		})
	}
}

func TestResolveUnknownSyscall(t *testing.T) {
	_, err := Resolve(ArchAArch64, "not_a_real_syscall")
	require.ErrorIs(t, err, ErrUnknownSyscall)
	require.Contains(t, err.Error(), "not_a_real_syscall")

	// aarch64 never had legacy open; the allow-list uses openat.
	_, err = Resolve(ArchAArch64, "open")
	require.ErrorIs(t, err, ErrUnknownSyscall)
}

func TestResolveUnsupportedArch(t *testing.T) {
	_, err := Resolve(Arch("mips64"), "read")
	require.ErrorIs(t, err, ErrUnsupportedArch)
}

func TestResolveAllPreservesOrder(t *testing.T) {
	names := []string{"read", "write", "exit"}
	scs, err := ResolveAll(ArchAArch64, names)
	require.NoError(t, err)
	require.Len(t, scs, 3)
	for i, sc := range scs {
		require.Equal(t, names[i], sc.Name)
	}

	_, err = ResolveAll(ArchAArch64, []string{"read", "bogus", "write"})
	require.ErrorIs(t, err, ErrUnknownSyscall)
}

func TestRunnerAllowListResolvesEverywhere(t *testing.T) {
	for arch := range tables {
		t.Run(string(arch), func(t *testing.T) {
			scs, err := ResolveAll(arch, RunnerAllowList)
			require.NoError(t, err)
			require.Len(t, scs, len(RunnerAllowList))

			seen := make(map[uint32]string, len(scs))
			for _, sc := range scs {
				prev, dup := seen[sc.Nr]
				require.False(t, dup, "%s and %s share number %d", prev, sc.Name, sc.Nr)
				seen[sc.Nr] = sc.Name
			}
		})
	}
}

func TestTablesCoverAllowListExactly(t *testing.T) {
	// The per-arch tables exist to serve the allow-list; entries the list
	// never references would be dead weight that still needs auditing.
	listed := make(map[string]bool, len(RunnerAllowList))
	for _, name := range RunnerAllowList {
		listed[name] = true
	}
	for arch, table := range tables {
		require.Len(t, table, len(RunnerAllowList), "table size for %s", arch)
		for name := range table {
			require.True(t, listed[name], "%s table carries unlisted syscall %s", arch, name)
		}
	}
}
