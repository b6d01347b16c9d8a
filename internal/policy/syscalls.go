package policy

// RunnerAllowList is the fixed set of syscalls a test runner process may make,
// in the order they are registered and reported. Order is preserved through to
// the human-readable output so audits diff cleanly against this list.
var RunnerAllowList = []string{
	"futex",
	"ppoll",
	"epoll_pwait",
	"ioctl",
	"openat",
	"close",
	"write",
	"timerfd_settime",
	"fstat",
	"clock_nanosleep",
	"sched_yield",
	"read",
	"getrandom",
	"faccessat",
	"readlinkat",
	"mprotect",
	"getdents64",
	"getcwd",
	"clone",
	"recvmsg",
	"mmap",
	"uname",
	"munmap",
	"newfstatat",
	"eventfd2",
	"setsockopt",
	"sigaltstack",
	"timerfd_create",
	"madvise",
	"socket",
	"set_robust_list",
	"recvfrom",
	"brk",
	"bind",
	"rt_sigaction",
	"fcntl",
	"epoll_ctl",
	"sched_getaffinity",
	"statx",
	"connect",
	"getsockname",
	"prctl",
	"epoll_create1",
	"prlimit64",
	"mkdirat",
	"shutdown",
	"statfs",
	"getsockopt",
	"gettid",
	"lseek",
	"rt_sigprocmask",
	"getpid",
	"set_tid_address",
	"mremap",
	"execve",
	"wait4",
	"exit",
}

// tables maps each supported architecture to its syscall numbering. The
// numbers are fixed kernel ABI; they are spelled out here rather than taken
// from golang.org/x/sys so that a filter for either architecture can be
// compiled from any build host.
var tables = map[Arch]map[string]uint32{
	ArchAArch64: aarch64Syscalls,
	ArchX8664:   x8664Syscalls,
}

// aarch64 uses the generic syscall table (asm-generic/unistd.h).
var aarch64Syscalls = map[string]uint32{
	"getcwd":            17,
	"eventfd2":          19,
	"epoll_create1":     20,
	"epoll_ctl":         21,
	"epoll_pwait":       22,
	"fcntl":             25,
	"ioctl":             29,
	"mkdirat":           34,
	"statfs":            43,
	"faccessat":         48,
	"openat":            56,
	"close":             57,
	"getdents64":        61,
	"lseek":             62,
	"read":              63,
	"write":             64,
	"ppoll":             73,
	"readlinkat":        78,
	"newfstatat":        79,
	"fstat":             80,
	"timerfd_create":    85,
	"timerfd_settime":   86,
	"exit":              93,
	"set_tid_address":   96,
	"futex":             98,
	"set_robust_list":   99,
	"clock_nanosleep":   115,
	"sched_getaffinity": 123,
	"sched_yield":       124,
	"sigaltstack":       132,
	"rt_sigaction":      134,
	"rt_sigprocmask":    135,
	"uname":             160,
	"prctl":             167,
	"getpid":            172,
	"gettid":            178,
	"socket":            198,
	"bind":              200,
	"connect":           203,
	"getsockname":       204,
	"recvfrom":          207,
	"setsockopt":        208,
	"getsockopt":        209,
	"shutdown":          210,
	"recvmsg":           212,
	"brk":               214,
	"munmap":            215,
	"mremap":            216,
	"clone":             220,
	"execve":            221,
	"mmap":              222,
	"mprotect":          226,
	"madvise":           233,
	"wait4":             260,
	"prlimit64":         261,
	"getrandom":         278,
	"statx":             291,
}

var x8664Syscalls = map[string]uint32{
	"read":              0,
	"write":             1,
	"close":             3,
	"fstat":             5,
	"lseek":             8,
	"mmap":              9,
	"mprotect":          10,
	"munmap":            11,
	"brk":               12,
	"rt_sigaction":      13,
	"rt_sigprocmask":    14,
	"ioctl":             16,
	"sched_yield":       24,
	"mremap":            25,
	"madvise":           28,
	"getpid":            39,
	"socket":            41,
	"connect":           42,
	"recvfrom":          45,
	"recvmsg":           47,
	"shutdown":          48,
	"bind":              49,
	"getsockname":       51,
	"setsockopt":        54,
	"getsockopt":        55,
	"clone":             56,
	"execve":            59,
	"exit":              60,
	"wait4":             61,
	"uname":             63,
	"fcntl":             72,
	"getcwd":            79,
	"sigaltstack":       131,
	"statfs":            137,
	"prctl":             157,
	"gettid":            186,
	"futex":             202,
	"sched_getaffinity": 204,
	"getdents64":        217,
	"set_tid_address":   218,
	"clock_nanosleep":   230,
	"epoll_ctl":         233,
	"openat":            257,
	"mkdirat":           258,
	"newfstatat":        262,
	"readlinkat":        267,
	"faccessat":         269,
	"ppoll":             271,
	"set_robust_list":   273,
	"epoll_pwait":       281,
	"timerfd_create":    283,
	"timerfd_settime":   286,
	"eventfd2":          290,
	"epoll_create1":     291,
	"prlimit64":         302,
	"getrandom":         318,
	"statx":             332,
}
