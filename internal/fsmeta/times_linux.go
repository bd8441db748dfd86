package fsmeta

import (
	"io/fs"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func platformTimes(path string, info fs.FileInfo, follow bool, t *Times) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		t.Accessed = time.Unix(st.Atim.Unix())
		// Inode change time stands in when the filesystem keeps no birth time.
		t.Created = time.Unix(st.Ctim.Unix())
	}

	flags := 0
	if !follow {
		flags = unix.AT_SYMLINK_NOFOLLOW
	}

	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, flags, unix.STATX_BTIME, &stx); err != nil {
		return
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		t.Created = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
}
