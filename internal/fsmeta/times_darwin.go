package fsmeta

import (
	"io/fs"
	"syscall"
	"time"
)

func platformTimes(_ string, info fs.FileInfo, _ bool, t *Times) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}

	t.Accessed = time.Unix(st.Atimespec.Unix())
	t.Created = time.Unix(st.Birthtimespec.Unix())
}
