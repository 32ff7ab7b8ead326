package shell

import (
	"io"

	"github.com/fatih/color"
)

// NoticePrefix starts every line the package prints on its own behalf.
const NoticePrefix = "[xtask]"

var noticeColor = color.New(color.FgYellow, color.Faint)

// writeSkipped prints the dry-run notice for cmdline to w.
func writeSkipped(w io.Writer, cmdline string) {
	noticeColor.Fprintf(w, "%s - skipped: %s\n", NoticePrefix, cmdline)
}
