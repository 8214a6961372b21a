package settings

import (
	"os"
	"runtime"
)

// defaultShell picks a reasonable shell default when nothing overrides it:
// $SHELL on Unix-likes, cmd.exe on Windows.
func defaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}
