// Package message prints user-facing console output. Diagnostic logging
// goes through slog; this package is only for the banner, progress, and
// result lines an operator reads.
package message

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/castellanops/cumulus/version"
	"github.com/fatih/color"
)

type console struct {
	mu     sync.RWMutex
	out    io.Writer
	quiet  bool
	silent bool
}

var con = &console{out: os.Stdout}

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	accentColor  = color.New(color.FgHiBlue, color.Bold)
)

const asciiBanner = `
 ██████╗██╗   ██╗███╗   ███╗██╗   ██╗██╗     ██╗   ██╗███████╗
██╔════╝██║   ██║████╗ ████║██║   ██║██║     ██║   ██║██╔════╝
██║     ██║   ██║██╔████╔██║██║   ██║██║     ██║   ██║███████╗
██║     ██║   ██║██║╚██╔╝██║██║   ██║██║     ██║   ██║╚════██║
╚██████╗╚██████╔╝██║ ╚═╝ ██║╚██████╔╝███████╗╚██████╔╝███████║
 ╚═════╝ ╚═════╝ ╚═╝     ╚═╝ ╚═════╝ ╚══════╝ ╚═════╝ ╚══════╝
`

// SetQuiet suppresses informational output; warnings and errors still
// print.
func SetQuiet(q bool) {
	con.mu.Lock()
	defer con.mu.Unlock()
	con.quiet = q
}

// SetSilent suppresses all console output.
func SetSilent(s bool) {
	con.mu.Lock()
	defer con.mu.Unlock()
	con.silent = s
}

// SetNoColor disables colored output globally.
func SetNoColor(nc bool) {
	color.NoColor = nc
}

// SetOutput redirects console output, used by tests.
func SetOutput(w io.Writer) {
	con.mu.Lock()
	defer con.mu.Unlock()
	con.out = w
}

func (c *console) print(col *color.Color, prefix, format string, args ...any) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	col.Fprintf(c.out, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}

func (c *console) suppressed(includeQuiet bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.silent || (includeQuiet && c.quiet)
}

// Info prints a progress line.
func Info(format string, args ...any) {
	if con.suppressed(true) {
		return
	}
	con.print(infoColor, "[*] ", format, args...)
}

// Success prints a completed-action line.
func Success(format string, args ...any) {
	if con.suppressed(true) {
		return
	}
	con.print(successColor, "[+] ", format, args...)
}

// Warning prints even in quiet mode.
func Warning(format string, args ...any) {
	if con.suppressed(false) {
		return
	}
	con.print(warningColor, "[!] ", format, args...)
}

// Error prints even in quiet mode.
func Error(format string, args ...any) {
	if con.suppressed(false) {
		return
	}
	con.print(errorColor, "[-] ", format, args...)
}

// Section prints a header separating one module run from the next.
func Section(format string, args ...any) {
	if con.suppressed(true) {
		return
	}
	con.print(accentColor, "", "\n-=[%s]=-\n", fmt.Sprintf(format, args...))
}

// Banner prints the startup banner with the running version.
func Banner() {
	if con.suppressed(true) {
		return
	}
	con.mu.RLock()
	defer con.mu.RUnlock()
	accentColor.Fprint(con.out, asciiBanner, version.AbbreviatedVersion(), "\n")
}
