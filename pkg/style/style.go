// Package style provides the user-facing message conventions for nvup.
//
// All operator-visible output goes through the four prefixed printers
// (ERROR, SUCCESS, WARNING, INFO) plus plain item lines, mirroring the
// prefix convention the setup flow reports progress with. Errors and
// warnings go to stderr, everything else to stdout.
package style

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Printer writes prefixed, colored status messages.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

var (
	errorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	successStyle = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	warningStyle = pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	infoStyle    = pterm.NewStyle(pterm.FgBlue, pterm.Bold)
)

// NewPrinter creates a printer writing to stdout/stderr, with color
// disabled when stdout is not a terminal or the profile is monochrome.
func NewPrinter() *Printer {
	noColor := !isatty.IsTerminal(os.Stdout.Fd()) ||
		termenv.NewOutput(os.Stdout).Profile == termenv.Ascii
	return &Printer{out: os.Stdout, errOut: os.Stderr, noColor: noColor}
}

// NewPrinterTo creates a printer with explicit writers, used in tests.
// Color is always disabled.
func NewPrinterTo(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut, noColor: true}
}

func (p *Printer) render(s *pterm.Style, prefix, msg string) string {
	if p.noColor {
		return fmt.Sprintf("%s: %s", prefix, msg)
	}
	return fmt.Sprintf("%s %s", s.Sprint(prefix+":"), msg)
}

// Errorf prints an ERROR line to stderr.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.errOut, p.render(errorStyle, "ERROR", fmt.Sprintf(format, args...)))
}

// Successf prints a SUCCESS line.
func (p *Printer) Successf(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(successStyle, "SUCCESS", fmt.Sprintf(format, args...)))
}

// Warningf prints a WARNING line to stderr.
func (p *Printer) Warningf(format string, args ...interface{}) {
	fmt.Fprintln(p.errOut, p.render(warningStyle, "WARNING", fmt.Sprintf(format, args...)))
}

// Infof prints an INFO line.
func (p *Printer) Infof(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(infoStyle, "INFO", fmt.Sprintf(format, args...)))
}

// Itemf prints an indented plain item line ("  - ...").
func (p *Printer) Itemf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "  - "+format+"\n", args...)
}

// Plainf prints an unprefixed line.
func (p *Printer) Plainf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Rule prints a horizontal separator of the given width.
func (p *Printer) Rule(width int) {
	line := make([]byte, width)
	for i := range line {
		line[i] = '-'
	}
	fmt.Fprintln(p.out, string(line))
}
