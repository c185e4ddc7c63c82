package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
	colorReset  = "\033[0m"
)

// Output prints human-facing progress. Errors go to errW.
type Output struct {
	w            io.Writer
	errW         io.Writer
	enableColors bool
	quiet        bool
}

func NewOutput() *Output {
	return &Output{
		w:            os.Stdout,
		errW:         os.Stderr,
		enableColors: isTerminal(os.Stdout),
	}
}

// NewWriterOutput writes to the given writers without colors.
func NewWriterOutput(w, errW io.Writer) *Output {
	if errW == nil {
		errW = w
	}
	return &Output{w: w, errW: errW}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

// SetQuiet suppresses per-file lines.
func (o *Output) SetQuiet(quiet bool) {
	o.quiet = quiet
}

func (o *Output) colorize(color, text string) string {
	if !o.enableColors {
		return text
	}
	return color + text + colorReset
}

func (o *Output) Green(text string) string  { return o.colorize(colorGreen, text) }
func (o *Output) Yellow(text string) string { return o.colorize(colorYellow, text) }
func (o *Output) Red(text string) string    { return o.colorize(colorRed, text) }
func (o *Output) Gray(text string) string   { return o.colorize(colorGray, text) }

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.w, msg)
	fmt.Fprintln(o.w)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	prefix := "  "
	if emoji != "" {
		prefix += emoji + " "
	}
	fmt.Fprintf(o.w, prefix+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.w, "  %s%s\n", o.Green("✓ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.w, "  %s%s\n", o.Yellow("⚠ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.errW, "  %s%s\n", o.Red("✗ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "    %s\n", o.Gray(path))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.w, msg)
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
