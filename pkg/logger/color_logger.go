package logger

import (
	"log"

	"github.com/fatih/color"
)

type ColorLogger struct {
	*log.Logger
}

type Color = *color.Color

var (
	ColorRed    Color = color.New(color.FgRed)
	ColorGreen  Color = color.New(color.FgGreen)
	ColorYellow Color = color.New(color.FgYellow)
	ColorBlue   Color = color.New(color.FgBlue)
	ColorCyan   Color = color.New(color.FgCyan)
)

func NewColorLogger(lg *log.Logger) *ColorLogger {
	c := ColorLogger{
		lg,
	}
	return &c
}

// SetEnabled forces colors on or off, by default they follow the terminal.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func (c *ColorLogger) Printcf(cl Color, format string, args ...interface{}) {
	c.Print(cl.Sprintf(format, args...))
}

func (c *ColorLogger) Printc(cl Color, s string) {
	c.Print(cl.Sprint(s))
}
