package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/cloudvec/cloudvec/v1/qdrant"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.Faint)
)

func printHeading(format string, args ...any) {
	headingColor.Printf(format+"\n", args...)
}

func printOK(format string, args ...any) {
	okColor.Printf("✔ "+format+"\n", args...)
}

func printWarn(format string, args ...any) {
	warnColor.Printf("! "+format+"\n", args...)
}

// errorString renders an error for the terminal, flagging connectivity and
// configuration failures so the cause is obvious without reading a stack of
// wrapped messages.
func errorString(err error) string {
	switch {
	case qdrant.IsConnectionError(err):
		return failColor.Sprintf("connection failed: %v", err)
	case qdrant.IsInvalidConfig(err):
		return failColor.Sprintf("configuration error: %v", err)
	default:
		return failColor.Sprint(fmt.Sprintf("error: %v", err))
	}
}
