// mybuddy/utils/color/color.go
package color

import (
	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	infoColor    = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	callColor    = color.New(color.FgMagenta)
	dimColor     = color.New(color.Faint)
)

func ColorHeading(s string) string {
	return headingColor.Sprint(s)
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

func ColorSuccess(s string) string {
	return successColor.Sprint(s)
}

// ColorReminderType highlights call and follow_up reminders.
func ColorReminderType(s string) string {
	return callColor.Sprint(s)
}

func ColorDim(s string) string {
	return dimColor.Sprint(s)
}

var all = []*color.Color{headingColor, infoColor, warningColor, errorColor, successColor, callColor, dimColor}

// Disable turns colour off, e.g. for --no-color.
func Disable() {
	color.NoColor = true
	for _, c := range all {
		c.DisableColor()
	}
}

// Enable forces colour on even when stdout is not a terminal or NO_COLOR is set.
func Enable() {
	color.NoColor = false
	for _, c := range all {
		c.EnableColor()
	}
}
