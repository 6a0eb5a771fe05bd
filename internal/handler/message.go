package handler

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders user-facing messages with thousands separators ("Staked 1,000 KAI")
var printer = message.NewPrinter(language.English)

func msgf(format string, args ...interface{}) string {
	return printer.Sprintf(format, args...)
}
