// Package common includes common utilities
package common

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer for pretty printing numbers
var printer = message.NewPrinter(language.English)

// GetEnv returns the value of the environment variable, or a default value
func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// HumanBytes returns a size in the same format as AWS S3
func HumanBytes(n uint64) string {
	s := humanize.IBytes(n)
	return strings.Replace(s, "iB", "B", 1)
}

// PrettyInt returns the number with thousand separators
func PrettyInt(i uint64) string {
	return printer.Sprintf("%d", i)
}

// USDString formats a USD amount with thousand separators and 2 decimals
func USDString(f float64) string {
	return printer.Sprintf("%.2f", f)
}

func StringSliceContains(haystack []string, needle string) bool {
	for _, entry := range haystack {
		if entry == needle {
			return true
		}
	}
	return false
}
