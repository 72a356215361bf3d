package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions - fatih/color disables itself when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSection prints a section header
func PrintSection(title string) {
	_, _ = headerColor.Printf("▸ %s\n", title)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintField prints an aligned label/value pair
func PrintField(label, value string) {
	_, _ = labelColor.Printf("  %-12s", label)
	fmt.Println(value)
}

// PrintDim prints de-emphasized text
func PrintDim(msg string) {
	_, _ = dimColor.Println(msg)
}

// PrintList prints an indented bullet list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Printf("  - %s\n", strings.TrimSpace(item))
	}
}
