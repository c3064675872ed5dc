package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// DisplayInfoMessage prints an informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Print("\n")
	ErrorStyleBG.Print("internal compiler error")
	ErrorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue.\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("fatal error")
	ErrorColorFG.Println(" " + message)
	fmt.Println()
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label string, src *Source, cerr *CompileError) {
	displayBanner(label, cerr)

	if cerr.Span == nil {
		fmt.Printf("%s: %s\n\n", cerr.File, cerr.Message)
	} else {
		fmt.Printf("%s:%s: %s\n\n", cerr.File, cerr.Span, cerr.Message)

		if src != nil {
			displaySourceText(src, cerr.Span)
		}
	}
}

// displayBanner displays the banner on top of all compilation messages.
func displayBanner(label string, cerr *CompileError) {
	fmt.Print("-- ")

	kindStr := cerr.Kind.String() + " " + label
	if label == "error" {
		ErrorStyleBG.Print(kindStr)
	} else {
		WarnStyleBG.Print(kindStr)
	}

	fmt.Print(" ")

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(cerr.File) - len(kindStr) - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(cerr.File)
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	ErrorStyleBG.Print("error")
	ErrorColorFG.Printf(" %s: %s\n\n", reprPath, err)
}

// displayStdWarning displays a standard warning message.
func displayStdWarning(reprPath string, msg string) {
	WarnStyleBG.Print("warning")
	WarnColorFG.Printf(" %s: %s\n\n", reprPath, msg)
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
// The span's columns count runes; tabs are expanded to four spaces for display
// and the underlining is shifted to match.
func displaySourceText(src *Source, span *TextSpan) {
	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for ln := span.StartLine; ln <= span.EndLine; ln++ {
		line, ok := src.Line(ln)
		if !ok {
			break
		}

		runes := []rune(line)

		// Print the line number and separator bar.
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, ln+1))
		fmt.Println(expandTabs(runes))

		// The first line is underlined from the start column and the last
		// line until the end column; lines in between are fully underlined.
		startCol, endCol := 0, len(runes)
		if ln == span.StartLine {
			startCol = clampCol(span.StartCol, len(runes))
		}

		if ln == span.EndLine {
			endCol = clampCol(span.EndCol, len(runes))
		}

		prefix := len(expandTabs(runes[:startCol]))
		width := len(expandTabs(runes[startCol:endCol]))
		if width == 0 {
			width = 1
		}

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")
		fmt.Print(strings.Repeat(" ", prefix))
		ErrorColorFG.Println(strings.Repeat("^", width))
	}

	// Print newlines after the error message.
	fmt.Println()
}

// expandTabs converts a slice of runes to a string with tabs replaced by four
// spaces.
func expandTabs(runes []rune) string {
	return strings.ReplaceAll(string(runes), "\t", "    ")
}

// clampCol clamps a column to the range [0, n].
func clampCol(col, n int) int {
	if col < 0 {
		return 0
	} else if col > n {
		return n
	}

	return col
}
