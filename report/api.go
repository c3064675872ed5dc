package report

import (
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is to verbose.  These provide additional information about the
// compilation process to the user so as to make the tool more friendly.

// startTime is the time the compile header was displayed.
var startTime time.Time

// ReportCompileHeader reports the pre-check header: information about the
// tool's current configuration (version, project, associativity mode).
func ReportCompileHeader(version, project, assoc string) {
	startTime = time.Now()

	if rep.logLevel == LogLevelVerbose {
		fmt.Print("lait ")
		InfoColorFG.Print("v" + version)
		fmt.Print(" -- project: ")
		InfoColorFG.Print(project)
		fmt.Print(" -- associativity: ")
		InfoColorFG.Println(assoc)
	}
}

// ReportCompilationFinished reports the concluding message for a check.  The
// file count is the number of source files that were processed.
func ReportCompilationFinished(fileCount int) {
	if rep.logLevel != LogLevelVerbose {
		return
	}

	fmt.Print("\n")

	if !AnyErrors() {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Printf("(%d files checked in %.3fs)\n", fileCount, time.Since(startTime).Seconds())
}
