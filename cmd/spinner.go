package cmd

import (
	"fmt"
	"time"

	"github.com/PolarWolf314/nstconf/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message unless
// verbose or debug output is on. The returned cleanup stops it and prints
// FinalMSG, so FinalMSG does not need a trailing newline.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Debugf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := s.FinalMSG
		s.FinalMSG = ""
		if quiet {
			s.Stop()
		}
		if finalMsg != "" {
			fmt.Print(ui.EnsureNewline(finalMsg))
		}
	}

	return s, cleanup
}

// restartNotice returns the line printed after changing a setting that
// needs a restart.
func restartNotice() string {
	return ui.Warning.Sprint("⚠") + " Restart nestopia for this change to take effect"
}
