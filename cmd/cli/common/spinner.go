package common

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
)

// StartProgressSpinner shows a spinner on stderr while stdout is a terminal, so that piped
// output stays clean.
func StartProgressSpinner(prefix string) (stop func()) {
	if !utils.IsTerminalOutput() {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[9], time.Millisecond*200, spinner.WithWriter(os.Stderr))
	s.Prefix = prefix + " "
	s.Start()

	return s.Stop
}
