// Package grub implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package grub

import (
	"fmt"
	"io"
	"os"

	"go.followtheprocess.codes/grub/internal/render"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/log"
	"golang.org/x/term"
)

// Styles.
const (
	// title is the style used for the program name in the banner.
	title = hue.Cyan | hue.Bold

	// dimmed is the style used for informational content like the banner tagline.
	dimmed = hue.BrightBlack | hue.Italic
)

// Grub represents the grub program.
type Grub struct {
	stdin   io.Reader   // Postcodes are read from here in interactive mode
	stdout  io.Writer   // Normal program output is written here
	stderr  io.Writer   // Logs and errors are written here
	logger  *log.Logger // The logger for the application
	version string      // The app version
}

// New returns a new [Grub].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Grub {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level))

	return Grub{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
	}
}

// banner prints the introductory banner shown when the interactive loop starts.
func (g Grub) banner() {
	fmt.Fprintf(g.stdout, "%s %s\n", title.Text("grub "+g.version), dimmed.Text("the best rated takeaways near any UK postcode"))
	fmt.Fprintln(g.stdout)
}

// palette returns the rating palette for the console, colours are only used when
// stdout is a terminal and the user hasn't asked for none.
func (g Grub) palette() render.Palette {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(g.stdout) {
		return nil
	}

	return render.DefaultPalette()
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
