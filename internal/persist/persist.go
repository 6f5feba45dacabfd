// Package persist saves rendered restaurant listings to timestamped text files.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.followtheprocess.codes/grub/internal/postcode"
)

// DefaultDir is the directory, relative to the working directory, that results are saved in.
const DefaultDir = "FetchedRestaurants"

// timestampFormat is yyyyMMdd_HHmmss.
const timestampFormat = "20060102_150405"

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Persister writes rendered results to files in a single directory.
type Persister struct {
	// Now returns the current time, used to timestamp filenames, nil means [time.Now]
	Now func() time.Time

	// Dir is the directory files are written to, it is created on demand
	Dir string
}

// New returns a [Persister] saving to dir using the system clock.
func New(dir string) Persister {
	return Persister{
		Dir: dir,
		Now: time.Now,
	}
}

// Filename returns the name of the file results for postcode are saved to at time t,
// e.g. "restaurants_EC4M7RF_20250401_184200.txt".
func Filename(code string, t time.Time) string {
	return fmt.Sprintf("restaurants_%s_%s.txt", postcode.Compact(code), t.Format(timestampFormat))
}

// Save writes text as the entire contents of a new results file for postcode, returning
// the path of the file.
//
// The directory is created if it does not exist. Two saves for the same postcode within
// the same second share a filename, the later one wins.
func (p Persister) Save(text, code string) (string, error) {
	if err := os.MkdirAll(p.Dir, dirPerms); err != nil {
		return "", fmt.Errorf("could not create output directory %s: %w", p.Dir, err)
	}

	now := p.Now
	if now == nil {
		now = time.Now
	}

	path := filepath.Join(p.Dir, Filename(code, now()))

	if err := os.WriteFile(path, []byte(text), filePerms); err != nil {
		return "", fmt.Errorf("could not write results file: %w", err)
	}

	return path, nil
}
