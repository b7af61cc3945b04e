package puzzle

import (
	"fmt"
	"io/fs"
)

// Loader reads day inputs from a filesystem: day<N>.txt, or
// day<N>.test.txt in example mode.
type Loader struct {
	FS      fs.FS
	Example bool
}

// Path is the file name for day under the loader's mode.
func (l Loader) Path(day int) string {
	if l.Example {
		return fmt.Sprintf("day%d.test.txt", day)
	}

	return fmt.Sprintf("day%d.txt", day)
}

// Load reads the input for day. A missing file wraps fs.ErrNotExist.
func (l Loader) Load(day int) (*Input, error) {
	b, err := fs.ReadFile(l.FS, l.Path(day))
	if err != nil {
		return nil, fmt.Errorf("puzzle: load day %d: %w", day, err)
	}
	in := NewInput(string(b))
	in.Day = day
	in.Example = l.Example

	return in, nil
}
