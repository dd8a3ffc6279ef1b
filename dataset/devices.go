package dataset

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ReadDeviceList reads one device name per line. Surrounding whitespace is
// trimmed and blank lines are skipped; order is preserved.
func ReadDeviceList(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Err: err}
	}
	return names, nil
}

// LoadDeviceList reads a device list file. See [ReadDeviceList].
func LoadDeviceList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	names, err := ReadDeviceList(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return names, nil
}
