package record

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/snakearcade/snake/rules"
)

func readLine(r *bufio.Reader, out interface{}) (bool, error) {
	bytes, err := r.ReadBytes('\n')
	eof := err == io.EOF

	if err != nil && !eof {
		return false, err
	}

	if err = json.Unmarshal(bytes, out); err != nil {
		return false, err
	}

	return !eof, nil
}

// Read parses a recording.
func Read(r io.Reader) (Info, []rules.Frame, error) {
	reader := bufio.NewReader(r)

	info := Info{}
	more, err := readLine(reader, &info)
	if err != nil {
		return Info{}, nil, errors.Wrap(err, "read header")
	}

	frames := []rules.Frame{}
	for more {
		if _, err := reader.Peek(1); err == io.EOF {
			break
		}

		f := rules.Frame{}
		more, err = readLine(reader, &f)
		if err != nil {
			return Info{}, nil, errors.Wrapf(err, "read frame %d", len(frames))
		}
		frames = append(frames, f)
	}

	return info, frames, nil
}

// ReadFile parses the recording stored at path.
func ReadFile(path string) (Info, []rules.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, nil, errors.Wrapf(err, "open recording %s", path)
	}
	defer f.Close()

	return Read(f)
}
