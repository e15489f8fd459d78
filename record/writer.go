// Package record saves games as JSON lines files and reads them back.
//
// The first line of a recording is an Info header; every following line is
// one rules.Frame.
package record

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/snakearcade/snake/rules"
	"github.com/snakearcade/snake/version"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

// Info describes the board a recording was made on.
type Info struct {
	Version  string `json:"version"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CellSize int    `json:"cellSize"`
}

// Recorder is a worker.FrameSink appending every frame to a file.
type Recorder struct {
	mu     sync.Mutex
	w      writer
	path   string
	frames int
	err    error
}

// Create starts a new recording at path. It fails if the file exists.
func Create(path string) (*Recorder, error) {
	w, err := openFileWriter(path, true)
	if err != nil {
		return nil, errors.Wrapf(err, "create recording %s", path)
	}

	info := Info{
		Version:  version.Version,
		Width:    rules.GridWidth,
		Height:   rules.GridHeight,
		CellSize: rules.CellSize,
	}
	if err := writeLine(w, &info); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "write header %s", path)
	}

	return &Recorder{w: w, path: path}, nil
}

// Publish appends frame. After the first write error the recorder stops
// writing; the error is returned by Close.
func (r *Recorder) Publish(frame rules.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil || r.w == nil {
		return
	}
	if err := writeLine(r.w, &frame); err != nil {
		r.err = errors.Wrapf(err, "write turn %d", frame.Turn)
		log.WithError(err).WithField("path", r.path).Error("recording stopped")
		return
	}
	r.frames++
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close closes the file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return r.err
	}
	err := r.w.Close()
	r.w = nil
	if r.err != nil {
		return r.err
	}
	return err
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func appendOnlyFileWriter(path string, mustCreate bool) (writer, error) {
	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE
	if mustCreate {
		flags |= os.O_EXCL
	}
	return os.OpenFile(path, flags, 0644)
}
