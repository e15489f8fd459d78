package api

import (
	"sync"

	"github.com/snakearcade/snake/rules"
)

// FrameHolder keeps every frame received from a spectator feed, in order.
type FrameHolder struct {
	sync.RWMutex
	frames    []rules.Frame
	first     chan struct{}
	firstOnce sync.Once
}

// NewFrameHolder returns an empty holder.
func NewFrameHolder() *FrameHolder {
	return &FrameHolder{first: make(chan struct{})}
}

// Append adds a frame to the end of the history.
func (fh *FrameHolder) Append(frame rules.Frame) {
	fh.Lock()
	defer fh.Unlock()

	fh.frames = append(fh.frames, frame)
	fh.firstOnce.Do(func() { close(fh.first) })
}

// Get returns the frame at index.
func (fh *FrameHolder) Get(index int) (rules.Frame, bool) {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return rules.Frame{}, false
	}

	return fh.frames[index], true
}

// InitialFrame is closed once the first frame has arrived.
func (fh *FrameHolder) InitialFrame() <-chan struct{} {
	return fh.first
}

// Count returns the number of frames held.
func (fh *FrameHolder) Count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
