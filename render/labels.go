package render

// Labels caches rendered text by slot. Each slot holds one label; drawing
// different text into a slot releases the label it held.
type Labels[T any] struct {
	draw    func(string) T
	release func(T)
	slots   map[string]label[T]
}

type label[T any] struct {
	text string
	img  T
}

// NewLabels returns a cache rendering text with draw and freeing replaced
// labels with release.
func NewLabels[T any](draw func(string) T, release func(T)) *Labels[T] {
	return &Labels[T]{
		draw:    draw,
		release: release,
		slots:   map[string]label[T]{},
	}
}

// Get returns the label for text in slot, rendering it if the slot holds
// something else.
func (l *Labels[T]) Get(slot, text string) T {
	if cur, ok := l.slots[slot]; ok {
		if cur.text == text {
			return cur.img
		}
		l.release(cur.img)
	}
	img := l.draw(text)
	l.slots[slot] = label[T]{text: text, img: img}
	return img
}

// Len returns the number of labels held.
func (l *Labels[T]) Len() int {
	return len(l.slots)
}
