package viewstate

import "slices"

// PageDocument is an in-memory Document for one rendered page. The layout
// reads its root classes and shortcuts when writing the HTML shell.
type PageDocument struct {
	classes   []string
	listeners []*listener
}

type listener struct {
	shortcut Shortcut
	fn       func(KeyEvent)
}

func NewPageDocument() *PageDocument {
	return &PageDocument{}
}

func (d *PageDocument) AddRootClass(name string) {
	if !slices.Contains(d.classes, name) {
		d.classes = append(d.classes, name)
	}
}

func (d *PageDocument) RemoveRootClass(name string) {
	d.classes = slices.DeleteFunc(d.classes, func(c string) bool { return c == name })
}

func (d *PageDocument) AddKeyListener(s Shortcut, fn func(KeyEvent)) func() {
	l := &listener{shortcut: s, fn: fn}
	d.listeners = append(d.listeners, l)
	return func() {
		d.listeners = slices.DeleteFunc(d.listeners, func(x *listener) bool { return x == l })
	}
}

// HasRootClass reports whether name is currently on the root.
func (d *PageDocument) HasRootClass(name string) bool {
	return slices.Contains(d.classes, name)
}

// RootClasses returns the root classes in the order they were added.
func (d *PageDocument) RootClasses() []string {
	return slices.Clone(d.classes)
}

// Shortcuts returns the shortcuts with a registered listener.
func (d *PageDocument) Shortcuts() []Shortcut {
	out := make([]Shortcut, 0, len(d.listeners))
	for _, l := range d.listeners {
		if !slices.Contains(out, l.shortcut) {
			out = append(out, l.shortcut)
		}
	}
	return out
}

// ListenerCount is the number of registered key listeners.
func (d *PageDocument) ListenerCount() int { return len(d.listeners) }

// Dispatch delivers ev to every listener registered for its shortcut.
func (d *PageDocument) Dispatch(ev KeyEvent) {
	for _, l := range slices.Clone(d.listeners) {
		if l.shortcut.Matches(ev.Shortcut.Key, ev.Shortcut.Ctrl) {
			l.fn(ev)
		}
	}
}
