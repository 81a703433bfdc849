package viewstate

import (
	"net/url"
	"strings"
)

// Location is the routing layer the controller reads and writes.
type Location interface {
	// URL returns the current location.
	URL() *url.URL
	// Replace moves to target without adding a history entry.
	Replace(target string)
}

// Document is the page shell the controller decorates while mounted.
type Document interface {
	AddRootClass(name string)
	RemoveRootClass(name string)
	// AddKeyListener registers fn for s and returns a func that removes it.
	AddKeyListener(s Shortcut, fn func(KeyEvent)) (remove func())
}

// Shortcut is a key combination.
type Shortcut struct {
	Key  string
	Ctrl bool
}

// DefaultShortcut toggles fullscreen mode.
var DefaultShortcut = Shortcut{Key: "F11"}

// String renders the shortcut the way the browser script parses it.
func (s Shortcut) String() string {
	if s.Ctrl {
		return "Ctrl+" + s.Key
	}
	return s.Key
}

// ParseShortcut parses "F11" or "Ctrl+F" style combinations. Single
// letter keys are upper-cased, so "Ctrl+f" and "Ctrl+F" are the same
// shortcut.
func ParseShortcut(v string) (Shortcut, bool) {
	s := Shortcut{Key: v}
	if rest, ok := strings.CutPrefix(v, "Ctrl+"); ok {
		s = Shortcut{Key: rest, Ctrl: true}
	}
	if s.Key == "" {
		return Shortcut{}, false
	}
	if len(s.Key) == 1 {
		s.Key = strings.ToUpper(s.Key)
	}
	return s, true
}

// Matches reports whether key, as a browser reports it, is this
// shortcut's key. Single character keys compare without case.
func (s Shortcut) Matches(key string, ctrl bool) bool {
	if ctrl != s.Ctrl {
		return false
	}
	if len(s.Key) == 1 {
		return strings.EqualFold(key, s.Key)
	}
	return key == s.Key
}

// KeyEvent is a key press delivered to a listener.
type KeyEvent struct {
	Shortcut Shortcut
	// Editable is true when focus is in a text input, textarea, select,
	// or contenteditable element.
	Editable bool
}

// RequestLocation is a Location over a single URL. Replace records the
// target; callers redirect to Current() afterwards.
type RequestLocation struct {
	u        *url.URL
	replaced bool
}

// NewRequestLocation copies u so Replace never mutates the caller's URL.
func NewRequestLocation(u *url.URL) *RequestLocation {
	cp := *u
	return &RequestLocation{u: &cp}
}

func (l *RequestLocation) URL() *url.URL { return l.u }

func (l *RequestLocation) Replace(target string) {
	next, err := l.u.Parse(target)
	if err != nil {
		return
	}
	l.u = next
	l.replaced = true
}

// Current is the path-relative form of the location.
func (l *RequestLocation) Current() string {
	return relative(l.u, l.u.RawQuery)
}

// Replaced reports whether Replace has been called.
func (l *RequestLocation) Replaced() bool { return l.replaced }
