package viewstate

import (
	"slices"
	"strings"
)

// Classes is the set of layout classes for one view state. Templates read
// these instead of branching on the state themselves.
type Classes struct {
	Container string
	Section   string
	Header    string
	FullWidth string
	Sidebar   string
	Main      string
}

var (
	visibleClasses = Classes{
		Container: "container",
		Section:   "section",
		Header:    "page-header",
		FullWidth: "readable",
		Sidebar:   "sidebar",
		Main:      "main",
	}
	hiddenClasses = Classes{
		Container: "container container--wide",
		Section:   "section section--compact",
		Header:    "page-header page-header--compact",
		FullWidth: "readable readable--wide",
		Sidebar:   "sidebar sidebar--collapsed",
		Main:      "main main--wide",
	}
)

// ClassesFor returns the layout classes for s.
func ClassesFor(s State) Classes {
	if s.SidebarHidden {
		return hiddenClasses
	}
	return visibleClasses
}

// ClassSwap is one layout element's change between the two states: an
// element carrying Base gains Hidden in fullscreen mode and loses it when
// the sidebar comes back.
type ClassSwap struct {
	Base   string   `json:"base"`
	Hidden []string `json:"hidden"`
}

// Swaps lists the class changes a page script applies when it toggles the
// state in place, derived from the two class sets.
func Swaps() []ClassSwap {
	visible, hidden := visibleClasses.list(), hiddenClasses.list()
	out := make([]ClassSwap, 0, len(visible))
	for i, v := range visible {
		base := strings.Fields(v)
		var extra []string
		for _, c := range strings.Fields(hidden[i]) {
			if !slices.Contains(base, c) {
				extra = append(extra, c)
			}
		}
		out = append(out, ClassSwap{Base: base[0], Hidden: extra})
	}
	return out
}

func (c Classes) list() []string {
	return []string{c.Container, c.Section, c.Header, c.FullWidth, c.Sidebar, c.Main}
}
