package viewstate

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Controller keeps a page shell in step with the fullscreen parameter.
//
// It never stores the view state: CurrentlyHidden always reads the
// Location. While mounted it owns two document resources, the keyboard
// listener and the root-class marker, and releases both on Unmount.
// A Controller is not safe for concurrent use.
type Controller struct {
	loc      Location
	doc      Document
	shortcut Shortcut
	log      *zap.Logger

	id        string
	mounted   bool
	marked    bool
	removeKey func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithShortcut sets the key combination that toggles the sidebar.
func WithShortcut(s Shortcut) Option {
	return func(c *Controller) { c.shortcut = s }
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func NewController(loc Location, doc Document, opts ...Option) *Controller {
	c := &Controller{
		loc:      loc,
		doc:      doc,
		shortcut: DefaultShortcut,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentlyHidden reports whether the sidebar is hidden at the current URL.
func (c *Controller) CurrentlyHidden() bool {
	return FromURL(c.loc.URL()).SidebarHidden
}

// State returns the state at the current URL.
func (c *Controller) State() State {
	return FromURL(c.loc.URL())
}

// Mounted reports whether the controller holds its document resources.
func (c *Controller) Mounted() bool { return c.mounted }

// Mount attaches the keyboard listener and applies the root marker for the
// current URL. Mounting twice does not add a second listener. The returned
// func calls Unmount and is meant to be deferred.
func (c *Controller) Mount() (release func()) {
	if !c.mounted {
		c.mounted = true
		c.id = uuid.NewString()
		c.removeKey = c.doc.AddKeyListener(c.shortcut, c.onKey)
		c.log.Debug("view controller mounted",
			zap.String("view_id", c.id),
			zap.String("shortcut", c.shortcut.String()))
	}
	c.sync()
	return c.Unmount
}

// Unmount removes the keyboard listener and the root marker.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	if c.removeKey != nil {
		c.removeKey()
		c.removeKey = nil
	}
	c.exitFullscreen()
	c.mounted = false
	c.log.Debug("view controller unmounted", zap.String("view_id", c.id))
}

// Toggle flips the view state by rewriting the URL in place.
func (c *Controller) Toggle() {
	target := ToggleURL(c.loc.URL())
	c.loc.Replace(target)
	c.log.Debug("view state toggled",
		zap.String("view_id", c.id),
		zap.String("target", target))
	c.sync()
}

// Navigated re-derives the marker after the URL changed out of band, such
// as a pasted link or history navigation.
func (c *Controller) Navigated() {
	c.sync()
}

func (c *Controller) onKey(ev KeyEvent) {
	if ev.Editable {
		return
	}
	c.Toggle()
}

func (c *Controller) sync() {
	if !c.mounted {
		return
	}
	if c.CurrentlyHidden() {
		c.enterFullscreen()
	} else {
		c.exitFullscreen()
	}
}

// enterFullscreen and exitFullscreen are the only writers of the marker.
func (c *Controller) enterFullscreen() {
	if c.marked {
		return
	}
	c.doc.AddRootClass(RootClass)
	c.marked = true
}

func (c *Controller) exitFullscreen() {
	if !c.marked {
		return
	}
	c.doc.RemoveRootClass(RootClass)
	c.marked = false
}
