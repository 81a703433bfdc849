// Package clipboard copies command examples to the system clipboard and
// tracks the short-lived "copied" indicator shown after a copy.
package clipboard

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// FeedbackTimeout is how long the "copied" indicator stays up.
const FeedbackTimeout = 2 * time.Second

// Clipboard writes text to a clipboard.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard using the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Copier copies text and remembers what was copied until the feedback
// timeout passes. Write failures are logged and swallowed: a failed copy
// never surfaces as an error, it just shows no indicator.
type Copier struct {
	cb      Clipboard
	timeout time.Duration
	log     *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	copied   string
	copiedAt time.Time
	ok       bool
}

// NewCopier returns a Copier. A zero timeout uses FeedbackTimeout.
func NewCopier(cb Clipboard, timeout time.Duration, logger *zap.Logger) *Copier {
	if timeout <= 0 {
		timeout = FeedbackTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{cb: cb, timeout: timeout, log: logger, now: time.Now}
}

// SetClock replaces the time source. Tests use it to step past the timeout.
func (c *Copier) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Copy writes text to the clipboard and reports whether it succeeded.
func (c *Copier) Copy(text string) bool {
	if err := c.cb.Copy(text); err != nil {
		c.log.Warn("clipboard write failed", zap.Error(err))
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.copied = text
	c.copiedAt = c.now()
	c.ok = true
	return true
}

// Copied returns the most recently copied text while its indicator is
// still showing.
func (c *Copier) Copied() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ok {
		return "", false
	}
	if c.now().Sub(c.copiedAt) >= c.timeout {
		c.copied, c.ok = "", false
		return "", false
	}
	return c.copied, true
}

// Timeout is the configured feedback duration.
func (c *Copier) Timeout() time.Duration { return c.timeout }
