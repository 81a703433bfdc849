package content

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a Library whenever a lesson file in dir changes.
type Watcher struct {
	w    *fsnotify.Watcher
	lib  *Library
	log  *zap.Logger
	done chan struct{}
	once sync.Once
}

// Watch starts watching dir. Call Close to stop.
func Watch(dir string, lib *Library, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{w: fw, lib: lib, log: logger, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Ext(ev.Name) != ".md" {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := w.lib.Reload(); err != nil {
				w.log.Warn("lesson reload failed; keeping previous content",
					zap.String("file", ev.Name), zap.Error(err))
				continue
			}
			w.log.Info("lessons reloaded", zap.String("file", ev.Name))
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("lesson watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.w.Close()
		<-w.done
	})
	return err
}
