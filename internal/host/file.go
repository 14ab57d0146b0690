package host

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports navigation when the watched file is written,
// replaced or removed. The option file is the page the prompt was
// opened from; once it changes the shown tree is stale.
type FileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	session *Session
	errs    func(error)

	closeOnce sync.Once
	done      chan struct{}
}

// WatchFile starts watching path. The parent directory is watched so
// editors that save by rename are noticed too. onError receives watcher
// errors and may be nil.
func WatchFile(path string, onError func(error)) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	f := &FileWatcher{
		path:    abs,
		watcher: w,
		session: NewSession(),
		errs:    onError,
		done:    make(chan struct{}),
	}
	go f.loop()
	return f, nil
}

// Path returns the absolute path being watched.
func (f *FileWatcher) Path() string { return f.path }

// Subscribe registers fn until the returned func is called.
func (f *FileWatcher) Subscribe(fn func()) func() {
	return f.session.Subscribe(fn)
}

// Close stops the watcher. It is safe to call more than once.
func (f *FileWatcher) Close() error {
	var err error
	f.closeOnce.Do(func() {
		close(f.done)
		err = f.watcher.Close()
	})
	return err
}

func (f *FileWatcher) loop() {
	for {
		select {
		case <-f.done:
			return
		case e, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != f.path || e.Op == fsnotify.Chmod {
				continue
			}
			f.session.Navigate()
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			if f.errs != nil {
				f.errs(err)
			}
		}
	}
}
