package shader

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/logger"
)

// Watcher reports shader programs whose sources changed in a directory.
// Events arrive on a background goroutine; the render thread collects them with
// Drain and performs the GL work itself.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
	log     *zap.Logger
}

// NewWatcher starts watching dir for .vert and .frag writes.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     logger.Named("shader.watch"),
	}
	w.wg.Add(1)
	go w.run()

	w.log.Info("watching shader sources", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			name, ok := programName(e.Name)
			if !ok {
				continue
			}
			w.log.Debug("shader source changed", zap.String("file", e.Name))
			select {
			case w.changes <- name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Changes returns the channel of changed program names.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Drain returns the distinct program names changed since the last call without blocking.
func (w *Watcher) Drain() []string {
	var names []string
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Close stops the watcher goroutine and releases the OS watch.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// programName maps a shader source path to its program name.
func programName(file string) (string, bool) {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	if ext != VertexExt && ext != FragmentExt {
		return "", false
	}
	return strings.TrimSuffix(base, ext), true
}
