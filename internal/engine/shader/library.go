package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/logger"
)

// Source file extensions. A program named "lit" is built from lit.vert and lit.frag.
const (
	VertexExt   = ".vert"
	FragmentExt = ".frag"
)

// Library compiles named programs from a source tree and recompiles them on demand.
// Sources are read from an override directory when one is set and the file exists
// there, otherwise from the embedded tree.
type Library struct {
	embedded    fs.FS
	overrideDir string
	programs    map[string]*Program
	log         *zap.Logger
}

// NewLibrary creates a library over an embedded source tree and an optional override dir.
func NewLibrary(embedded fs.FS, overrideDir string) *Library {
	return &Library{
		embedded:    embedded,
		overrideDir: overrideDir,
		programs:    make(map[string]*Program),
		log:         logger.Named("shader"),
	}
}

// OverrideDir returns the directory shader sources are preferred from, if any.
func (l *Library) OverrideDir() string {
	return l.overrideDir
}

// Get returns the named program, compiling it on first use.
func (l *Library) Get(name string) (*Program, error) {
	if p, ok := l.programs[name]; ok {
		return p, nil
	}

	vert, frag, err := l.sources(name)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(name, vert, frag)
	if err != nil {
		return nil, err
	}
	l.programs[name] = p
	l.log.Debug("compiled program", zap.String("name", name), zap.Uint32("id", p.ID()))
	return p, nil
}

// Reload recompiles a previously loaded program in place. When compilation fails
// the previous program stays active and the error is returned.
func (l *Library) Reload(name string) error {
	p, ok := l.programs[name]
	if !ok {
		return nil
	}

	vert, frag, err := l.sources(name)
	if err != nil {
		return err
	}
	id, err := CompileProgram(vert, frag)
	if err != nil {
		return fmt.Errorf("program %s: %w", name, err)
	}
	p.replace(id)
	l.log.Info("reloaded program", zap.String("name", name))
	return nil
}

// Loaded reports whether name has been compiled.
func (l *Library) Loaded(name string) bool {
	_, ok := l.programs[name]
	return ok
}

// Destroy deletes every compiled program.
func (l *Library) Destroy() {
	for name, p := range l.programs {
		p.Destroy()
		delete(l.programs, name)
	}
}

func (l *Library) sources(name string) (vert, frag string, err error) {
	vert, errVert := l.readSource(name + VertexExt)
	frag, errFrag := l.readSource(name + FragmentExt)
	if err := multierr.Combine(errVert, errFrag); err != nil {
		return "", "", fmt.Errorf("program %s: %w", name, err)
	}
	return vert, frag, nil
}

// readSource prefers the override directory and falls back to the embedded tree.
func (l *Library) readSource(file string) (string, error) {
	if l.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(l.overrideDir, file))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	if l.embedded == nil {
		return "", fmt.Errorf("%s: %w", file, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(l.embedded, file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
