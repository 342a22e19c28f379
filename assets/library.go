package assets

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("assets: sprite not found")

// Library resolves tile sprite names against a directory of PNG files.
// Names may be bare file names, assets-relative paths or absolute paths.
type Library struct {
	fsys  fs.FS
	names map[string]string
}

// Open indexes every PNG under dir.
func Open(dir string) (*Library, error) {
	return New(os.DirFS(dir))
}

func New(fsys fs.FS) (*Library, error) {
	lib := &Library{fsys: fsys, names: map[string]string{}}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".png") {
			return nil
		}
		lib.names[p] = p
		if _, ok := lib.names[path.Base(p)]; !ok {
			lib.names[path.Base(p)] = p
		}
		return nil
	})
	return lib, err
}

// Names lists the indexed sprite paths.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.names))
	for k, v := range l.names {
		if k == v {
			out = append(out, v)
		}
	}
	return out
}

func (l *Library) Resolve(name string) (string, bool) {
	clean := cleanAssetPath(name)
	if p, ok := l.names[clean]; ok {
		return p, true
	}
	p, ok := l.names[path.Base(clean)]
	return p, ok
}

// LoadFile reads a sprite's bytes.
func (l *Library) LoadFile(name string) ([]byte, error) {
	p, ok := l.Resolve(name)
	if !ok {
		return nil, ErrNotFound
	}
	return fs.ReadFile(l.fsys, p)
}

// LoadImage decodes a sprite.
func (l *Library) LoadImage(name string) (image.Image, error) {
	b, err := l.LoadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(p)
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
