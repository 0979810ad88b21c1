package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Local struct {
	dir    string
	prefix string
}

func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{
		dir:    dir,
		prefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

func (l *Local) Dir() string { return l.dir }

func (l *Local) Prefix() string { return l.prefix }

func (l *Local) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	name := path.Base(key)
	if err := os.WriteFile(filepath.Join(l.dir, name), body, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.prefix + "/" + name, nil
}

func (l *Local) Delete(_ context.Context, url string) error {
	if !l.Owns(url) {
		return nil
	}
	err := os.Remove(filepath.Join(l.dir, path.Base(url)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (l *Local) Owns(url string) bool {
	name, ok := strings.CutPrefix(url, l.prefix+"/")
	return ok && name != "" && !strings.Contains(name, "/")
}
