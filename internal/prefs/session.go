package prefs

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jask/specialdesk/internal/session"
)

type sessionFile struct {
	Values map[string]string `toml:"values"`
}

// SessionFile stores session keys in a TOML file. Every write replaces the
// whole file through a rename, so readers see either the old or the new pair.
type SessionFile struct {
	path string
}

func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

func (f *SessionFile) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sf, err := f.read()
	if err != nil {
		return nil, err
	}
	return sf.Values, nil
}

func (f *SessionFile) Put(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sf, err := f.readForWrite()
	if err != nil {
		return err
	}
	maps.Copy(sf.Values, values)
	return f.write(sf)
}

func (f *SessionFile) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sf, err := f.readForWrite()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(sf.Values, k)
	}
	return f.write(sf)
}

func (f *SessionFile) read() (sessionFile, error) {
	sf := sessionFile{Values: map[string]string{}}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sf, nil
		}
		return sf, err
	}
	if _, err := toml.Decode(string(data), &sf); err != nil {
		return sessionFile{Values: map[string]string{}}, fmt.Errorf("decode %s: %w: %w", f.path, session.ErrCorrupt, err)
	}
	if sf.Values == nil {
		sf.Values = map[string]string{}
	}
	return sf, nil
}

// readForWrite is read, except that an undecodable file counts as empty so the
// next write replaces it.
func (f *SessionFile) readForWrite() (sessionFile, error) {
	sf, err := f.read()
	if errors.Is(err, session.ErrCorrupt) {
		return sf, nil
	}
	return sf, err
}

func (f *SessionFile) write(sf sessionFile) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(tmp).Encode(sf); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("encode session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
