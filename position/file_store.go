package position

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yllada/exforms/common"
)

// positionFile is the on-disk layout: a single position element with the
// coordinates kept as text so malformed values can be told apart from
// unreadable files.
type positionFile struct {
	Position struct {
		Left string `yaml:"left"`
		Top  string `yaml:"top"`
	} `yaml:"position"`
}

// FileStore keeps one YAML file per window name in a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultDir returns <config dir>/positions.
func DefaultDir() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.PositionsDirName), nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+common.PositionExtension)
}

// Load reads the record for name.
func (s *FileStore) Load(name string) (Record, error) {
	if err := validName(name); err != nil {
		return Record{}, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, common.WrapError(common.ErrPositionNotFound, name)
		}
		return Record{}, fmt.Errorf("failed to read position file: %w", err)
	}

	var pf positionFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return Record{}, common.WrapError(common.ErrMalformedPosition, err.Error())
	}
	return parseRecord(name, pf.Position.Left, pf.Position.Top)
}

// Save writes the record for name, creating the directory when needed.
func (s *FileStore) Save(name string, rec Record) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("error creating positions directory: %w", err)
	}

	var pf positionFile
	pf.Position.Left = fmt.Sprint(rec.Left)
	pf.Position.Top = fmt.Sprint(rec.Top)

	var node yaml.Node
	if err := node.Encode(&pf); err != nil {
		return fmt.Errorf("error serializing position: %w", err)
	}
	unquoteScalars(&node)

	data, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("error serializing position: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0600); err != nil {
		return fmt.Errorf("error saving position: %w", err)
	}
	return nil
}

// unquoteScalars writes the coordinates as plain integers instead of quoted strings.
func unquoteScalars(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		n.Style = 0
		n.Tag = ""
	}
	for _, child := range n.Content {
		unquoteScalars(child)
	}
}

// Delete removes the record for name.
func (s *FileStore) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error deleting position: %w", err)
	}
	return nil
}

// List loads every record in the directory. Unreadable records are skipped.
func (s *FileStore) List() (map[string]Record, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Record{}, nil
		}
		return nil, fmt.Errorf("error listing positions: %w", err)
	}

	records := make(map[string]Record)
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), common.PositionExtension)
		if !ok || entry.IsDir() {
			continue
		}
		rec, err := s.Load(name)
		if err != nil {
			common.LogDebug("skipping position file %s: %v", entry.Name(), err)
			continue
		}
		records[name] = rec
	}
	return records, nil
}
