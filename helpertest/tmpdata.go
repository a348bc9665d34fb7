package helpertest

import (
	"os"
	"path/filepath"
	"strings"
)

// TmpFolder is a temporary directory, creation errors are kept in Error
type TmpFolder struct {
	Path  string
	Error error
}

// TmpFile is a file written to a TmpFolder
type TmpFile struct {
	Path  string
	Error error
}

// NewTmpFolder creates a new temporary directory, its name starts with `prefix`
func NewTmpFolder(prefix string) *TmpFolder {
	if len(prefix) == 0 {
		prefix = "domainextractor"
	}

	path, err := os.MkdirTemp("", prefix)

	return &TmpFolder{Path: path, Error: err}
}

// Clean removes the directory and everything in it
func (tf *TmpFolder) Clean() error {
	if len(tf.Path) == 0 {
		return nil
	}

	return os.RemoveAll(tf.Path)
}

// CreateStringFile writes `lines` separated by line breaks to `name`
func (tf *TmpFolder) CreateStringFile(name string, lines ...string) *TmpFile {
	path := tf.JoinPath(name)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		return &TmpFile{Error: err}
	}

	return &TmpFile{Path: path}
}

// JoinPath returns the path of `name` inside the directory
func (tf *TmpFolder) JoinPath(name string) string {
	return filepath.Join(tf.Path, name)
}
