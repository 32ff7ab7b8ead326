package shell

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// CreateDir creates path. With CreateRecursive missing parents are created
// and an existing directory is not an error; without it exactly one level is
// created and an existing path fails.
//
//	$ mkdir [-p] path
func (s *Shell) CreateDir(path string, flags CreateFlags) error {
	path = s.resolve(path)

	var err error
	if flags.Contains(CreateRecursive) {
		err = s.fs.MkdirAll(path, dirPerm)
	} else {
		err = s.fs.Mkdir(path, dirPerm)
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

// Write replaces the content of path, creating the file if needed. The
// write is not atomic.
//
//	$ cat << EOF > path
func (s *Shell) Write(path string, content []byte) error {
	if err := afero.WriteFile(s.fs, s.resolve(path), content, filePerm); err != nil {
		return ioError(err)
	}
	return nil
}

// WriteString is Write for string content.
func (s *Shell) WriteString(path, content string) error {
	return s.Write(path, []byte(content))
}

// Read returns the content of path.
func (s *Shell) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.resolve(path))
	if err != nil {
		return nil, ioError(err)
	}
	return data, nil
}

// Exists reports whether path exists.
func (s *Shell) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, s.resolve(path))
	if err != nil {
		return false, ioError(err)
	}
	return ok, nil
}

// Remove deletes path. Directories need RemoveRecursive unless empty. A
// missing path is not an error.
//
//	$ rm [-r] path
func (s *Shell) Remove(path string, flags RemoveFlags) error {
	path = s.resolve(path)

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return ioError(err)
	}

	if info.IsDir() && flags.Contains(RemoveRecursive) {
		err = s.fs.RemoveAll(path)
	} else {
		err = s.fs.Remove(path)
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

// ReadDir returns the sorted entry names of the directory at path.
func (s *Shell) ReadDir(path string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.resolve(path))
	if err != nil {
		return nil, ioError(err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}
