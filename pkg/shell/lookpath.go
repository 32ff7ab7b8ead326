package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// lookPath finds program the way the child would: through the PATH of env,
// never the live process PATH. Names containing a separator are returned as
// is. Relative PATH entries are taken relative to dir.
func lookPath(program string, env *Env, dir string) (string, error) {
	if strings.ContainsRune(program, '/') || strings.ContainsRune(program, filepath.Separator) {
		return program, nil
	}

	pathList, _ := env.Lookup("PATH")
	for _, d := range filepath.SplitList(pathList) {
		if d == "" {
			d = "."
		}
		if !filepath.IsAbs(d) {
			d = filepath.Join(dir, d)
		}
		for _, candidate := range candidates(filepath.Join(d, program), env) {
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}
	return "", &exec.Error{Name: program, Err: exec.ErrNotFound}
}

// candidates lists the file names tried for base. On Windows the PATHEXT
// extensions are appended.
func candidates(base string, env *Env) []string {
	if runtime.GOOS != "windows" {
		return []string{base}
	}

	exts, ok := env.Lookup("PATHEXT")
	if !ok || exts == "" {
		exts = ".com;.exe;.bat;.cmd"
	}
	list := []string{base}
	for _, ext := range strings.Split(exts, ";") {
		if ext != "" {
			list = append(list, base+strings.ToLower(ext))
		}
	}
	return list
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
