package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/rotisserie/eris"

	"github.com/taski-rs/shell/pkg/shell"
)

func TestSplitAtDash(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		dash      int
		wantNames []string
		wantExtra []string
	}{
		{"no dash", []string{"build", "test"}, -1, []string{"build", "test"}, nil},
		{"dash after tasks", []string{"test", "--nocapture"}, 1, []string{"test"}, []string{"--nocapture"}},
		{"only extra", []string{"-q"}, 0, []string{}, []string{"-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, extra := splitAtDash(tt.args, tt.dash)
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("splitAtDash() names = %v, want %v", names, tt.wantNames)
			}
			if !reflect.DeepEqual(extra, tt.wantExtra) {
				t.Errorf("splitAtDash() extra = %v, want %v", extra, tt.wantExtra)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(errors.New("plain")); got != 1 {
		t.Errorf("exitCode(plain) = %d, want 1", got)
	}

	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}

	sh := shell.NewWithEnv(shell.NewEnv(
		"CARGO_MANIFEST_DIR="+filepath.Join(t.TempDir(), "xtask"),
		"PATH="+os.Getenv("PATH"),
	))
	err := sh.Subprocess("sh").Args("-c", "exit 4").Silent().Run()
	if err == nil {
		t.Fatal("Run() error = nil, want exit failure")
	}

	if got := exitCode(eris.Wrap(err, "task build failed")); got != 4 {
		t.Errorf("exitCode(wrapped) = %d, want 4", got)
	}
}
