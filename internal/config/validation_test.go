package config

import "testing"

func TestValidateRelativePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "dist", false},
		{"nested", "out/dist", false},
		{"invalid - empty", "", true},
		{"invalid - absolute", "/tmp/dist", true},
		{"invalid - parent", "../dist", true},
		{"invalid - bare parent", "..", true},
		{"invalid - blank", "  ", true},
		{"invalid - escapes after clean", "a/../../dist", true},
		{"invalid - current dir", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelativePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
