package validation

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		{"simple name", "web", false, ""},
		{"with hyphen", "my-app", false, ""},
		{"with underscore", "my_app", false, ""},
		{"with dot", "my.app", false, ""},
		{"uppercase", "MyApp", false, ""},
		{"numeric start", "1app", false, ""},

		{"empty", "", true, "cannot be empty"},
		{"path traversal", "../etc", true, "path traversal"},
		{"double dot only", "..", true, "path traversal"},
		{"slash", "a/b", true, "invalid name format"},
		{"starts with hyphen", "-app", true, "invalid name format"},
		{"starts with dot", ".app", true, "invalid name format"},
		{"spaces", "my app", true, "invalid name format"},
		{"too long", strings.Repeat("a", 129), true, "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"latest", "latest", false},
		{"semver", "v1.2.3", false},
		{"underscore start", "_dev", false},
		{"mixed", "Build-12_rc.1", false},
		{"empty", "", true},
		{"colon", "a:b", true},
		{"slash", "a/b", true},
		{"hyphen start", "-x", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePathWithinRoot(t *testing.T) {
	root := filepath.Join("/", "srv", "corral")

	assert.NoError(t, ValidatePathWithinRoot(root, filepath.Join(root, "containers", "web.yaml")))
	assert.NoError(t, ValidatePathWithinRoot(root, root))
	assert.Error(t, ValidatePathWithinRoot(root, filepath.Join(root, "..", "etc")))
	assert.Error(t, ValidatePathWithinRoot(root, root+"-other"))
}

func TestExpandHome(t *testing.T) {
	home := filepath.Join("/", "home", "user")

	assert.Equal(t, home, ExpandHome("~", home))
	assert.Equal(t, filepath.Join(home, ".config", "corral"), ExpandHome("~/.config/corral", home))
	assert.Equal(t, "/etc/corral", ExpandHome("/etc/corral", home))
	assert.Equal(t, "relative/dir", ExpandHome("relative/dir", home))
}
