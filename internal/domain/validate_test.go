package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions_Minimal(t *testing.T) {
	opts, err := ValidateOptions(map[string]any{"name": "web", "image": "nginx"})
	require.NoError(t, err)

	assert.Equal(t, "web", opts.Name)
	assert.Equal(t, "nginx", opts.Image)
	assert.Equal(t, []string{}, opts.Mounts)
	assert.Equal(t, []string{}, opts.Environment)
	assert.Equal(t, "", opts.Group)
	assert.False(t, opts.ImageInsecure)
	assert.Equal(t, DefaultRestartPolicy, opts.RestartPolicy())
}

func TestValidateOptions_FullDefinition(t *testing.T) {
	raw := map[string]any{
		"name":               "web",
		"image":              "registry.local:5000/web:1.2",
		"image_args":         []any{"--verbose"},
		"cap_add":            []any{"NET_ADMIN"},
		"devices":            []any{"/dev/fuse"},
		"dns":                []any{"1.1.1.1"},
		"environment":        []any{"A=1", "B=2"},
		"env_file":           "/etc/web.env",
		"mounts":             []any{"/srv/web:/data:ro", "/tmp/x:/x"},
		"ports":              []any{"8080:80", "53:53/udp"},
		"tmpfs":              []any{"/run:size=64m"},
		"network":            "frontend",
		"restart":            "unless-stopped",
		"group":              "apps",
		"image_insecure":     true,
		"image_username":     "bob",
		"image_password":     "secret",
		"image_build_path":   "/src/web",
		"image_build_squash": true,
		"tag":                "2.0",
		"unknown_key":        42,
	}

	opts, err := ValidateOptions(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"--verbose"}, opts.ImageArgs)
	assert.Equal(t, []string{"A=1", "B=2"}, opts.Environment)
	assert.Equal(t, "/etc/web.env", opts.EnvFile)
	assert.Equal(t, []string{"/srv/web:/data:ro", "/tmp/x:/x"}, opts.Mounts)
	assert.Equal(t, "frontend", opts.Network)
	assert.Equal(t, "unless-stopped", opts.RestartPolicy())
	assert.Equal(t, "apps", opts.Group)
	assert.True(t, opts.ImageInsecure)
	assert.True(t, opts.ImageBuildSquash)
	assert.True(t, opts.BuildsLocally())
	assert.Equal(t, "2.0", opts.Tag)
}

func TestValidateOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		wantErr error
		msg     string
	}{
		{
			name:    "missing image",
			raw:     map[string]any{"name": "web"},
			wantErr: ErrMissingField,
			msg:     "'image' not defined in container options",
		},
		{
			name:    "missing name",
			raw:     map[string]any{"image": "nginx"},
			wantErr: ErrMissingField,
			msg:     "'name' not defined in container options",
		},
		{
			name:    "empty name",
			raw:     map[string]any{"name": "", "image": "nginx"},
			wantErr: ErrMissingField,
		},
		{
			name:    "list element type",
			raw:     map[string]any{"name": "web", "image": "nginx", "dns": []any{"8.8.8.8", 5}},
			wantErr: ErrListElement,
			msg:     "value at position '1' in key 'dns' has a type of 'int' when it should be 'string'",
		},
		{
			name:    "list given as string",
			raw:     map[string]any{"name": "web", "image": "nginx", "ports": "80:80"},
			wantErr: ErrFieldType,
			msg:     "'ports' is 'string' but needs to be 'list'",
		},
		{
			name:    "bool given as string",
			raw:     map[string]any{"name": "web", "image": "nginx", "image_insecure": "yes"},
			wantErr: ErrFieldType,
		},
		{
			name:    "string given as int",
			raw:     map[string]any{"name": "web", "image": 3},
			wantErr: ErrFieldType,
			msg:     "'image' is 'int' but needs to be 'string'",
		},
		{
			name:    "network and net",
			raw:     map[string]any{"name": "web", "image": "nginx", "network": "a", "net": "host"},
			wantErr: ErrNetworkConflict,
		},
		{
			name:    "mount with too many parts",
			raw:     map[string]any{"name": "web", "image": "nginx", "mounts": []any{"a:b:c:d"}},
			wantErr: ErrMalformedMount,
		},
		{
			name:    "mount with bad mode",
			raw:     map[string]any{"name": "web", "image": "nginx", "mounts": []any{"/a:/b:rx"}},
			wantErr: ErrMalformedMount,
		},
		{
			name:    "port without separator",
			raw:     map[string]any{"name": "web", "image": "nginx", "ports": []any{"8080"}},
			wantErr: ErrMalformedPort,
		},
		{
			name:    "unsafe name",
			raw:     map[string]any{"name": "../web", "image": "nginx"},
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ValidateOptions(tt.raw)
			require.Error(t, err)
			assert.Nil(t, opts)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsConfigError(err))
			assert.False(t, IsDockerError(err))
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestValidateOptions_NullAndEmptyAreUnset(t *testing.T) {
	opts, err := ValidateOptions(map[string]any{
		"name":    "web",
		"image":   "nginx",
		"group":   nil,
		"network": "",
		"mounts":  nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "", opts.Group)
	assert.Equal(t, "", opts.Network)
	assert.Equal(t, []string{}, opts.Mounts)
}

func TestValidateOptions_AcceptsStringSlices(t *testing.T) {
	opts, err := ValidateOptions(map[string]any{
		"name":  "web",
		"image": "nginx",
		"dns":   []string{"9.9.9.9"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"9.9.9.9"}, opts.DNS)
}

func TestContainerOptions_CloneIsDeep(t *testing.T) {
	opts := DefaultContainerOptions()
	opts.Name = "web"
	opts.Ports = []string{"80:80"}

	c := opts.Clone()
	c.Ports[0] = "81:81"
	c.Name = "other"

	assert.Equal(t, "80:80", opts.Ports[0])
	assert.Equal(t, "web", opts.Name)
}
