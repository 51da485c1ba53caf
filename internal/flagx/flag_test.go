package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-k", "00ff", "-a", "localhost"},
			allowed: []string{"-k", "-f"},
			want:    []string{"-k", "00ff"},
		},
		{
			name:    "equals form",
			args:    []string{"-f=/run/secrets/master_key", "-a", "localhost"},
			allowed: []string{"-k", "-f"},
			want:    []string{"-f=/run/secrets/master_key"},
		},
		{
			name:    "order preserved",
			args:    []string{"-f=first", "-k", "second", "-x", "1"},
			allowed: []string{"-k", "-f"},
			want:    []string{"-f=first", "-k", "second"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next flag is not a value",
			args:    []string{"-c", "-d", "dsn"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "equals value may look like a flag",
			args:    []string{"-config=--weird.json"},
			allowed: []string{"-config"},
			want:    []string{"-config=--weird.json"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-a", ":1", "-c", "server.json"}
	assert.Equal(t, "server.json", JsonConfigFlags())

	os.Args = []string{"bin", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"bin", "-a", ":1"}
	assert.Equal(t, "", JsonConfigFlags())
}
