package flagx

import (
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-d", "-s", "-t"}
	configFlags := []string{"-c", "-config"}

	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "server flags pass, config flags filtered",
			args:         []string{"-a", ":3000", "-c", "conf.json", "-d", "postgres://localhost/tk"},
			allowedFlags: serverFlags,
			want:         []string{"-a", ":3000", "-d", "postgres://localhost/tk"},
		},
		{
			name:         "config flags pass, server flags filtered",
			args:         []string{"-a", ":3000", "-c", "conf.json", "-s", "secret"},
			allowedFlags: configFlags,
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form kept intact",
			args:         []string{"-config=alt.json", "-t", "48"},
			allowedFlags: configFlags,
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "go test flags dropped",
			args:         []string{"-test.v", "-test.run=TestFilterArgs", "-a", ":9090"},
			allowedFlags: serverFlags,
			want:         []string{"-a", ":9090"},
		},
		{
			name:         "trailing flag without value kept as-is",
			args:         []string{"-d", "postgres://localhost/tk", "-s"},
			allowedFlags: serverFlags,
			want:         []string{"-d", "postgres://localhost/tk", "-s"},
		},
		{
			name:         "dash-starting token is not consumed as a value",
			args:         []string{"-s", "-t", "48"},
			allowedFlags: serverFlags,
			want:         []string{"-s", "-t", "48"},
		},
		{
			name:         "value resembling a flag survives in equals form",
			args:         []string{"-config=--odd.json"},
			allowedFlags: configFlags,
			want:         []string{"-config=--odd.json"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-c", "one.json", "-c", "two.json"},
			allowedFlags: configFlags,
			want:         []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:         "positional arguments dropped",
			args:         []string{"serve", "-a", ":3000", "now"},
			allowedFlags: serverFlags,
			want:         []string{"-a", ":3000"},
		},
		{
			name:         "empty args give empty non-nil slice",
			args:         []string{},
			allowedFlags: serverFlags,
			want:         []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"taskkeeper", "-c", "/etc/taskkeeper/server.json"}
		assert.Equal(t, "/etc/taskkeeper/server.json", JsonConfigFlags())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"taskkeeper", "-config", "server.json"}
		assert.Equal(t, "server.json", JsonConfigFlags())
	})

	t.Run("server flags alone give no path", func(t *testing.T) {
		os.Args = []string{"taskkeeper", "-a", ":3000", "-d", "postgres://localhost/tk"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last of both forms wins", func(t *testing.T) {
		os.Args = []string{"taskkeeper", "-c", "first.json", "-config", "second.json"}
		assert.Equal(t, "second.json", JsonConfigFlags())
	})
}
