package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "space separated value",
			args:    []string{"-a", "http://x", "-p", "20"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x"},
		},
		{
			name:    "equals form",
			args:    []string{"-a=http://x", "-p=20"},
			allowed: []string{"-p"},
			want:    []string{"-p=20"},
		},
		{
			name:    "mixed forms",
			args:    []string{"-a", "http://x", "-s=/tmp/state", "-unknown", "v"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", "http://x", "-s=/tmp/state"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-p", "20"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "http://x"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
