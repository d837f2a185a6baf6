package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		requireAuth   bool
		authenticated bool
		loading       bool
		want          Decision
	}{
		{
			name:        "protected while unauthenticated redirects to login",
			requireAuth: true,
			want:        Decision{Redirect: PathLogin},
		},
		{
			name:          "protected while authenticated renders",
			requireAuth:   true,
			authenticated: true,
			want:          Decision{RenderChildren: true},
		},
		{
			name: "public while unauthenticated renders",
			want: Decision{RenderChildren: true},
		},
		{
			name:          "public while authenticated redirects to default",
			authenticated: true,
			want:          Decision{Redirect: PathDefault},
		},
		{
			name:        "loading suppresses protected screen",
			requireAuth: true,
			loading:     true,
			want:        Decision{},
		},
		{
			name:          "loading suppresses public redirect",
			authenticated: true,
			loading:       true,
			want:          Decision{},
		},
		{
			name:    "loading suppresses public screen",
			loading: true,
			want:    Decision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.requireAuth, tt.authenticated, tt.loading)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecide_NeverRendersWhileLoading(t *testing.T) {
	for _, requireAuth := range []bool{false, true} {
		for _, authenticated := range []bool{false, true} {
			d := Decide(requireAuth, authenticated, true)
			require.False(t, d.RenderChildren)
			require.Empty(t, d.Redirect)
		}
	}
}
