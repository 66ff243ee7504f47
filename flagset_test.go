package fixreqs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSet(t *testing.T) {
	t.Parallel()

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()
		var f FlagSet
		assert.False(t, f.Has("only"))
		assert.False(t, f.Only())
		assert.False(t, f.Excludes("x"))
		assert.Equal(t, 0, f.Len())
		assert.Empty(t, f.Values())
	})
	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()
		f := NewFlagSet([]string{"y", "only", "y", "no-x"})
		assert.Equal(t, 3, f.Len())
		assert.Equal(t, []string{"no-x", "only", "y"}, f.Values())
	})
	t.Run("arguments are opaque", func(t *testing.T) {
		t.Parallel()
		f := NewFlagSet([]string{"--only", "-no-x", "a=b", "--"})
		assert.False(t, f.Only())
		assert.False(t, f.Excludes("x"))
		assert.True(t, f.Has("a=b"))
		assert.True(t, f.Has("--"))
	})
	t.Run("excludes", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name  string
			flags []string
			code  string
			want  bool
		}{
			{"no flags", nil, "x", false},
			{"opt-out", []string{"no-x"}, "x", true},
			{"opt-out other tag", []string{"no-y"}, "x", false},
			{"only without tag", []string{"only"}, "x", true},
			{"only with tag", []string{"only", "x"}, "x", false},
			{"opt-out wins over allow-list", []string{"only", "x", "no-x"}, "x", true},
			{"tag without only", []string{"x"}, "y", false},
			{"empty tag opt-out", []string{"no-"}, "", true},
			{"empty tag in allow-list", []string{"only", ""}, "", false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, NewFlagSet(tt.flags).Excludes(tt.code))
			})
		}
	})
}
