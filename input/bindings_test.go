package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMovementMap(t *testing.T) {
	m, err := NewMovementMap(nil)
	require.NoError(t, err)
	assert.Len(t, m, 14)

	b, ok := m.Lookup('t')
	require.True(t, ok)
	assert.Equal(t, Binding{SubjectCamera, ActionShake}, b)

	b, ok = m.Lookup('e')
	require.True(t, ok)
	assert.Equal(t, Binding{SubjectEntity, ActionDecreaseY}, b)
}

func TestMovementMapOverrides(t *testing.T) {
	cases := []struct {
		name    string
		keys    map[string]Key
		wantErr error
		check   func(t *testing.T, m MovementMap)
	}{
		{
			name: "rebind_shake",
			keys: map[string]Key{"camera_shake": KeySpace},
			check: func(t *testing.T, m MovementMap) {
				_, ok := m.Lookup('t')
				assert.False(t, ok)
				b, ok := m.Lookup(KeySpace)
				assert.True(t, ok)
				assert.Equal(t, ActionShake, b.Action)
			},
		},
		{
			name: "unbind_quit",
			keys: map[string]Key{"quit": KeyNone},
			check: func(t *testing.T, m MovementMap) {
				_, ok := m.Lookup(KeyEscape)
				assert.False(t, ok)
				assert.Len(t, m, 13)
			},
		},
		{
			name:    "duplicate",
			keys:    map[string]Key{"camera_left": 's'},
			wantErr: ErrDuplicateBinding,
		},
		{
			name:    "unknown_action",
			keys:    map[string]Key{"jump": 'x'},
			wantErr: ErrUnknownAction,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := NewMovementMap(c.keys)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			c.check(t, m)
		})
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"s", 's'},
		{"S", 's'},
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"space", KeySpace},
		{" up ", KeyArrowUp},
		{"7", '7'},
		{"none", KeyNone},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseKey(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	for _, bad := range []string{"", "ctrl", "ab"} {
		_, err := ParseKey(bad)
		assert.ErrorIs(t, err, ErrUnknownKey, bad)
	}
	assert.Equal(t, "escape", KeyEscape.String())
	assert.Equal(t, "s", Key('s').String())
}
