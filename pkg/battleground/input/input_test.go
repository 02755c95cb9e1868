package input

import (
	"testing"

	"github.com/BrandonKowalski/battleground/pkg/battleground/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  Key
		want Command
	}{
		{KeyLeft, Command{Kind: CommandPrevious}},
		{KeyRight, Command{Kind: CommandNext}},
		{KeyDigit1, Command{Kind: CommandSelectIndex, Index: 0}},
		{KeyDigit9, Command{Kind: CommandSelectIndex, Index: 8}},
		{KeyNone, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CommandFor(tt.key))
		})
	}
}

func TestApply(t *testing.T) {
	reg, err := theme.Default()
	require.NoError(t, err)
	store, err := theme.NewStore(reg, theme.Underwater)
	require.NoError(t, err)

	require.NoError(t, Apply(store, CommandFor(KeyDigit2)))
	assert.Equal(t, theme.Space, store.Active())

	require.NoError(t, Apply(store, CommandFor(KeyRight)))
	assert.Equal(t, theme.Underwater, store.Active())

	require.NoError(t, Apply(store, CommandFor(KeyLeft)))
	assert.Equal(t, theme.Space, store.Active())

	err = Apply(store, CommandFor(KeyDigit5))
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, theme.Space, store.Active())

	require.NoError(t, Apply(store, Command{}))
	assert.Equal(t, theme.Space, store.Active())
}
