package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.Equal(t, []string{"tab"}, km.NextField.Keys())
	require.Equal(t, []string{"shift+tab"}, km.PrevField.Keys())
	require.Equal(t, []string{"enter"}, km.Submit.Keys())
	require.Equal(t, []string{"ctrl+f"}, km.ToggleQuery.Keys())
	require.Equal(t, []string{"ctrl+c"}, km.Quit.Keys())
}

func TestDefaultKeyMap_AllBindingsHaveHelp(t *testing.T) {
	km := DefaultKeyMap()
	bindings := []key.Binding{
		km.NextField, km.PrevField, km.Submit, km.ToggleQuery, km.ClearStatus, km.Quit,
	}
	for _, b := range bindings {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
}
