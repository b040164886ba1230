package viewer

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/zbuf"
)

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func newDemo(t *testing.T) *Model {
	t.Helper()
	scene, err := zbuf.DemoScene(4)
	require.NoError(t, err)
	m, err := New(scene)
	require.NoError(t, err)
	return m
}

func TestDepthKeys(t *testing.T) {
	m := newDemo(t)
	require.Equal(t, "Red Square", m.Selected().Name())

	m.Update(runeKey('+'))
	assert.Equal(t, 3.5, m.Selected().Depth())
	m.Update(runeKey('-'))
	m.Update(runeKey('-'))
	assert.Equal(t, 1.5, m.Selected().Depth())
	assert.Empty(t, m.Status())
}

func TestDepthLimit(t *testing.T) {
	m := newDemo(t)
	m.Update(runeKey('n'))
	require.Equal(t, "Blue Square", m.Selected().Name())

	for range 3 {
		m.Update(runeKey('+'))
	}
	assert.Empty(t, m.Status())
	assert.Equal(t, 5.0, m.Selected().Depth())

	m.Update(runeKey('+'))
	assert.Equal(t, 5.0, m.Selected().Depth())
	assert.Contains(t, m.Status(), "Blue Square cannot move there")
	assert.Contains(t, m.render(), "Blue Square cannot move there")

	// any successful move clears the notice
	m.Update(runeKey('-'))
	assert.Empty(t, m.Status())
}

func TestSelectionWraps(t *testing.T) {
	m := newDemo(t)
	m.Update(runeKey('p'))
	assert.Equal(t, "Green Square", m.Selected().Name())
	m.Update(runeKey('n'))
	assert.Equal(t, "Red Square", m.Selected().Name())
}

func TestMoveKeysRerender(t *testing.T) {
	m := newDemo(t)
	before := m.surf.Image().NRGBAAt(7, 6)
	assert.Equal(t, zbuf.Red.NRGBA(), before)

	// one pixel left: the red square leaves column 7
	xMin := m.Selected().XMin()
	m.Update(runeKey('h'))
	assert.InDelta(t, xMin-0.25, m.Selected().XMin(), 1e-12)
	assert.Equal(t, zbuf.White.NRGBA(), m.surf.Image().NRGBAAt(7, 6))
}

func TestQuit(t *testing.T) {
	m := newDemo(t)
	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView(t *testing.T) {
	m := newDemo(t)
	v := m.render()
	assert.Contains(t, v, "[Red Square]")
	assert.Contains(t, v, "depth = 2.5")
	assert.Contains(t, v, "[Green Square]")
}
