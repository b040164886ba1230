// Package viewer is an interactive terminal front end for a zbuf scene.
// Every key press that moves a square triggers a full resolve pass.
package viewer

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"seehuhn.de/go/zbuf"
)

type Model struct {
	scene    *zbuf.Scene
	surf     *zbuf.ImageSurface
	selected int
	status   string
	styles   map[color.NRGBA]lipgloss.Style
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

var _ tea.Model = (*Model)(nil)

func New(scene *zbuf.Scene) (*Model, error) {
	surf, err := zbuf.NewImageSurface(scene.Buffer().Scale())
	if err != nil {
		return nil, err
	}
	m := &Model{
		scene:  scene,
		surf:   surf,
		styles: make(map[color.NRGBA]lipgloss.Style),
	}
	if err := scene.Render(surf); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the square which receives movement keys.
func (m *Model) Selected() *zbuf.Square {
	model := m.scene.Model()
	if len(model) == 0 {
		return nil
	}
	return model[m.selected]
}

// Status returns the last notice shown to the user.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	step := 1 / float64(m.scene.Buffer().Scale())
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "n":
		m.cycle(1)
	case "shift+tab", "p":
		m.cycle(-1)
	case "+", "=":
		m.move(0, 0, 1)
	case "-", "_":
		m.move(0, 0, -1)
	case "left", "h":
		m.move(-step, 0, 0)
	case "right", "l":
		m.move(step, 0, 0)
	case "up", "k":
		m.move(0, step, 0)
	case "down", "j":
		m.move(0, -step, 0)
	}
	return m, nil
}

func (m *Model) cycle(dir int) {
	n := len(m.scene.Model())
	if n == 0 {
		return
	}
	m.selected = (m.selected + dir + n) % n
	m.status = ""
}

func (m *Model) move(dx, dy, dz float64) {
	sq := m.Selected()
	if sq == nil {
		return
	}
	m.status = ""
	if err := m.scene.Move(sq.Name(), dx, dy, dz); err != nil {
		m.status = err.Error()
	}
	if err := m.scene.Render(m.surf); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

// render draws the frame, the depth report and the status line.
func (m *Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("z-buffer"))
	b.WriteString("\n\n")

	img := m.surf.Image()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.WriteString(m.cell(img.NRGBAAt(x, y)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for i, sq := range m.scene.Model() {
		line := sq.Report()
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.status != "" {
		b.WriteByte('\n')
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("tab: select  +/-: depth  arrows: move  q: quit"))
	return b.String()
}

// cell renders one grid cell as two colored spaces.
func (m *Model) cell(c color.NRGBA) string {
	st, ok := m.styles[c]
	if !ok {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		st = lipgloss.NewStyle().Background(lipgloss.Color(hex))
		m.styles[c] = st
	}
	return st.Render("  ")
}
