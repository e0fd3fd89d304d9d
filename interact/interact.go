package interact

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-periscope/periscope"
)

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const sliderWidth = 40

type control int

const (
	topAngle control = iota
	bottomAngle
	entryHeight
	numControls
)

func (c control) String() string {
	switch c {
	case topAngle:
		return "Top mirror angle (° from +x axis, CCW)"
	case bottomAngle:
		return "Bottom mirror angle (° from +x axis, CCW)"
	}
	return "Incoming ray height (y)"
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding
	Save     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Decrease, k.Increase}, {k.Reset, k.Save, k.Quit}}
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous control")),
	Down:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next control")),
	Increase: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
	Decrease: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save image")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Options configure the terminal UI
type Options struct {
	// Degrees per key press
	AngleStep float64
	// Scene units per key press
	HeightStep float64
	// Where "save" writes the rendered scene
	ImagePath string
	XSize     int
	YSize     int
}

type model struct {
	initial  periscope.Scene
	scene    periscope.Scene
	path     periscope.Path
	selected control
	opts     Options
	help     help.Model
	status   string
}

func newModel(scene periscope.Scene, opts Options) model {
	m := model{initial: scene, scene: scene, opts: opts, help: help.New()}
	m.retrace()
	return m
}

func (m *model) retrace() {
	m.path = m.scene.Trace()
}

func (m model) value(c control) float64 {
	switch c {
	case topAngle:
		return m.scene.TopAngle
	case bottomAngle:
		return m.scene.BottomAngle
	}
	return m.scene.EntryHeight
}

func rangeOf(c control) periscope.Range {
	switch c {
	case topAngle:
		return periscope.TopAngleRange
	case bottomAngle:
		return periscope.BottomAngleRange
	}
	return periscope.EntryHeightRange
}

// nudge moves the selected control by dir steps, clamped to its slider range
func (m *model) nudge(dir float64) {
	step := m.opts.AngleStep
	if m.selected == entryHeight {
		step = m.opts.HeightStep
	}
	v := rangeOf(m.selected).Clamp(m.value(m.selected) + dir*step)
	switch m.selected {
	case topAngle:
		m.scene.TopAngle = v
	case bottomAngle:
		m.scene.BottomAngle = v
	case entryHeight:
		m.scene.EntryHeight = v
	}
	m.retrace()
}

func (m model) save() error {
	view := periscope.View{Scene: m.scene, XSize: m.opts.XSize, YSize: m.opts.YSize}
	img, err := view.Plot(m.path)
	if err != nil {
		return err
	}
	return periscope.Save(m.opts.ImagePath, img)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.selected = (m.selected + numControls - 1) % numControls
		case key.Matches(msg, keys.Down):
			m.selected = (m.selected + 1) % numControls
		case key.Matches(msg, keys.Increase):
			m.nudge(1)
		case key.Matches(msg, keys.Decrease):
			m.nudge(-1)
		case key.Matches(msg, keys.Reset):
			m.scene = m.initial
			m.retrace()
		case key.Matches(msg, keys.Save):
			if err := m.save(); err != nil {
				m.status = fmt.Sprintf("error: %v", err)
			} else {
				m.status = fmt.Sprintf("saved %s", m.opts.ImagePath)
			}
		}
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.help.Width = msg.Width - h
	}
	return m, nil
}

// slider draws v within r; values outside r pin the handle to the nearest end
func slider(r periscope.Range, v float64) string {
	pos := int(math.Round((r.Clamp(v) - r.Min) / (r.Max - r.Min) * sliderWidth))
	return "[" + strings.Repeat("=", pos) + "|" + strings.Repeat("-", sliderWidth-pos) + "]"
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Periscope Light Ray Demonstrator"))
	b.WriteString("\n\n")

	for c := control(0); c < numControls; c++ {
		r := rangeOf(c)
		line := fmt.Sprintf("%-42s %s %7.1f", c, slider(r, m.value(c)), m.value(c))
		if c == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	summary := periscope.Summarize(m.path)
	b.WriteString(fmt.Sprintf("Ray %s after %d of %d mirrors\n", summary.State, summary.Hits, len(m.scene.Mirrors())))
	for i, segment := range m.path.Segments {
		b.WriteString(fmt.Sprintf("  %d %-8s (%7.1f, %7.1f) -> (%7.1f, %7.1f)\n",
			i, segment.Kind, segment.From.X, segment.From.Y, segment.To.X, segment.To.Y))
	}
	if summary.State == periscope.Done {
		b.WriteString(fmt.Sprintf("Exit angle %.1f°, lateral offset %.1f\n", summary.ExitAngle, summary.LateralOffset))
	}

	if m.status != "" {
		b.WriteString("\n" + mutedStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(keys))
	return docStyle.Render(b.String())
}

// Interact runs the terminal UI on scene until the user quits
func Interact(scene periscope.Scene, opts Options) error {
	p := tea.NewProgram(newModel(scene, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive program: %w", err)
	}
	return nil
}
