// Package viz renders the simulation live in the terminal: a braille
// pixel canvas driven by a Bubble Tea frame loop, with mouse clicks
// injecting new bodies.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/tarunkumar1111/three-body-problem/internal/config"
	"github.com/tarunkumar1111/three-body-problem/internal/metrics"
	"github.com/tarunkumar1111/three-body-problem/internal/world"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
	warnFrames      = 120
)

type TickMsg time.Time

// Model is the Bubble Tea model for the live simulation view.
type Model struct {
	w      *world.World
	cfg    config.Config
	canvas *Canvas

	energy        *metrics.Energy
	momentum      *metrics.Momentum
	energyHistory []float64

	paused  bool
	warn    string
	warnAge int
}

func NewModel(cfg config.Config) (Model, error) {
	w, err := world.New(cfg)
	if err != nil {
		return Model{}, err
	}
	return Model{
		w:             w,
		cfg:           cfg,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		energy:        metrics.NewEnergy(cfg.G),
		momentum:      metrics.NewMomentum(),
		energyHistory: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			if err := m.w.Reset(); err != nil {
				return m, tea.Quit
			}
			m.energy.Reset()
			m.momentum.Reset()
			m.energyHistory = m.energyHistory[:0]
			m.warn = ""
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			// The canvas starts one row below the header line.
			m.addAt(msg.X, msg.Y-1)
		}
	case TickMsg:
		if !m.paused {
			m.step()
		}
		if m.warnAge > 0 {
			m.warnAge--
			if m.warnAge == 0 {
				m.warn = ""
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.w.Step()
	m.energy.Observe(m.w.Bodies())
	m.momentum.Observe(m.w.Bodies())
	m.energyHistory = append(m.energyHistory, m.energy.Latest())
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

// addAt maps a terminal cell click onto simulation coordinates and
// injects a body there. A full arena surfaces a warning instead.
func (m *Model) addAt(cellX, cellY int) {
	if cellY < 0 || cellY >= canvasHeight {
		return // outside the canvas
	}
	sx, sy := m.scale()
	x := float64(cellX*2) * sx
	y := float64(cellY*4) * sy
	if _, err := m.w.Add(x, y); err != nil {
		m.warn = fmt.Sprintf("body limit reached (max %d)", m.w.Cap())
		m.warnAge = warnFrames
	}
}

// scale returns sim units per canvas sub-pixel on each axis.
func (m *Model) scale() (sx, sy float64) {
	return m.cfg.Width / float64(canvasWidth*2), m.cfg.Height / float64(canvasHeight*4)
}

func (m Model) View() string {
	m.canvas.Clear()
	sx, sy := m.scale()

	for _, b := range m.w.Bodies() {
		for _, p := range b.Trace() {
			m.canvas.Set(int(p.X/sx), int(p.Y/sy))
		}
		r := int(b.Radius / sx)
		if r < 1 {
			r = 1
		}
		m.canvas.FillCircle(int(b.X/sx), int(b.Y/sy), r)
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("THREE BODY PROBLEM"))
	sb.WriteString(helpStyle.Render("  click: add body  space: pause  r: reset  q: quit"))
	sb.WriteString("\n")
	sb.WriteString(m.canvas.String())

	status := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		labelStyle.Render("frame"), valueStyle.Render(fmt.Sprintf("%d", m.w.Frame())),
		labelStyle.Render("bodies"), valueStyle.Render(fmt.Sprintf("%d/%d", m.w.Len(), m.w.Cap())),
		labelStyle.Render("energy"), valueStyle.Render(fmt.Sprintf("%.2f", m.energy.Latest())),
		labelStyle.Render("momentum"), valueStyle.Render(fmt.Sprintf("%.2f", m.momentum.Value())),
	)
	if m.paused {
		status += "  " + warnStyle.Render("PAUSED")
	}
	sb.WriteString(status)
	sb.WriteString("\n")

	sb.WriteString(m.legend())
	sb.WriteString("\n")

	if len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4),
			asciigraph.Width(70),
			asciigraph.Caption("total energy"),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteString("\n")
	}

	if m.warn != "" {
		sb.WriteString(warnStyle.Render("⚠ " + m.warn))
		sb.WriteString("\n")
	}

	return sb.String()
}

// legend renders one colored marker per body in insertion order, since
// the braille canvas itself is monochrome.
func (m Model) legend() string {
	var sb strings.Builder
	for _, b := range m.w.Bodies() {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render("● "))
	}
	return sb.String()
}

// RunInteractive starts the live view with mouse reporting enabled.
func RunInteractive(cfg config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
