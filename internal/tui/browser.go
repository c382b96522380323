// Package tui is a terminal-side companion to the windowed launcher: it
// browses the scene catalog, presets, and RPG save slots, and runs live
// braille previews of any demo without opening a window.
package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/artcade/internal/config"
	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/registry"
	"github.com/san-kum/artcade/internal/rpg"
	"github.com/san-kum/artcade/internal/store"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateScenes state = iota
	statePresets
	stateSaves
	statePreview
)

// previewSteps is how many fixed ticks advance per terminal frame.
const previewSteps = 3

type model struct {
	state  state
	st     *store.Store
	seed   int64
	width  int
	height int

	entries []engine.Entry
	cursor  int

	presets      []string
	presetCursor int

	slots      []store.SlotInfo
	slotCursor int
	inspected  *rpg.Game
	inspectErr error

	scene     engine.Scene
	canvas    *Canvas
	paused    bool
	elapsed   float64
	preset    string
	lastFrame time.Time
	fps       float64
	history   []float64
}

// NewBrowser builds the terminal browser over the scene catalog and the
// save directory under dataDir.
func NewBrowser(dataDir string, seed int64) *model {
	return &model{
		state:   stateScenes,
		st:      store.New(dataDir),
		seed:    seed,
		entries: registry.Entries(dataDir),
		canvas:  NewCanvas(72, 24),
		history: make([]float64, 0, 60),
		width:   80,
		height:  24,
	}
}

// Run drives the browser until the user quits.
func Run(dataDir string, seed int64) error {
	_, err := tea.NewProgram(NewBrowser(dataDir, seed), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != statePreview || m.scene == nil {
			return m, nil
		}
		if !m.paused {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now
			t0 := time.Now()
			for i := 0; i < previewSteps; i++ {
				m.scene.Step(engine.Dt)
				m.elapsed += engine.Dt
			}
			m.history = append(m.history, time.Since(t0).Seconds()*1000)
			if len(m.history) > 60 {
				m.history = m.history[1:]
			}
			if snap, ok := m.scene.(engine.Snapshotter); ok {
				m.canvas.Blit(snap.Snapshot(), 56)
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateScenes:
		return m.scenesKey(msg)
	case statePresets:
		return m.presetsKey(msg)
	case stateSaves:
		return m.savesKey(msg)
	case statePreview:
		return m.previewKey(msg)
	}
	return m, nil
}

func (m *model) scenesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "p":
		m.presets = config.ListPresets(m.entries[m.cursor].Name)
		m.presetCursor = 0
		m.state = statePresets
	case "s":
		m.slots, _ = m.st.List()
		m.slotCursor = 0
		m.inspected = nil
		m.inspectErr = nil
		m.state = stateSaves
	case "enter", " ":
		return m.startPreview("")
	}
	return m, nil
}

func (m *model) presetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "escape":
		m.state = stateScenes
	case "up", "k":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case "down", "j":
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
	case "enter", " ":
		if len(m.presets) > 0 {
			return m.startPreview(m.presets[m.presetCursor])
		}
	}
	return m, nil
}

func (m *model) savesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "escape":
		if m.inspected != nil || m.inspectErr != nil {
			m.inspected = nil
			m.inspectErr = nil
			return m, nil
		}
		m.state = stateScenes
	case "up", "k":
		if m.slotCursor > 0 {
			m.slotCursor--
		}
	case "down", "j":
		if m.slotCursor < len(m.slots)-1 {
			m.slotCursor++
		}
	case "enter", " ":
		if len(m.slots) > 0 {
			m.inspected, m.inspectErr = rpg.Load(m.st, m.slots[m.slotCursor].Slot)
		}
	}
	return m, nil
}

func (m *model) previewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "escape":
		if c, ok := m.scene.(io.Closer); ok {
			c.Close()
		}
		m.scene = nil
		m.state = stateScenes
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.seed++
		m.scene.Reset(m.seed)
		m.elapsed = 0
	}
	return m, nil
}

func (m *model) startPreview(preset string) (tea.Model, tea.Cmd) {
	entry := m.entries[m.cursor]
	m.scene = entry.New()
	m.preset = preset
	seed := m.seed
	if preset != "" {
		if cfg := config.GetPreset(entry.Name, preset); cfg != nil {
			if cfg.Seed != 0 {
				seed = cfg.Seed
			}
			if tunable, ok := m.scene.(engine.Configurable); ok {
				for k, v := range cfg.Params {
					tunable.SetParam(k, v)
				}
			}
		}
	}
	m.scene.Reset(seed)
	m.canvas.Clear()
	m.paused = false
	m.elapsed = 0
	m.lastFrame = time.Time{}
	m.history = m.history[:0]
	m.state = statePreview
	return m, tea.Batch(tea.ClearScreen, tick())
}

func (m *model) View() string {
	switch m.state {
	case stateScenes:
		return m.viewScenes()
	case statePresets:
		return m.viewPresets()
	case stateSaves:
		return m.viewSaves()
	case statePreview:
		return m.viewPreview()
	}
	return ""
}

func (m *model) viewScenes() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("a r t c a d e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, e := range m.entries {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", e.Name)) + dim.Render(e.Desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", e.Name)) + dimmer.Render(e.Desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter preview   p presets   s saves   q quit") + "\n")
	return b.String()
}

func (m *model) viewPresets() string {
	entry := m.entries[m.cursor]
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(entry.Name) + "  " + dim.Render("presets") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	if len(m.presets) == 0 {
		b.WriteString("      " + dim.Render("no presets for this scene") + "\n")
	}
	for i, name := range m.presets {
		cfg := config.GetPreset(entry.Name, name)
		marker := "        "
		style := dim
		if i == m.presetCursor {
			marker = "      " + cyan.Render("▸ ")
			style = white
		}
		b.WriteString(marker + style.Render(fmt.Sprintf("%-14s", name)) + dimmer.Render(paramSummary(cfg)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter preview with preset   esc back") + "\n")
	return b.String()
}

func paramSummary(cfg *config.Config) string {
	if cfg == nil || len(cfg.Params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.Params))
	for k := range cfg.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.2g", k, cfg.Params[k]))
	}
	return strings.Join(parts, " ")
}

func (m *model) viewSaves() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("save slots") + "  " + dim.Render(m.st.Dir()) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	if len(m.slots) == 0 {
		b.WriteString("      " + dim.Render("no saves yet") + "\n")
	}
	for i, s := range m.slots {
		line := fmt.Sprintf("slot %d   %s   %6d bytes", s.Slot, s.SavedAt.Format("2006-01-02 15:04"), s.Size)
		if i == m.slotCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("        " + dim.Render(line) + "\n")
		}
	}

	if m.inspectErr != nil {
		b.WriteString("\n      " + yellow.Render("unreadable: "+m.inspectErr.Error()) + "\n")
	} else if m.inspected != nil {
		b.WriteString(m.viewSheet(m.inspected))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter inspect   esc back") + "\n")
	return b.String()
}

func (m *model) viewSheet(g *rpg.Game) string {
	c := g.Character
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + magenta.Render(c.Name) + "  " + dim.Render(fmt.Sprintf("level %d %s", c.Level, c.Class)) + "\n")
	b.WriteString(fmt.Sprintf("      %s %s  %s %s\n",
		dim.Render("hp"), white.Render(fmt.Sprintf("%d/%d", c.Health, c.MaxHealth)),
		dim.Render("mana"), white.Render(fmt.Sprintf("%d/%d", c.Mana, c.MaxMana))))
	b.WriteString(fmt.Sprintf("      %s %s  %s %s  %s %s\n",
		dim.Render("gold"), yellow.Render(fmt.Sprintf("%d", c.Gold)),
		dim.Render("xp"), white.Render(fmt.Sprintf("%d/%d", c.XP, c.XPNeeded)),
		dim.Render("day"), white.Render(fmt.Sprintf("%d", g.Day))))
	if loc, ok := rpg.Locations[c.Location]; ok {
		b.WriteString("      " + dim.Render("at ") + green.Render(loc.Name) + "\n")
	}
	if len(g.Active) > 0 {
		names := make([]string, 0, len(g.Active))
		for _, q := range g.Active {
			names = append(names, q.Title)
		}
		sort.Strings(names)
		b.WriteString("      " + dim.Render("quests: ") + white.Render(strings.Join(names, ", ")) + "\n")
	}
	return b.String()
}

func (m *model) viewPreview() string {
	entry := m.entries[m.cursor]
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	title := entry.Name
	if m.preset != "" {
		title += " / " + m.preset
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n\n",
		statusIcon, cyan.Render(title), statusText,
		dim.Render(fmt.Sprintf("t=%.1fs  %.0ffps", m.elapsed, m.fps))))

	if _, ok := m.scene.(engine.Snapshotter); ok {
		for _, row := range m.canvas.Grid {
			b.WriteString("   " + cyan.Render(string(row)) + "\n")
		}
	} else {
		b.WriteString("   " + dim.Render("this scene draws glyphs directly and has no pixel preview;") + "\n")
		b.WriteString("   " + dim.Render("run it in the windowed launcher instead") + "\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n   " + dim.Render(line) + "\n")
	}
	if len(m.history) > 1 {
		b.WriteString("   " + dim.Render("step") + " " + cyan.Render(sparkline(m.history, 24)) + "\n")
	}

	b.WriteString("\n" + dim.Render("   space pause   r reseed   esc back") + "\n")
	return b.String()
}

func (m *model) statusLine() string {
	if s, ok := m.scene.(engine.StatusLiner); ok {
		return s.StatusLine()
	}
	return ""
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
