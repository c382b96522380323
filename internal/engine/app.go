package engine

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Entry describes one launchable scene in the menu.
type Entry struct {
	Name     string
	Title    string
	Desc     string
	Controls []string
	New      func() Scene
}

// Theme colors (CRT phosphor set)
var (
	colBg      = color.RGBA{6, 8, 12, 255}
	colAccent  = color.RGBA{0, 255, 170, 255}
	colSelect  = color.RGBA{255, 255, 255, 255}
	colText    = color.RGBA{140, 170, 160, 255}
	colTextDim = color.RGBA{60, 80, 75, 255}
	colWarn    = color.RGBA{255, 100, 80, 255}
)

type appState int

const (
	stateBoot appState = iota
	stateMenu
	stateConfig
	stateRunning
)

// App is the menu-driven launcher. It owns the active scene and the
// boot/menu/config chrome around it.
type App struct {
	state   appState
	entries []Entry

	boot     *bootScreen
	backdrop *MatrixBackdrop
	rng      *rand.Rand

	selected     int
	scroll       int
	showControls bool

	scene      Scene
	entry      Entry
	params     map[string]float64
	paramKeys  []string
	paramSel   int
	paused     bool
	scanlines  bool
	elapsed    float64
	frameTimes []float64

	seed        int64
	dataDir     string
	windowScale int
}

// NewApp builds the launcher over the given scene entries. With a
// startScene name it skips boot and menu and drops straight into the
// scene with default parameters.
func NewApp(entries []Entry, dataDir, startScene string, seed int64) (*App, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := &App{
		state:       stateBoot,
		entries:     entries,
		boot:        &bootScreen{},
		backdrop:    NewMatrixBackdrop(seed),
		rng:         rand.New(rand.NewSource(seed)),
		scanlines:   true,
		seed:        seed,
		dataDir:     dataDir,
		windowScale: WindowScale,
	}
	if startScene != "" {
		idx := -1
		for i, e := range entries {
			if e.Name == startScene {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown scene %q", startScene)
		}
		a.selected = idx
		a.loadScene(entries[idx])
		a.state = stateRunning
	}
	return a, nil
}

// ApplyConfig applies launch settings before Run. Palette and parameter
// overrides reach the already-loaded scene; scanlines and window scale
// reach the shell. Unknown parameter names are ignored.
func (a *App) ApplyConfig(paletteName string, params map[string]float64, scanlines bool, windowScale int) {
	a.scanlines = scanlines
	if windowScale > 0 {
		a.windowScale = windowScale
	}
	if a.scene == nil {
		return
	}
	if paletteName != "" {
		if pn, ok := a.scene.(PaletteNamed); ok {
			pn.SetPaletteName(paletteName)
		}
	}
	for k, v := range params {
		if _, ok := a.params[k]; ok {
			a.params[k] = v
		}
	}
	a.applyParams()
}

// Run opens the window and blocks until the launcher exits.
func (a *App) Run() error {
	ebiten.SetWindowSize(Width*a.windowScale, Height*a.windowScale)
	ebiten.SetWindowTitle("artcade")
	ebiten.SetTPS(TPS)
	if err := ebiten.RunGame(a); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Width, Height
}

// dropScene releases the running scene, closing any resources it holds
// such as the audio speaker.
func (a *App) dropScene() {
	if c, ok := a.scene.(io.Closer); ok {
		c.Close()
	}
	a.scene = nil
}

func (a *App) loadScene(e Entry) {
	if a.scene != nil {
		a.dropScene()
	}
	a.entry = e
	a.scene = e.New()
	a.scene.Reset(a.seed)
	a.paused = false
	a.elapsed = 0
	a.frameTimes = a.frameTimes[:0]

	a.params = map[string]float64{}
	if cfg, ok := a.scene.(Configurable); ok {
		a.params = cfg.Params()
	}
	a.paramKeys = a.paramKeys[:0]
	for k := range a.params {
		a.paramKeys = append(a.paramKeys, k)
	}
	sort.Strings(a.paramKeys)
	a.paramSel = 0
}

func (a *App) applyParams() {
	if cfg, ok := a.scene.(Configurable); ok {
		for k, v := range a.params {
			cfg.SetParam(k, v)
		}
	}
}

func (a *App) Update() error {
	switch a.state {
	case stateBoot:
		a.boot.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.boot.skip()
		}
		if a.boot.done {
			a.state = stateMenu
		}
	case stateMenu:
		a.backdrop.Step(Dt)
		return a.updateMenu()
	case stateConfig:
		a.updateConfig()
	case stateRunning:
		a.updateRunning()
	}
	return nil
}

const menuVisible = 5

func (a *App) updateMenu() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		a.selected++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		a.selected--
	}
	if a.selected >= len(a.entries) {
		a.selected = 0
	}
	if a.selected < 0 {
		a.selected = len(a.entries) - 1
	}
	if a.selected < a.scroll {
		a.scroll = a.selected
	}
	if a.selected >= a.scroll+menuVisible {
		a.scroll = a.selected - menuVisible + 1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.showControls = !a.showControls
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.selected = a.rng.Intn(len(a.entries))
		a.startSelected()
		return nil
	}
	for d := 0; d < 10 && d < len(a.entries); d++ {
		if inpututil.IsKeyJustPressed(ebiten.Key0 + ebiten.Key(d)) {
			a.selected = d
			a.startSelected()
			return nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.startSelected()
	}
	return nil
}

func (a *App) startSelected() {
	a.loadScene(a.entries[a.selected])
	if len(a.paramKeys) > 0 {
		a.state = stateConfig
	} else {
		a.state = stateRunning
	}
}

func (a *App) updateConfig() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.dropScene()
		a.state = stateMenu
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.applyParams()
		a.scene.Reset(a.seed)
		a.state = stateRunning
		return
	}
	if len(a.paramKeys) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		a.paramSel = (a.paramSel + 1) % len(a.paramKeys)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		a.paramSel--
		if a.paramSel < 0 {
			a.paramSel = len(a.paramKeys) - 1
		}
	}
	key := a.paramKeys[a.paramSel]
	step := 0.1
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		step = 1.0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyL) {
		a.params[key] += step
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.params[key] -= step
	}
}

func (a *App) updateRunning() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.dropScene()
		a.state = stateMenu
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.scene.Reset(a.seed)
		a.applyParams()
		a.elapsed = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		a.scanlines = !a.scanlines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.saveScreenshot()
	}

	a.scene.HandleInput()
	if !a.paused {
		start := time.Now()
		a.scene.Step(Dt)
		a.recordFrameTime(time.Since(start).Seconds() * 1000)
		a.elapsed += Dt
	}
}

func (a *App) recordFrameTime(ms float64) {
	a.frameTimes = append(a.frameTimes, ms)
	if len(a.frameTimes) > 120 {
		a.frameTimes = a.frameTimes[1:]
	}
}

func (a *App) saveScreenshot() {
	snap, ok := a.scene.(Snapshotter)
	if !ok {
		return
	}
	dir := filepath.Join(a.dataDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	name := fmt.Sprintf("%s_%s.png", a.entry.Name, time.Now().Format("20060102_150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, snap.Snapshot())
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)
	switch a.state {
	case stateBoot:
		a.boot.Draw(screen)
	case stateMenu:
		a.drawMenu(screen)
	case stateConfig:
		a.drawConfig(screen)
	case stateRunning:
		a.scene.Draw(screen)
		a.drawHUD(screen)
	}
	if a.scanlines && a.state != stateBoot {
		Scanlines(screen)
	}
}

func (a *App) drawMenu(screen *ebiten.Image) {
	t := float64(time.Now().UnixNano()%1e12) / 1e9
	a.backdrop.Draw(screen)
	CircuitDots(screen, t)
	ScanBeam(screen, t, color.RGBA{0, 180, 120, 180})

	Text(screen, "ARTCADE", 20, 12, 2, colAccent)
	Text(screen, ":: RETRO.COMPUTING.MODE", 128, 20, 1, colTextDim)

	y := 58
	for i := a.scroll; i < len(a.entries) && i < a.scroll+menuVisible; i++ {
		e := a.entries[i]
		line := fmt.Sprintf("0x%02X %s", i, e.Title)
		if i == a.selected {
			vector.DrawFilledRect(screen, 14, float32(y-2), 280, 20, color.RGBA{0, 60, 40, 180}, false)
			Text(screen, "> "+line, 20, y, 1, colSelect)
			Text(screen, e.Desc, 40, y+16, 1, colTextDim)
			y += 38
		} else {
			Text(screen, "  "+line, 20, y, 1, colText)
			y += 22
		}
	}
	if a.scroll > 0 {
		Text(screen, "^", 290, 58, 1, colTextDim)
	}
	if a.scroll+menuVisible < len(a.entries) {
		Text(screen, "v", 290, 58+menuVisible*24, 1, colTextDim)
	}

	if a.showControls {
		a.drawControlsPanel(screen)
	} else {
		a.drawSysMonitor(screen, t)
	}

	Text(screen, "UP/DOWN SELECT  ENTER RUN  0-9 DIRECT  R RANDOM  TAB INFO  Q QUIT", 20, Height-22, 1, colTextDim)
}

func (a *App) drawControlsPanel(screen *ebiten.Image) {
	x := 310
	vector.StrokeRect(screen, float32(x)-6, 52, Width-float32(x)-8, 200, 1, colTextDim, false)
	e := a.entries[a.selected]
	Text(screen, "CONTROLS", x, 58, 1, colAccent)
	y := 80
	for _, c := range e.Controls {
		Text(screen, c, x, y, 1, colText)
		y += 16
		if y > 240 {
			break
		}
	}
}

func (a *App) drawSysMonitor(screen *ebiten.Image, t float64) {
	x := 310
	vector.StrokeRect(screen, float32(x)-6, 52, Width-float32(x)-8, 110, 1, colTextDim, false)
	Text(screen, "SYS.MONITOR", x, 58, 1, colAccent)
	cpu := 0.3 + 0.25*math.Sin(t*0.9) + 0.1*math.Sin(t*3.7)
	mem := 0.55 + 0.1*math.Sin(t*0.4)
	drawGauge(screen, x, 84, "CPU", cpu)
	drawGauge(screen, x, 108, "MEM", mem)
	Text(screen, fmt.Sprintf("SCENES %d", len(a.entries)), x, 132, 1, colTextDim)
}

func drawGauge(screen *ebiten.Image, x, y int, label string, frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	Text(screen, label, x, y, 1, colText)
	w := float32(110)
	vector.StrokeRect(screen, float32(x)+30, float32(y)+4, w, 8, 1, colTextDim, false)
	vector.DrawFilledRect(screen, float32(x)+31, float32(y)+5, (w-2)*float32(frac), 6, colAccent, false)
}

func (a *App) drawConfig(screen *ebiten.Image) {
	Text(screen, "CONFIGURE", 20, 12, 2, colAccent)
	Text(screen, ":: "+a.entry.Title, 150, 20, 1, colText)

	y := 60
	for i, key := range a.paramKeys {
		line := fmt.Sprintf("%-14s %6.2f", key, a.params[key])
		if i == a.paramSel {
			Text(screen, "> "+line, 20, y, 1, colSelect)
		} else {
			Text(screen, "  "+line, 20, y, 1, colText)
		}
		y += 20
	}

	Text(screen, "ARROWS ADJUST  SHIFT COARSE  ENTER RUN  ESC BACK", 20, Height-22, 1, colTextDim)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	Text(screen, a.entry.Title, 8, 4, 1, colAccent)
	if a.paused {
		Text(screen, "PAUSED", Width-60, 4, 1, colWarn)
	}
	if sl, ok := a.scene.(StatusLiner); ok {
		Text(screen, sl.StatusLine(), 8, Height-18, 1, colTextDim)
	}
	Text(screen, fmt.Sprintf("%3.0f FPS", ebiten.ActualFPS()), Width-64, Height-18, 1, colTextDim)
}
