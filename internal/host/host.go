// Package host wires the Bus's per-frame callback into an Ebitengine
// game loop: Update drives the CPU until a frame completes, Draw blits
// the PPU's frame buffer, and keyboard state feeds the Controller.
package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SyedAsadK/rnes/internal/bus"
	"github.com/SyedAsadK/rnes/internal/config"
	"github.com/SyedAsadK/rnes/internal/input"
	"github.com/SyedAsadK/rnes/internal/logging"
	"github.com/SyedAsadK/rnes/internal/ppu"
	"github.com/SyedAsadK/rnes/internal/trace"
)

// keyBinding pairs a Controller button with the ebiten key that drives it.
type keyBinding struct {
	button input.Button
	key    ebiten.Key
}

var player1Keys = []keyBinding{
	{input.ButtonA, ebiten.KeyZ},
	{input.ButtonB, ebiten.KeyX},
	{input.ButtonSelect, ebiten.KeyShiftRight},
	{input.ButtonStart, ebiten.KeyEnter},
	{input.ButtonUp, ebiten.KeyUp},
	{input.ButtonDown, ebiten.KeyDown},
	{input.ButtonLeft, ebiten.KeyLeft},
	{input.ButtonRight, ebiten.KeyRight},
}

// Game implements ebiten.Game, the one concrete consumer of the
// Bus's host-callback contract.
type Game struct {
	bus    *bus.Bus
	cfg    *config.Config
	img    *ebiten.Image
	ready  bool
	pixels []byte

	frames uint64
}

// NewGame constructs a Game bound to b, installing the Bus's PPU frame
// callback that marks a frame ready for Update to stop stepping on.
func NewGame(b *bus.Bus, cfg *config.Config) *Game {
	g := &Game{
		bus:    b,
		cfg:    cfg,
		img:    ebiten.NewImage(ppu.FrameWidth, ppu.FrameHeight),
		pixels: make([]byte, ppu.FrameWidth*ppu.FrameHeight*4),
	}
	b.PPU.SetFrameCallback(func() { g.ready = true })
	return g
}

// Update polls keyboard state into Controller1, then steps the CPU (and,
// transitively, the PPU) until the Bus signals a completed frame. Trace
// mode mirrors each CPU step's nestest-style line to stdout.
func (g *Game) Update() error {
	g.ready = false
	g.pollInput()

	for !g.ready {
		if g.cfg.Trace {
			fmt.Println(trace.Line(g.bus.CPU, g.bus))
		}
		g.bus.Step()
	}

	g.frames++
	if g.cfg.Verbose && g.frames%60 == 0 {
		logging.Logger.Printf("frame %d, cycles %d", g.frames, g.bus.TotalCycles())
	}
	return nil
}

func (g *Game) pollInput() {
	for _, binding := range player1Keys {
		g.bus.Controller1.SetButton(binding.button, ebiten.IsKeyPressed(binding.key))
	}
}

// Draw blits the PPU's most recent frame into screen, scaled by the
// configured window scale.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.bus.PPU.Frame()
	for y := 0; y < ppu.FrameHeight; y++ {
		for x := 0; x < ppu.FrameWidth; x++ {
			c := frame[y][x]
			offset := (y*ppu.FrameWidth + x) * 4
			g.pixels[offset+0] = c.R
			g.pixels[offset+1] = c.G
			g.pixels[offset+2] = c.B
			g.pixels[offset+3] = 0xFF
		}
	}
	g.img.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.img, op)
}

// Layout forces ebiten to scale the NES's fixed 256x240 resolution rather
// than letting the emulated screen size vary with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.FrameWidth * g.cfg.Scale, ppu.FrameHeight * g.cfg.Scale
}

// Run starts the Ebitengine window and blocks until it's closed.
func Run(b *bus.Bus, cfg *config.Config) error {
	g := NewGame(b, cfg)
	ebiten.SetWindowSize(ppu.FrameWidth*cfg.Scale, ppu.FrameHeight*cfg.Scale)
	ebiten.SetWindowTitle("rnes")
	return ebiten.RunGame(g)
}
