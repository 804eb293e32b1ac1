// Package ppu implements the NES picture processing unit: its addressable
// registers, OAM, internal VRAM, and a scanline-granularity background and
// sprite renderer.
package ppu

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	visibleScanlines  = 240
	vblankScanline    = 241

	FrameWidth  = 256
	FrameHeight = 240
)

// Mirror is the nametable mirroring arrangement, set by whatever cartridge
// is loaded. It is a local copy of the cartridge's mirroring mode so this
// package has no import-time dependency on internal/cartridge.
type Mirror uint8

const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
	MirrorFourScreen
)

// CHRMemory is the pattern-table storage backing $0000-$1FFF, supplied by
// the cartridge's mapper.
type CHRMemory interface {
	ReadCHR(address uint16) uint8
	WriteCHR(address uint16, value uint8)
}

// Frame is a 256x240 RGB24 pixel buffer, overwritten once per rendered
// frame.
type Frame [FrameHeight][FrameWidth]RGB

// PPU is the NES picture processing unit.
type PPU struct {
	ctrl   control
	mask   mask
	status status

	oamAddr uint8
	oam     [256]uint8

	v, t       loopy
	fineX      uint8
	writeLatch bool // low/high toggle shared by $2005/$2006

	readBuffer uint8

	vram       [0x800]uint8
	paletteRAM [32]uint8

	chr    CHRMemory
	mirror Mirror

	scanline int
	dot      int
	frameOdd bool

	frame      Frame
	frameCount uint64

	nmiPending bool

	frameCallback func()
}

// New creates a PPU with no cartridge attached; call SetCartridge before
// ticking it.
func New() *PPU {
	return &PPU{}
}

// SetCartridge wires the PPU to a cartridge's CHR memory and mirroring mode.
func (p *PPU) SetCartridge(chr CHRMemory, mirror Mirror) {
	p.chr = chr
	p.mirror = mirror
}

// SetFrameCallback installs the function invoked once per completed frame,
// at the moment vblank begins (scanline 241, dot 1).
func (p *PPU) SetFrameCallback(cb func()) {
	p.frameCallback = cb
}

// Reset returns the PPU to its power-up state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.fineX = 0, 0, 0
	p.writeLatch = false
	p.readBuffer = 0
	p.scanline, p.dot = 0, 0
	p.frameOdd = false
	p.frameCount = 0
	p.nmiPending = false
}

// TakeNMI reports and clears a pending vblank NMI. The Bus polls this once
// per CPU step to deliver the interrupt on an instruction boundary.
func (p *PPU) TakeNMI() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

// Frame returns a read-only view of the most recently completed frame.
func (p *PPU) Frame() *Frame { return &p.frame }

// FrameCount returns the number of frames rendered since Reset.
func (p *PPU) FrameCount() uint64 { return p.frameCount }

// IsRenderingEnabled reports whether background or sprite rendering is on.
func (p *PPU) IsRenderingEnabled() bool { return p.mask.renderingEnabled() }

// Tick advances the PPU by cycles dots, the Bus's 3x multiple of elapsed
// CPU cycles. Rendering happens once per scanline, at its last visible dot;
// register-visible timing (vblank, NMI, sprite-0 hit) still advances dot by
// dot to keep instruction-boundary observation correct.
func (p *PPU) Tick(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
		p.tickOnce()
	}
}

func (p *PPU) tickOnce() {
	rendering := p.mask.renderingEnabled()

	if p.scanline < visibleScanlines && p.dot == 256 {
		p.renderScanline(p.scanline)
	}

	if p.scanline < visibleScanlines || p.scanline == scanlinesPerFrame-1 {
		switch {
		case p.dot == 256 && rendering:
			p.v.incrementY()
		case p.dot == 257 && rendering:
			p.v.transferX(p.t)
		case p.scanline == scanlinesPerFrame-1 && p.dot >= 280 && p.dot <= 304 && rendering:
			p.v.transferY(p.t)
		}
	}

	if p.scanline == vblankScanline && p.dot == 1 {
		p.status.set(statusVBlank, true)
		if p.ctrl.nmiEnable() {
			p.nmiPending = true
		}
		p.frameCount++
		if p.frameCallback != nil {
			p.frameCallback()
		}
	}

	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline >= scanlinesPerFrame {
			p.scanline = 0
			p.frameOdd = !p.frameOdd
			p.status.set(statusVBlank, false)
			p.status.set(statusSprite0, false)
			p.status.set(statusOverflow, false)
		}
	}
}
