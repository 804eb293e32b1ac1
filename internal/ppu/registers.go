package ppu

// control is PPUCTRL ($2000), write-only.
type control uint8

func (c control) nametableSelect() uint16  { return uint16(c & 0x03) }
func (c control) incrementStep() uint16 {
	if c&0x04 != 0 {
		return 32
	}
	return 1
}
func (c control) spritePatternBase() uint16 {
	if c&0x08 != 0 {
		return 0x1000
	}
	return 0
}
func (c control) backgroundPatternBase() uint16 {
	if c&0x10 != 0 {
		return 0x1000
	}
	return 0
}
func (c control) tallSprites() bool { return c&0x20 != 0 }
func (c control) nmiEnable() bool   { return c&0x80 != 0 }

// mask is PPUMASK ($2001), write-only.
type mask uint8

func (m mask) showBackgroundLeft() bool { return m&0x02 != 0 }
func (m mask) showSpritesLeft() bool    { return m&0x04 != 0 }
func (m mask) showBackground() bool     { return m&0x08 != 0 }
func (m mask) showSprites() bool        { return m&0x10 != 0 }
func (m mask) renderingEnabled() bool   { return m.showBackground() || m.showSprites() }

// status is PPUSTATUS ($2002), read-only aside from internal mutation.
type status uint8

const (
	statusOverflow status = 0x20
	statusSprite0  status = 0x40
	statusVBlank   status = 0x80
)

func (s *status) set(bit status, on bool) {
	if on {
		*s |= bit
	} else {
		*s &^= bit
	}
}

// loopy is the 15-bit internal scroll/address register (v or t), named
// after Loopy's well-known documentation of the PPU's scrolling behavior.
type loopy uint16

func (l loopy) coarseX() uint16    { return uint16(l) & 0x001F }
func (l loopy) coarseY() uint16    { return (uint16(l) & 0x03E0) >> 5 }
func (l loopy) nametableX() uint16 { return (uint16(l) & 0x0400) >> 10 }
func (l loopy) nametableY() uint16 { return (uint16(l) & 0x0800) >> 11 }
func (l loopy) fineY() uint16      { return (uint16(l) & 0x7000) >> 12 }

func (l *loopy) setCoarseX(v uint16) { *l = loopy(uint16(*l)&0x7FE0 | (v & 0x001F)) }
func (l *loopy) setCoarseY(v uint16) { *l = loopy(uint16(*l)&0x7C1F | ((v & 0x001F) << 5)) }
func (l *loopy) setFineY(v uint16)   { *l = loopy(uint16(*l)&0x0FFF | ((v & 0x0007) << 12)) }
func (l *loopy) toggleNametableX()   { *l ^= 0x0400 }
func (l *loopy) toggleNametableY()   { *l ^= 0x0800 }

// incrementX advances one tile right, wrapping the nametable at the edge.
func (l *loopy) incrementX() {
	if l.coarseX() == 31 {
		l.setCoarseX(0)
		l.toggleNametableX()
	} else {
		l.setCoarseX(l.coarseX() + 1)
	}
}

// incrementY advances one pixel row, rolling into the next tile row (and,
// at row 29, the next nametable) as fine Y overflows.
func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		l.setFineY(l.fineY() + 1)
		return
	}
	l.setFineY(0)
	switch l.coarseY() {
	case 29:
		l.setCoarseY(0)
		l.toggleNametableY()
	case 31:
		l.setCoarseY(0) // hardware quirk: row 31 wraps without flipping nametable
	default:
		l.setCoarseY(l.coarseY() + 1)
	}
}

// transferX copies horizontal position (coarse X, nametable X) from src.
func (l *loopy) transferX(src loopy) {
	*l = loopy(uint16(*l)&0x7BE0 | uint16(src)&0x041F)
}

// transferY copies vertical position (fine Y, coarse Y, nametable Y) from src.
func (l *loopy) transferY(src loopy) {
	*l = loopy(uint16(*l)&0x041F | uint16(src)&0x7BE0)
}
