package ppu

const maxSpritesPerScanline = 8

// renderScanline composites one row of background and sprite pixels into
// the frame buffer. It runs once per visible scanline, at dot 256, using
// the scroll position the CPU has established for this row.
func (p *PPU) renderScanline(y int) {
	var bgPaletteIndex [FrameWidth]uint8
	var bgOpaque [FrameWidth]bool

	backdrop := p.paletteRAM[0]
	for x := range bgPaletteIndex {
		bgPaletteIndex[x] = backdrop
	}

	if p.mask.showBackground() {
		p.renderBackgroundRow(y, &bgPaletteIndex, &bgOpaque)
	}

	var spritePaletteIndex [FrameWidth]uint8
	var spriteOpaque [FrameWidth]bool
	var spriteBehindBG [FrameWidth]bool
	var spriteIsZero [FrameWidth]bool

	if p.mask.showSprites() {
		p.renderSpriteRow(y, bgOpaque, &spritePaletteIndex, &spriteOpaque, &spriteBehindBG, &spriteIsZero)
	}

	for x := 0; x < FrameWidth; x++ {
		colorIndex := bgPaletteIndex[x]
		if spriteOpaque[x] && (!spriteBehindBG[x] || !bgOpaque[x]) {
			colorIndex = spritePaletteIndex[x]
		}
		if spriteIsZero[x] && bgOpaque[x] && spriteOpaque[x] && x != 255 {
			p.status.set(statusSprite0, true)
		}
		p.frame[y][x] = NESColorToRGB(colorIndex)
	}
}

func (p *PPU) renderBackgroundRow(y int, out *[FrameWidth]uint8, opaque *[FrameWidth]bool) {
	row := p.v
	leftClip := !p.mask.showBackgroundLeft()

	for x := 0; x < FrameWidth; x++ {
		if leftClip && x < 8 {
			continue
		}

		totalX := x + int(p.fineX)
		tileOffset := uint16(totalX / 8)
		bitIndex := uint(7 - totalX%8)

		coarseX := row.coarseX() + tileOffset
		nametableX := row.nametableX()
		if coarseX >= 32 {
			coarseX -= 32
			nametableX ^= 1
		}
		coarseY := row.coarseY()
		nametableY := row.nametableY()

		nametableAddr := 0x2000 + nametableY*0x800 + nametableX*0x400 + coarseY*32 + coarseX
		tileIndex := p.busRead(nametableAddr)

		attrAddr := 0x23C0 + nametableY*0x800 + nametableX*0x400 + (coarseY/4)*8 + (coarseX / 4)
		attrByte := p.busRead(attrAddr)
		shift := ((coarseY%4)/2)*4 + ((coarseX%4)/2)*2
		paletteSelect := (attrByte >> shift) & 0x03

		base := p.ctrl.backgroundPatternBase()
		lo := p.patternByte(base, tileIndex, row.fineY())
		hi := p.patternByte(base, tileIndex, row.fineY()+8)
		colorBit := (hi>>bitIndex&1)<<1 | (lo >> bitIndex & 1)

		if colorBit == 0 {
			continue // leave backdrop color, opaque stays false
		}
		out[x] = p.paletteRAM[paletteIndex(0x3F00+uint16(paletteSelect)*4+uint16(colorBit))]
		opaque[x] = true
	}
}

func (p *PPU) patternByte(base uint16, tile uint8, fineY uint16) uint8 {
	return p.busRead(base + uint16(tile)*16 + fineY)
}

func (p *PPU) renderSpriteRow(y int, bgOpaque [FrameWidth]bool,
	outColor *[FrameWidth]uint8, outOpaque, outBehind, outZero *[FrameWidth]bool) {

	height := 8
	if p.ctrl.tallSprites() {
		height = 16
	}

	found := 0
	for i := 0; i < 64; i++ {
		spriteY := int(p.oam[i*4+0])
		row := y - (spriteY + 1)
		if row < 0 || row >= height {
			continue
		}
		if found >= maxSpritesPerScanline {
			p.status.set(statusOverflow, true)
			break
		}
		found++

		tile := p.oam[i*4+1]
		attr := p.oam[i*4+2]
		spriteX := int(p.oam[i*4+3])

		flipH := attr&0x40 != 0
		flipV := attr&0x80 != 0
		behind := attr&0x20 != 0
		paletteSelect := uint16(attr & 0x03)

		if flipV {
			row = height - 1 - row
		}

		var base uint16
		var patternTile uint8
		if height == 16 {
			base = uint16(tile&0x01) * 0x1000
			patternTile = tile &^ 0x01
			if row >= 8 {
				patternTile++
				row -= 8
			}
		} else {
			base = p.ctrl.spritePatternBase()
			patternTile = tile
		}

		lo := p.patternByte(base, patternTile, uint16(row))
		hi := p.patternByte(base, patternTile, uint16(row)+8)

		for bit := 0; bit < 8; bit++ {
			px := spriteX + bit
			if px < 0 || px >= FrameWidth {
				continue
			}
			if !p.mask.showSpritesLeft() && px < 8 {
				continue
			}
			if outOpaque[px] {
				continue // a higher-priority (lower OAM index) sprite already wrote here
			}

			srcBit := uint(bit)
			if !flipH {
				srcBit = 7 - srcBit
			}
			colorBit := (hi>>srcBit&1)<<1 | (lo >> srcBit & 1)
			if colorBit == 0 {
				continue
			}

			outColor[px] = p.paletteRAM[paletteIndex(0x3F10+paletteSelect*4+uint16(colorBit))]
			outOpaque[px] = true
			outBehind[px] = behind
			outZero[px] = i == 0
		}
	}
}
