package ui

import "image/color"

type Theme struct {
	BackdropTop    color.RGBA
	BackdropBottom color.RGBA
	GridLine       color.RGBA

	HeaderBar     color.RGBA
	Accent        color.RGBA
	Capsule       color.RGBA
	CapsuleBorder color.RGBA

	Card       color.RGBA
	CardBorder color.RGBA

	Tile             color.RGBA
	TileBorder       color.RGBA
	TileIcon         color.RGBA
	TileActive       color.RGBA
	TileActiveBorder color.RGBA
	TileGlow         color.RGBA
	Badge            color.RGBA

	Key       color.RGBA
	KeyBorder color.RGBA

	PointerGlow color.RGBA
	PointerCore color.RGBA

	TextPrimary color.RGBA
	TextDim     color.RGBA
	TextAccent  color.RGBA
	BadgeText   color.RGBA
}

func DefaultTheme() Theme {
	return Theme{
		BackdropTop:    color.RGBA{0x0B, 0x10, 0x1E, 0xFF},
		BackdropBottom: color.RGBA{0x16, 0x22, 0x3C, 0xFF},
		GridLine:       color.RGBA{0x18, 0x23, 0x3C, 0xFF},

		HeaderBar:     color.RGBA{0x10, 0x1A, 0x30, 0xFF},
		Accent:        color.RGBA{0x3E, 0xC6, 0xE0, 0xFF},
		Capsule:       color.RGBA{0x14, 0x2E, 0x2C, 0xFF},
		CapsuleBorder: color.RGBA{0x2E, 0x8F, 0x6F, 0xFF},

		Card:       color.RGBA{0x14, 0x20, 0x38, 0xFF},
		CardBorder: color.RGBA{0x2A, 0x3B, 0x61, 0xFF},

		Tile:             color.RGBA{0x17, 0x25, 0x42, 0xFF},
		TileBorder:       color.RGBA{0x2C, 0x40, 0x68, 0xFF},
		TileIcon:         color.RGBA{0x2F, 0x4A, 0x7E, 0xFF},
		TileActive:       color.RGBA{0x24, 0x3C, 0x6B, 0xFF},
		TileActiveBorder: color.RGBA{0x63, 0x92, 0xD9, 0xFF},
		TileGlow:         color.RGBA{0x4D, 0x86, 0xE0, 0x90},
		Badge:            color.RGBA{0xD9, 0x4F, 0x63, 0xFF},

		Key:       color.RGBA{0x12, 0x1D, 0x35, 0xFF},
		KeyBorder: color.RGBA{0x27, 0x39, 0x5C, 0xFF},

		PointerGlow: color.RGBA{0x4D, 0xA6, 0xFF, 0xA0},
		PointerCore: color.RGBA{0xC9, 0xE4, 0xFF, 0xD0},

		TextPrimary: color.RGBA{0xE8, 0xEF, 0xFA, 0xFF},
		TextDim:     color.RGBA{0x8C, 0x9D, 0xBE, 0xFF},
		TextAccent:  color.RGBA{0x6F, 0xE3, 0xB4, 0xFF},
		BadgeText:   color.RGBA{0xFF, 0xF2, 0xF4, 0xFF},
	}
}
