package block

// LightSrc - цвет излучаемого света по каналам (0-15)
type LightSrc struct {
	R, G, B uint8
}

// NewLightSrc создает источник света
func NewLightSrc(r, g, b uint8) LightSrc {
	return LightSrc{R: r, G: g, B: b}
}

// LightSrc возвращает излучаемый свет блока, если он есть
func (b Block) LightSrc() (LightSrc, bool) {
	switch b.ID {
	case LavaBlockID:
		return NewLightSrc(15, 8, 0), true
	case TorchBlockID:
		return NewLightSrc(15, 15, 15), true
	case RedTorchBlockID:
		return NewLightSrc(15, 0, 0), true
	case GreenTorchBlockID:
		return NewLightSrc(0, 15, 0), true
	case BlueTorchBlockID:
		return NewLightSrc(0, 3, 15), true
	}
	return LightSrc{}, false
}
