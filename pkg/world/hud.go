package world

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

// hud 屏幕坐标下的计分显示，不随镜头移动
type hud struct {
	printer    *message.Printer
	score      *scene.TextNode
	multiplier *scene.TextNode

	lastScore      int
	lastMultiplier int
}

func newHUD(face text.Face) *hud {
	h := &hud{
		printer:        message.NewPrinter(language.English),
		score:          scene.NewTextNode(face, ""),
		multiplier:     scene.NewTextNode(face, ""),
		lastScore:      -1,
		lastMultiplier: -1,
	}
	h.score.Position = types.Vec2{X: 120, Y: 30}
	h.multiplier.Position = types.Vec2{X: 120, Y: 60}
	return h
}

// update 数值变化时才重新格式化
func (h *hud) update(score, multiplier int) {
	if score != h.lastScore {
		h.lastScore = score
		h.score.SetString(h.printer.Sprintf("Score %d", score))
	}
	if multiplier != h.lastMultiplier {
		h.lastMultiplier = multiplier
		h.multiplier.SetString(h.printer.Sprintf("X %d", multiplier))
	}
}

func (h *hud) draw(dst *ebiten.Image) {
	h.score.Draw(dst, ebiten.GeoM{})
	h.multiplier.Draw(dst, ebiten.GeoM{})
}
