package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/scenes"
	"github.com/gonewx/alieninvasion/pkg/utils"
)

// 各图形在终端中使用的字符
var shapeGlyphs = map[components.ShapeKind]rune{
	components.ShapeStar:   '.',
	components.ShapeShip:   '▲',
	components.ShapeBullet: '|',
	components.ShapeAlien:  '▓',
}

// 与 render.RenderSystem 相同的绘制层次
var drawOrder = []components.ShapeKind{
	components.ShapeStar,
	components.ShapeShip,
	components.ShapeBullet,
	components.ShapeAlien,
}

var playButtonStyle = tcell.StyleDefault.
	Background(tcell.NewRGBColor(0, 135, 0)).
	Foreground(tcell.ColorWhite).
	Bold(true)

// Renderer 把 GameScene 按字符格绘制到 tcell 屏幕
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(scene *scenes.GameScene) {
	base := tcell.StyleDefault.Background(toColor(scene.Background()))
	r.screen.SetStyle(base)
	r.screen.Clear()

	em := scene.EntityManager()
	ids := ecs.GetEntitiesWith3[*components.ShapeComponent, *components.PositionComponent, *components.CollisionComponent](em)
	for _, kind := range drawOrder {
		for _, id := range ids {
			shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
			if shape.Kind != kind {
				continue
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
			r.fill(components.BoundsOf(pos, col), shapeGlyphs[kind], base.Foreground(toColor(shape.Color)))
		}
	}

	r.drawScoreboard(scene, base)
	if scene.State() == scenes.StateInactive {
		r.drawPlayButton(scene.PlayButton())
	}

	r.screen.Show()
}

func (r *Renderer) drawScoreboard(scene *scenes.GameScene, base tcell.Style) {
	cols, _ := r.screen.Size()
	textStyle := base.Foreground(tcell.ColorWhite)
	stats := scene.Stats()

	score := utils.FormatScore(stats.Score)
	r.putString(cols-1-len(score), 0, score, textStyle)

	high := utils.FormatNumber(stats.HighScore)
	r.putString((cols-len(high))/2, 0, high, textStyle)

	level := utils.FormatNumber(stats.Level)
	r.putString(cols-1-len(level), 1, level, textStyle)

	shipStyle := base.Foreground(tcell.ColorWhite)
	for i := range scene.ScoreboardSystem().ShipIconRects() {
		r.screen.SetContent(i*2, 0, shapeGlyphs[components.ShapeShip], nil, shipStyle)
	}
}

func (r *Renderer) drawPlayButton(button *components.ButtonComponent) {
	if button == nil {
		return
	}
	r.fill(button.Rect, ' ', playButtonStyle)

	row := int((button.Rect.Y + button.Rect.Height/2) / CellHeight)
	center := int(button.Rect.CenterX() / CellWidth)
	r.putString(center-len(button.Label)/2, row, button.Label, playButtonStyle)
}

// fill 用指定字符填满矩形覆盖的所有字符格
func (r *Renderer) fill(rect components.Rect, glyph rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	c0, r0, c1, r1 := CellSpan(rect)
	for y := max(r0, 0); y <= min(r1, rows-1); y++ {
		for x := max(c0, 0); x <= min(c1, cols-1); x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// CellSpan 返回矩形覆盖的字符格范围（闭区间），至少包含一个格
func CellSpan(rect components.Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(rect.Left() / CellWidth))
	r0 = int(math.Floor(rect.Top() / CellHeight))
	c1 = max(int(math.Ceil(rect.Right()/CellWidth))-1, c0)
	r1 = max(int(math.Ceil(rect.Bottom()/CellHeight))-1, r0)
	return c0, r0, c1, r1
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
