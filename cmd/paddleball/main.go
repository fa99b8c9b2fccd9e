package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/paddleball/sim"
)

const (
	screenWidth  = 600
	screenHeight = 600
	gridStep     = 50 // arena units between background grid lines
)

var (
	colorBackground = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	colorGrid       = color.RGBA{R: 48, G: 48, B: 56, A: 255}
	colorPaddle     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorBall       = color.RGBA{R: 255, G: 200, B: 80, A: 255}
)

type Game struct {
	session    *sim.Session
	leftScore  int
	rightScore int
}

func NewGame() *Game {
	g := &Game{session: sim.NewSession()}
	g.session.OnGoal(func(ev sim.GoalEvent) {
		if ev.Winner == sim.SideLeft {
			g.leftScore++
		} else {
			g.rightScore++
		}
	})
	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.session.SetAxis(sim.SideLeft, keyAxis(ebiten.KeyW, ebiten.KeyS))
	g.session.SetAxis(sim.SideRight, keyAxis(ebiten.KeyUp, ebiten.KeyDown))

	g.session.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// keyAxis folds an up/down key pair into a [-1, 1] axis value.
func keyAxis(up, down ebiten.Key) float32 {
	var axis float32
	if ebiten.IsKeyPressed(up) {
		axis++
	}
	if ebiten.IsKeyPressed(down) {
		axis--
	}
	return axis
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	scaleX := float32(screenWidth) / sim.ArenaWidth
	scaleY := float32(screenHeight) / sim.ArenaHeight

	// Background grid, one line per gridStep arena units.
	for y := float32(0); y <= sim.ArenaHeight; y += gridStep {
		sy := screenHeight - y*scaleY
		vector.StrokeLine(screen, 0, sy, screenWidth, sy, 1, colorGrid, false)
	}
	for x := float32(0); x <= sim.ArenaWidth; x += gridStep {
		sx := x * scaleX
		vector.StrokeLine(screen, sx, 0, sx, screenHeight, 1, colorGrid, false)
	}

	snap := g.session.Snapshot()

	for _, paddle := range snap.Paddles {
		w := paddle.Width * scaleX
		h := paddle.Height * scaleY
		sx := paddle.X*scaleX - w/2
		// Arena origin is bottom-left; the screen's is top-left.
		sy := screenHeight - paddle.Y*scaleY - h/2
		vector.DrawFilledRect(screen, sx, sy, w, h, colorPaddle, false)
	}

	if snap.Ball != nil {
		sx := snap.Ball.X * scaleX
		sy := screenHeight - snap.Ball.Y*scaleY
		vector.DrawFilledCircle(screen, sx, sy, snap.Ball.Radius*scaleX, colorBall, false)
	}

	status := fmt.Sprintf("%d : %d", g.leftScore, g.rightScore)
	if snap.Spawn.Phase == sim.SpawnCounting {
		status += fmt.Sprintf("   ball in %.1fs", snap.Spawn.Remaining)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Paddleball")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
