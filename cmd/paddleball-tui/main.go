package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/paddleball/sim"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminal key events have no release, so a pressed key holds its
	// axis deflection for this long.
	axisHold = 150 * time.Millisecond
)

type Game struct {
	screen  tcell.Screen
	session *sim.Session

	leftScore  int
	rightScore int

	leftAxis   float32
	rightAxis  float32
	leftUntil  time.Time
	rightUntil time.Time

	audioInit bool
}

func NewGame() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:  screen,
		session: sim.NewSession(),
	}

	g.session.OnGoal(func(ev sim.GoalEvent) {
		if ev.Winner == sim.SideLeft {
			g.leftScore++
		} else {
			g.rightScore++
		}
		g.playGoalSound()
	})

	if err := g.initAudio(); err != nil {
		// Non-fatal, the game can run without sound.
		log.Printf("Audio initialization failed: %v", err)
	}

	return g, nil
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) playGoalSound() {
	if !g.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(120 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 660)
	speaker.Play(beep.Take(duration, sine))
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'w' || ev.Rune() == 'W'):
			g.leftAxis, g.leftUntil = 1, now.Add(axisHold)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 's' || ev.Rune() == 'S'):
			g.leftAxis, g.leftUntil = -1, now.Add(axisHold)
		case ev.Key() == tcell.KeyUp:
			g.rightAxis, g.rightUntil = 1, now.Add(axisHold)
		case ev.Key() == tcell.KeyDown:
			g.rightAxis, g.rightUntil = -1, now.Add(axisHold)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

func (g *Game) tick(dt float64) {
	now := time.Now()
	if now.After(g.leftUntil) {
		g.leftAxis = 0
	}
	if now.After(g.rightUntil) {
		g.rightAxis = 0
	}

	g.session.SetAxis(sim.SideLeft, g.leftAxis)
	g.session.SetAxis(sim.SideRight, g.rightAxis)
	g.session.Tick(dt)
}

func (g *Game) draw() {
	g.screen.Clear()

	w, h := g.screen.Size()
	if w < 10 || h < 5 {
		g.screen.Show()
		return
	}

	// Top row is the status line; everything below maps the arena.
	fieldH := h - 1
	toCell := func(x, y float32) (int, int) {
		cx := int(x / sim.ArenaWidth * float32(w-1))
		cy := 1 + fieldH - 1 - int(y/sim.ArenaHeight*float32(fieldH-1))
		return cx, cy
	}

	snap := g.session.Snapshot()

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, paddle := range snap.Paddles {
		topX, topY := toCell(paddle.X, paddle.Y+paddle.Height/2)
		_, bottomY := toCell(paddle.X, paddle.Y-paddle.Height/2)
		for y := topY; y <= bottomY; y++ {
			g.screen.SetContent(topX, y, '█', nil, paddleStyle)
		}
	}

	if snap.Ball != nil {
		bx, by := toCell(snap.Ball.X, snap.Ball.Y)
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		g.screen.SetContent(bx, by, '●', nil, ballStyle)
	}

	status := fmt.Sprintf(" %d : %d   w/s and up/down to move, q to quit", g.leftScore, g.rightScore)
	if snap.Spawn.Phase == sim.SpawnCounting {
		status += fmt.Sprintf("   ball in %.1fs", snap.Spawn.Remaining)
	}
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range status {
		if i >= w {
			break
		}
		g.screen.SetContent(i, 0, r, nil, statusStyle)
	}

	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	lastTick := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTick).Seconds()
			lastTick = now
			g.tick(dt)
			g.draw()
		}
	}
}

func main() {
	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer game.screen.Fini()

	game.run()
}
