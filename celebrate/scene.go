// Package celebrate renders the work-completion animation: a cat runs
// in from the left, jumps into a row of bricks, the bricks burst, the
// tomato they held drops and explodes into confetti. Purely
// decorative; it consumes update ticks from the poll loop and emits
// sound cues through the audio engine.
package celebrate

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatick/audio"
)

// Scene coordinates are a fixed 240x100 world with y growing upward,
// scaled to the terminal on draw.
const (
	worldWidth  = 240.0
	worldHeight = 100.0

	groundY  = 10.0
	tomatoX  = 120.0
	tomatoY0 = 75.0

	// sceneFrames bounds the animation at the 10Hz poll cadence
	sceneFrames = 100

	gravity         = 1.5
	particleGravity = 0.2
	brickGravity    = 0.3
)

// CuePlayer plays sound cues; satisfied by *audio.Engine
type CuePlayer interface {
	PlayCue(audio.Cue) bool
}

type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
	color  tcell.Color
}

type brick struct {
	x, y    float64
	visible bool
}

// Scene is one run of the celebration animation
type Scene struct {
	sounds CuePlayer

	started bool
	frame   int

	catX, catY float64
	catVX      float64
	catVY      float64

	bricks    []brick
	bricksHit bool

	tomatoY         float64
	tomatoVY        float64
	tomatoExploding bool

	particles []particle
}

// NewScene creates an idle scene. sounds may be nil for silent runs.
func NewScene(sounds CuePlayer) *Scene {
	s := &Scene{
		sounds: sounds,
		catX:   20.0,
		catY:   groundY,
		catVX:  2.0,

		tomatoY: tomatoY0,
	}
	for i := -2; i <= 2; i++ {
		s.bricks = append(s.bricks, brick{
			x:       tomatoX + float64(i)*8.0,
			y:       tomatoY0 - 2.0,
			visible: true,
		})
	}
	return s
}

// Start begins the animation and its theme melody
func (s *Scene) Start() {
	s.started = true
	if s.sounds != nil {
		s.sounds.PlayCue(audio.CueTheme)
	}
}

// Stop ends the animation early
func (s *Scene) Stop() {
	s.started = false
}

// Active reports whether the scene is currently playing
func (s *Scene) Active() bool {
	return s.started && !s.Finished()
}

// Finished reports whether the animation has run its course
func (s *Scene) Finished() bool {
	return s.frame >= sceneFrames
}

// Update advances one poll tick of physics
func (s *Scene) Update() {
	if !s.started || s.Finished() {
		return
	}
	s.frame++

	// Cat movement and gravity
	s.catX += s.catVX
	s.catY += s.catVY
	if s.catY > groundY {
		s.catVY -= gravity
	} else {
		s.catY = groundY
		if s.catVY < 0 {
			s.catVY = 0
		}
	}

	// Jump when approaching the brick row
	if !s.bricksHit && s.catX > tomatoX-30 && s.catX < tomatoX-5 && s.catY <= groundY+1 {
		s.catVY = 15.0
		if s.sounds != nil {
			s.sounds.PlayCue(audio.CueJump)
		}
	}

	// Brick collision while rising
	if !s.bricksHit && s.catVY > 0 {
		for _, b := range s.bricks {
			if b.visible &&
				s.catX > b.x-5 && s.catX < b.x+5 &&
				s.catY >= b.y-10 && s.catY <= b.y-3 {
				s.hitBricks()
				break
			}
		}
	}

	// Tomato drops once its bricks are gone
	if s.bricksHit && !s.tomatoExploding {
		if s.tomatoY > groundY+5 {
			s.tomatoVY += 0.5
			s.tomatoY -= s.tomatoVY
		} else {
			s.tomatoY = groundY + 5
			s.explodeTomato()
		}
	}

	s.updateParticles()

	// Cat keeps running off-screen after the hit
	if s.bricksHit && s.catX < worldWidth-40 {
		s.catVX = 1.5
	}
}

func (s *Scene) hitBricks() {
	s.bricksHit = true
	if s.sounds != nil {
		s.sounds.PlayCue(audio.CueBrickBreak)
	}

	brickColor := tcell.NewRGBColor(139, 69, 19)
	for bi := range s.bricks {
		b := &s.bricks[bi]
		b.visible = false
		for j := 0; j < 12; j++ {
			angle := float64(j) * (2 * math.Pi / 12)
			speed := 2.0 + math.Mod(float64(j), 3)
			s.particles = append(s.particles, particle{
				x:     b.x,
				y:     b.y,
				vx:    math.Cos(angle) * speed,
				vy:    math.Sin(angle)*speed + 3.0,
				life:  1.0,
				color: brickColor,
			})
		}
	}

	// Bounce the cat back off the bricks
	s.catVY = -2.0
}

func (s *Scene) explodeTomato() {
	s.tomatoExploding = true
	if s.sounds != nil {
		s.sounds.PlayCue(audio.CuePowerUp)
	}

	colors := []tcell.Color{tcell.ColorRed, tcell.ColorGreen, tcell.ColorYellow}
	for i := 0; i < 25; i++ {
		angle := float64(i) * (2 * math.Pi / 25)
		speed := 2.0 + math.Mod(float64(i), 4)
		s.particles = append(s.particles, particle{
			x:     tomatoX,
			y:     s.tomatoY,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle)*speed + 2.0,
			life:  1.0,
			color: colors[i%len(colors)],
		})
	}
}

func (s *Scene) updateParticles() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.x += p.vx
		p.y += p.vy
		if p.color == tcell.ColorRed || p.color == tcell.ColorGreen || p.color == tcell.ColorYellow {
			p.vy -= particleGravity
			p.life -= 0.015
		} else {
			p.vy -= brickGravity
			p.life -= 0.02
		}
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Draw paints the scene full-screen
func (s *Scene) Draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()

	toScreen := func(wx, wy float64) (int, int) {
		x := int(wx / worldWidth * float64(width))
		y := int((1 - wy/worldHeight) * float64(height-1))
		return x, y
	}

	// Ground line
	_, gy := toScreen(0, groundY-2)
	groundStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for x := 0; x < width; x++ {
		screen.SetContent(x, gy, tcell.RuneHLine, nil, groundStyle)
	}

	// Bricks
	brickStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(205, 133, 63))
	for _, b := range s.bricks {
		if !b.visible {
			continue
		}
		bx, by := toScreen(b.x, b.y)
		for dx := -1; dx <= 1; dx++ {
			setCell(screen, bx+dx, by, '▓', brickStyle, width, height)
		}
	}

	// Tomato
	if !s.tomatoExploding {
		tx, ty := toScreen(tomatoX, s.tomatoY)
		setCell(screen, tx, ty, 'O', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), width, height)
	}

	// Cat, two cells wide
	cx, cy := toScreen(s.catX, s.catY)
	catStyle := tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	setCell(screen, cx, cy, '=', catStyle, width, height)
	setCell(screen, cx+1, cy, '^', catStyle, width, height)

	// Particles, dimmer as they die
	for _, p := range s.particles {
		px, py := toScreen(p.x, p.y)
		ch := '*'
		if p.life < 0.4 {
			ch = '.'
		}
		setCell(screen, px, py, ch, tcell.StyleDefault.Foreground(p.color), width, height)
	}

	screen.Show()
}

func setCell(screen tcell.Screen, x, y int, ch rune, style tcell.Style, width, height int) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	screen.SetContent(x, y, ch, nil, style)
}
