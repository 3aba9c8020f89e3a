package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Frame is everything the renderer needs to draw one tick.
type Frame struct {
	Tick       int
	Loaded     bool
	Position   mgl64.Vec3
	Yaw        float64
	Grounded   bool
	State      string
	Animation  Animation
	Transition *Transition
	Camera     Camera
}

// Renderer draws frames. It is supplied by the host.
type Renderer interface {
	Render(Frame) error
}

// Session is the single mutable game state of one play session. It is not
// safe for concurrent use; the host calls it from one goroutine.
type Session struct {
	ID     string
	tuning Tuning
	log    *zap.Logger

	input  InputState
	player *Player
	tick   int
	// Carries the spawn clip to the first frame after Spawn.
	pending *Transition

	Landings int
}

func NewSession(id string, t Tuning, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{ID: id, tuning: t, log: log.With(zap.String("session", id))}
}

// SetKey records a key press or release. It takes effect on the next frame.
func (s *Session) SetKey(k Key, down bool) {
	s.input.Set(k, down)
}

// Spawn creates the player once its model is available. Later calls are ignored.
func (s *Session) Spawn() {
	if s.player != nil {
		return
	}
	s.player = NewPlayer(s.tuning.Spawn, s.tuning.CrossFade)
	s.pending = &Transition{To: s.player.Anim.Current()}
	s.log.Info("player spawned", zap.Float64s("position", s.player.Position[:]))
}

// Player returns nil until Spawn has been called.
func (s *Session) Player() *Player {
	return s.player
}

func (s *Session) Tick() int {
	return s.tick
}

// Frame runs one tick: read input, move and collide, pick the animation,
// then hand the result to r.
func (s *Session) Frame(r Renderer) error {
	s.tick++
	in := s.input

	f := Frame{Tick: s.tick}
	if s.player == nil {
		f.Camera = Follow(s.tuning.Spawn, s.tuning.CameraOffset)
		return r.Render(f)
	}

	res := Step(s.player, in, s.tuning)
	if res.Transition == nil && s.pending != nil {
		res.Transition = s.pending
	}
	s.pending = nil
	if res.Landed {
		s.Landings++
		s.log.Debug("landed", zap.Int("tick", s.tick))
	}

	p := s.player
	f.Loaded = true
	f.Position = p.Position
	f.Yaw = p.Yaw
	f.Grounded = p.Grounded
	f.State = p.State.String()
	f.Animation = p.Anim.Current()
	f.Transition = res.Transition
	f.Camera = Follow(p.Position, s.tuning.CameraOffset)
	return r.Render(f)
}
