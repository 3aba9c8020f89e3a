// Package models holds the JSON messages exchanged with the browser.
package models

import (
	"github.com/4cecoder/walker3d/assets"
	"github.com/4cecoder/walker3d/game"
)

const (
	TypeKey    = "key"
	TypeFrame  = "frame"
	TypeLoaded = "loaded"
)

// KeyMessage is sent by the page on keydown and keyup.
type KeyMessage struct {
	Type string `json:"type"`
	Key  string `json:"key"`
	Down bool   `json:"down"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Transition struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Fade float64 `json:"fade"` // seconds; 0 switches immediately
}

type CameraState struct {
	Position Point `json:"position"`
	Target   Point `json:"target"`
}

type PlayerState struct {
	Position   Point       `json:"position"`
	Yaw        float64     `json:"yaw"`
	Grounded   bool        `json:"grounded"`
	State      string      `json:"state"`
	Animation  string      `json:"animation"`
	Transition *Transition `json:"transition,omitempty"`
}

type FrameState struct {
	Tick   int          `json:"tick"`
	Player *PlayerState `json:"player,omitempty"` // absent until the model loads
	Camera CameraState  `json:"camera"`
}

type RenderInstruction struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

func NewFrameState(f game.Frame) FrameState {
	fs := FrameState{
		Tick: f.Tick,
		Camera: CameraState{
			Position: Point{f.Camera.Position.X(), f.Camera.Position.Y(), f.Camera.Position.Z()},
			Target:   Point{f.Camera.Target.X(), f.Camera.Target.Y(), f.Camera.Target.Z()},
		},
	}
	if !f.Loaded {
		return fs
	}
	ps := &PlayerState{
		Position:  Point{f.Position.X(), f.Position.Y(), f.Position.Z()},
		Yaw:       f.Yaw,
		Grounded:  f.Grounded,
		State:     f.State,
		Animation: string(f.Animation),
	}
	if t := f.Transition; t != nil {
		ps.Transition = &Transition{From: string(t.From), To: string(t.To), Fade: t.Fade.Seconds()}
	}
	fs.Player = ps
	return fs
}

// LoadedState tells the page which model to fetch and which clip names map
// to idle, run and jump.
type LoadedState struct {
	Model *assets.Model     `json:"model"`
	Clips map[string]string `json:"clips"`
}
