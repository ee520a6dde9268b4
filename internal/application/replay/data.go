package replay

import "github.com/younwookim/locomotion/internal/domain/entity"

// Version is written into every recording
const Version = "2"

// FrameInput records input state for a single render frame
type FrameInput struct {
	N int `json:"n"` // Frame number
	entity.InputSample
	Turn  int  `json:"t,omitempty"` // -1 / +1 heading step
	Pause bool `json:"p,omitempty"` // pause toggle pressed
}

// Sample returns the actor input recorded for the frame
func (f FrameInput) Sample() entity.InputSample {
	return f.InputSample
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Profile   string       `json:"profile"`
	FrameRate int          `json:"frameRate"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameDT returns the render frame duration used during recording
func (d ReplayData) FrameDT() float64 {
	if d.FrameRate <= 0 {
		return 0
	}
	return 1 / float64(d.FrameRate)
}
