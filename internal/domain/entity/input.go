package entity

// InputSample is one frame of player input.
// Axis values are passed through as given; nothing clamps them to [-1,1].
type InputSample struct {
	Horizontal  float64 `json:"h,omitempty"`
	Vertical    float64 `json:"v,omitempty"`
	ToggleFloat bool    `json:"f,omitempty"` // edge: true only on the frame it was pressed
	Brake       bool    `json:"b,omitempty"` // held
}
