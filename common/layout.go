package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate the simulation is stepped at.
	TPS = 60
	// StepMS is the simulated time of one update tick.
	StepMS = 1000.0 / TPS
)
