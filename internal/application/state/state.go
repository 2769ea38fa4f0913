package state

// RunState is the lifecycle state of the render loop
type RunState int

const (
	StateLoading RunState = iota
	StateRunning
	StateFailed
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRunning:
		return "Running"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
