// Package runstate carries the basic meta-information of one tool run:
// the correlation id, binary name, version and lifecycle stage.
package runstate

type Stage string

const (
	StageNotReady Stage = "init"
	StagePreInit  Stage = "pre-init"
	StageReady    Stage = "event"
)

type RunState struct {
	RunID string

	StartTimestampUnix int64

	BinName string
	Version string

	Stage Stage
}

func NewRunState(o *RunState) *RunState {
	return o
}
