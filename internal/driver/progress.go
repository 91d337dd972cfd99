package driver

// Stage describes a per-file phase reported to a ProgressSink.
type Stage string

const (
	StageLoad     Stage = "load"
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// ProgressEvent reports progress for a single file.
type ProgressEvent struct {
	File   string
	Stage  Stage
	Status Status
}

// ProgressSink consumes progress events. ParseDir calls OnEvent from
// several workers at once.
type ProgressSink interface {
	OnEvent(ProgressEvent)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- ProgressEvent
}

func (s ChannelSink) OnEvent(evt ProgressEvent) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func (o Options) emit(file string, stage Stage, status Status) {
	if o.Progress == nil {
		return
	}
	o.Progress.OnEvent(ProgressEvent{File: file, Stage: stage, Status: status})
}
