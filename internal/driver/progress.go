package driver

import "time"

// Stage describes a per-file formatting phase.
type Stage string

const (
	// StageRead is the load-and-decode stage.
	StageRead Stage = "read"
	// StageParse is the tokenize-and-parse stage.
	StageParse Stage = "parse"
	// StageAnnotate is the spacing-annotation stage.
	StageAnnotate Stage = "annotate"
	// StagePrint is the output-rendering stage.
	StagePrint Stage = "print"
	// StageWrite is the write-back stage.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is currently being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished without errors.
	StatusDone Status = "done"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a single file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Changed bool
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Files are formatted concurrently,
// so OnEvent must tolerate calls from multiple goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageRead, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, file string, stage Stage) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: StatusWorking})
}

func emitDone(sink ProgressSink, file string, stage Stage, changed bool, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: StatusDone, Changed: changed, Elapsed: elapsed})
}

func emitError(sink ProgressSink, file string, stage Stage, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: StatusError, Err: err, Elapsed: elapsed})
}
