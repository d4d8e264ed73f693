package generate

import "time"

// Status classifies the outcome of processing one descriptor.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one descriptor.
type Outcome struct {
	// Descriptor is the absolute path of the processed descriptor file.
	Descriptor string
	// Page is the generated filename within the pages directory; set only
	// when Status is StatusWritten.
	Page string
	// Status tells whether the page was written, the descriptor skipped,
	// or processing failed.
	Status Status
	// Detail explains skips and failures.
	Detail string
}

// ClearResult aggregates one clear pass over the pages directory.
type ClearResult struct {
	// Deleted lists removed page filenames in directory order.
	Deleted []string
	// Kept counts candidates left in place because their first line is not
	// the marker.
	Kept int
	// Failures counts candidates that could not be inspected or removed.
	Failures int
	// Missing reports that the pages directory did not exist, which makes
	// the clear a no-op rather than an error.
	Missing bool
}

// BuildResult aggregates one build run.
type BuildResult struct {
	// Clear is the result of the pre-build clear pass.
	Clear ClearResult
	// Outcomes holds one entry per descriptor in walk order.
	Outcomes []Outcome
	// Duration is the wall-clock time of the whole run.
	Duration time.Duration
}

// Written counts descriptors that produced a page.
func (r *BuildResult) Written() int { return r.count(StatusWritten) }

// Skipped counts descriptors dropped for recoverable reasons.
func (r *BuildResult) Skipped() int { return r.count(StatusSkipped) }

// Failed counts descriptors that hit unexpected errors.
func (r *BuildResult) Failed() int { return r.count(StatusFailed) }

func (r *BuildResult) count(status Status) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}
