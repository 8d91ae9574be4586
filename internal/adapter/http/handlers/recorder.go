package handlers

// Recorder receives business events from the handlers.
type Recorder interface {
	OrderCreated()
	OrderFinalized(price float64)
	OrderDeleted()
	ReportSubmitted()
	SyncFailed(op string)
}

type nopRecorder struct{}

func (nopRecorder) OrderCreated()          {}
func (nopRecorder) OrderFinalized(float64) {}
func (nopRecorder) OrderDeleted()          {}
func (nopRecorder) ReportSubmitted()       {}
func (nopRecorder) SyncFailed(string)      {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
