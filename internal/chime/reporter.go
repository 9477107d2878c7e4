package chime

import (
	"context"
	"sync"

	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/logger"
)

var _ domain.Reporter = (*Reporter)(nil)

// Reporter plays the Ready chime on completion and the Fault tone on
// failure. Playback runs in the background so the engine never waits on
// the sound card. A nil sink makes every call a no-op.
type Reporter struct {
	sink  Sink
	log   *logger.Logger
	ready []byte
	fault []byte
	wg    sync.WaitGroup
}

// NewReporter renders both chimes up front and returns a reporter that
// plays them through sink.
func NewReporter(sink Sink, log *logger.Logger) *Reporter {
	return &Reporter{
		sink:  sink,
		log:   log.Named("chime"),
		ready: Synthesize(Ready),
		fault: Synthesize(Fault),
	}
}

// OnJobStarted is silent.
func (r *Reporter) OnJobStarted(ctx context.Context, job *domain.Job) {}

// OnJobComplete plays the Ready chime.
func (r *Reporter) OnJobComplete(ctx context.Context, job *domain.Job) {
	r.play("ready", r.ready)
}

// OnJobFailed plays the Fault tone.
func (r *Reporter) OnJobFailed(ctx context.Context, job *domain.Job, err error) {
	r.play("fault", r.fault)
}

func (r *Reporter) play(name string, pcm []byte) {
	if r.sink == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.sink.Play(pcm); err != nil {
			r.log.Warn("playing %s chime: %v", name, err)
		}
	}()
}

// Wait blocks until every chime started so far has finished.
func (r *Reporter) Wait() {
	r.wg.Wait()
}
