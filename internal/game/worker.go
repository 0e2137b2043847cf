package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// PrewarmWorker generates content for popular parameter tuples ahead of play
// and parks it in the store, so games started while the remote generator is
// slow or down still get non-emergency content. It bypasses the session
// tracker on purpose: prewarmed content belongs to no session yet.
type PrewarmWorker struct {
	remote    RemoteGenerator
	store     ContentStore
	queue     <-chan GameParameters
	logger    zerolog.Logger
	timeout   time.Duration
	shutdownC chan struct{}
}

func NewPrewarmWorker(remote RemoteGenerator, store ContentStore, queue <-chan GameParameters, logger zerolog.Logger, timeout time.Duration) *PrewarmWorker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PrewarmWorker{
		remote:    remote,
		store:     store,
		queue:     queue,
		logger:    logger.With().Str("component", "prewarm_worker").Logger(),
		timeout:   timeout,
		shutdownC: make(chan struct{}),
	}
}

func (w *PrewarmWorker) Run() {
	for {
		select {
		case <-w.shutdownC:
			w.logger.Info().Msg("prewarm worker stopping")
			return
		case params := <-w.queue:
			w.handle(params)
		}
	}
}

func (w *PrewarmWorker) handle(params GameParameters) {
	if w.remote == nil || w.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	batch, err := w.remote.GenerateBatch(ctx, params)
	if err != nil {
		w.logger.Warn().Err(err).Str("subject", params.Subject).Str("theme", params.Theme).Msg("prewarm generation failed")
		return
	}
	if len(batch.Questions) != len(Angles) {
		w.logger.Warn().Int("questions", len(batch.Questions)).Msg("prewarm batch incomplete, dropping")
		return
	}
	for i := range batch.Questions {
		q := batch.Questions[i]
		q.Source = SourceRemote
		if err := q.Validate(); err != nil {
			w.logger.Warn().Err(err).Int("slot", i).Msg("prewarm question invalid, dropping slot")
			continue
		}
		if err := w.store.SaveQuestion(ctx, params, i, q); err != nil {
			w.logger.Warn().Err(err).Int("slot", i).Msg("prewarm save failed")
		}
	}
	if batch.Story != nil {
		if err := w.store.SaveStory(ctx, params, *batch.Story); err != nil {
			w.logger.Warn().Err(err).Msg("prewarm story save failed")
		}
	}
	w.logger.Debug().Str("subject", params.Subject).Str("theme", params.Theme).Msg("prewarmed content stored")
}

func (w *PrewarmWorker) Stop() {
	close(w.shutdownC)
}
