package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPrewarmWorkerStoresBatch(t *testing.T) {
	remote := &stubRemote{batch: func(context.Context, GameParameters) (*BatchResult, error) {
		b := validBatchResult()
		b.Story = narrativeStory("A Trilha")
		return b, nil
	}}
	store := newStubStore()
	w := NewPrewarmWorker(remote, store, nil, zerolog.Nop(), time.Second)

	w.handle(svcParams)
	assert.Equal(t, 4, store.savedQuestions)
	assert.Equal(t, 1, store.savedStories)
}

func TestPrewarmWorkerDropsInvalidSlots(t *testing.T) {
	remote := &stubRemote{batch: func(context.Context, GameParameters) (*BatchResult, error) {
		b := validBatchResult()
		b.Questions[2].Choices = nil
		return b, nil
	}}
	store := newStubStore()
	w := NewPrewarmWorker(remote, store, nil, zerolog.Nop(), time.Second)

	w.handle(svcParams)
	assert.Equal(t, 3, store.savedQuestions)
}

func TestPrewarmWorkerIgnoresGenerationFailure(t *testing.T) {
	remote := &stubRemote{batch: func(context.Context, GameParameters) (*BatchResult, error) {
		return nil, errors.New("quota exhausted")
	}}
	store := newStubStore()
	w := NewPrewarmWorker(remote, store, nil, zerolog.Nop(), time.Second)

	w.handle(svcParams)
	assert.Equal(t, 0, store.savedQuestions)
}

func TestPrewarmWorkerStops(t *testing.T) {
	queue := make(chan GameParameters)
	w := NewPrewarmWorker(nil, nil, queue, zerolog.Nop(), time.Second)

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()
	w.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
