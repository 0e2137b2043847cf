package game

// sessionState is the per-game uniqueness tracker. It is owned by the Service
// and only touched while the service mutex is held. The version counter lets
// in-flight generation detect that the session restarted underneath it, in
// which case the late result is dropped instead of polluting the new session.
type sessionState struct {
	version      uint64
	usedContent  map[string]struct{}
	usedWords    map[string]struct{}
	pendingStory *StoryData
}

func newSessionState(version uint64) *sessionState {
	return &sessionState{
		version:     version,
		usedContent: map[string]struct{}{},
		usedWords:   map[string]struct{}{},
	}
}

// seen reports whether either hash already appeared this session. Empty hashes
// are treated as collisions: empty content can never satisfy uniqueness.
func (s *sessionState) seen(contentHash, wordHash string) bool {
	if contentHash == "" || wordHash == "" {
		return true
	}
	if _, ok := s.usedContent[contentHash]; ok {
		return true
	}
	_, ok := s.usedWords[wordHash]
	return ok
}

func (s *sessionState) register(contentHash, wordHash string) {
	s.usedContent[contentHash] = struct{}{}
	s.usedWords[wordHash] = struct{}{}
}
