package agent

import (
	"sync"

	"tailortalk/models"
)

// session pairs a dialogue state with the mutex that serializes its
// turns. Turns for the same session id never interleave; distinct
// sessions proceed independently.
type session struct {
	mu    sync.Mutex
	state *models.DialogueState
}

// SessionStore owns every live dialogue session for the process
// lifetime. Sessions are created lazily on first sight of an id and are
// never evicted here; expiry is a deployment concern.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session)}
}

func (s *SessionStore) getOrCreate(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{state: &models.DialogueState{Stage: models.StageInitial}}
		s.sessions[id] = sess
	}
	return sess
}

// Peek returns a copy of a session's dialogue state, without the
// history slice being shared with callers.
func (s *SessionStore) Peek(id string) (models.DialogueState, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return models.DialogueState{}, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	snapshot := *sess.state
	snapshot.Context = append([]models.TurnRecord(nil), sess.state.Context...)
	return snapshot, true
}

// Count reports the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
