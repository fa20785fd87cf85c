package bot

import "sync"

// chatStates tracks, per chat, whether the bot is waiting for the text of
// a message to forward to the managers. Any command cancels the wait.
type chatStates struct {
	mu       sync.RWMutex
	awaiting map[int64]bool
}

func newChatStates() *chatStates {
	return &chatStates{awaiting: make(map[int64]bool)}
}

func (s *chatStates) setAwaiting(chatID int64, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awaiting[chatID] = v
}

func (s *chatStates) isAwaiting(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaiting[chatID]
}
