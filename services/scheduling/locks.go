package scheduling

import "sync"

// roomLockStore hands out one mutex per room so the conflict check and the
// subsequent write run as a unit within this process. Locks are never
// reclaimed; the room set is small and admin-managed.
type roomLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLockStore() *roomLockStore {
	return &roomLockStore{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a given room, creating one if it doesn't exist.
func (s *roomLockStore) get(roomID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[roomID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[roomID] = lock
	}
	return lock
}
