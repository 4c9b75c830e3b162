package prefs

import "sync"

// Store keeps per-user preferences and the last submitted media
// reference in memory. It is constructed once at startup and shared by
// all request handlers; a RWMutex guards the maps because every webhook
// update runs on its own goroutine.
//
// Nothing here survives a process restart. Swap for a persistent
// implementation behind the same methods if that ever matters.
type Store struct {
	mu sync.RWMutex

	formats     map[int64]Format
	sizes       map[int64]Size
	lastFileIDs map[int64]string
}

// NewStore creates an empty preference store.
func NewStore() *Store {
	return &Store{
		formats:     make(map[int64]Format),
		sizes:       make(map[int64]Size),
		lastFileIDs: make(map[int64]string),
	}
}

// Format returns the stored format for the user, or the PNG default.
func (s *Store) Format(userID int64) Format {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.formats[userID]; ok {
		return f
	}
	return DefaultFormat
}

// SetFormat normalizes raw and stores it for the user. It always succeeds.
func (s *Store) SetFormat(userID int64, raw string) {
	f := NormalizeFormat(raw)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formats[userID] = f
}

// Size returns the stored size mode for the user, or the orig default.
func (s *Store) Size(userID int64) Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sz, ok := s.sizes[userID]; ok {
		return sz
	}
	return DefaultSize
}

// SetSize normalizes raw and stores it for the user. It always succeeds.
func (s *Store) SetSize(userID int64, raw string) {
	sz := NormalizeSize(raw)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes[userID] = sz
}

// LastFileID returns the most recently submitted media reference for
// the user, if any.
func (s *Store) LastFileID(userID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.lastFileIDs[userID]
	return id, ok
}

// SetLastFileID records the user's most recent media reference.
// Last writer wins; concurrent submissions are not sequenced.
func (s *Store) SetLastFileID(userID int64, fileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFileIDs[userID] = fileID
}
