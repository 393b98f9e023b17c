// services/session_cache.go - Local fallback cache of the last-known identity
package services

import (
	"strconv"
	"sync"
	"time"
)

// SessionMaxAge bounds how long a cached identity may be trusted when the
// remote authority is unreachable.
const SessionMaxAge = 30 * 24 * time.Hour

// Storage keys. The cache persists exactly these four string values.
const (
	keyUserID    = "eduplay_user_id"
	keyEmail     = "eduplay_email"
	keyUsername  = "eduplay_username"
	keyTimestamp = "eduplay_session_timestamp"
)

// Identity is the minimal description of an authenticated user.
type Identity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// KeyValue is the storage medium behind the session cache.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStore is a mutex-guarded KeyValue. Concurrent writers follow
// last-writer-wins, matching the multi-tab shared-storage model.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// SessionCache is a weak cache of authentication state: an availability
// fallback, never the authority. It is overwritten on every successful
// remote check and cleared on logout or a remote "no user".
type SessionCache struct {
	kv  KeyValue
	now func() time.Time
}

func NewSessionCache(kv KeyValue) *SessionCache {
	return &SessionCache{kv: kv, now: time.Now}
}

// Store overwrites the cache with the identity affirmed by the remote
// authority, stamped with the current time.
func (c *SessionCache) Store(id Identity) {
	c.kv.Set(keyUserID, id.UserID)
	c.kv.Set(keyEmail, id.Email)
	c.kv.Set(keyUsername, id.Username)
	c.kv.Set(keyTimestamp, strconv.FormatInt(c.now().UnixMilli(), 10))
}

// Clear removes all four session keys.
func (c *SessionCache) Clear() {
	c.kv.Delete(keyUserID)
	c.kv.Delete(keyEmail)
	c.kv.Delete(keyUsername)
	c.kv.Delete(keyTimestamp)
}

// Identity returns the cached identity, if any is recorded.
func (c *SessionCache) Identity() (Identity, bool) {
	userID, ok := c.kv.Get(keyUserID)
	if !ok || userID == "" {
		return Identity{}, false
	}
	email, _ := c.kv.Get(keyEmail)
	username, _ := c.kv.Get(keyUsername)
	return Identity{UserID: userID, Email: email, Username: username}, true
}

// CacheState is the wire form of the four session keys, round-tripped
// between the client (which owns the storage) and the reconciler.
type CacheState struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

// NewCacheState builds the wire form for a just-affirmed identity, stamped
// with the current time. Used when handing a fresh session to the client.
func NewCacheState(id Identity) CacheState {
	return CacheState{
		UserID:    id.UserID,
		Email:     id.Email,
		Username:  id.Username,
		Timestamp: strconv.FormatInt(time.Now().UnixMilli(), 10),
	}
}

// Restore seeds the cache from a client-provided state.
func (c *SessionCache) Restore(state CacheState) {
	if state.UserID == "" {
		return
	}
	c.kv.Set(keyUserID, state.UserID)
	c.kv.Set(keyEmail, state.Email)
	c.kv.Set(keyUsername, state.Username)
	c.kv.Set(keyTimestamp, state.Timestamp)
}

// State snapshots the four keys; ok is false when the cache is empty.
func (c *SessionCache) State() (CacheState, bool) {
	userID, ok := c.kv.Get(keyUserID)
	if !ok || userID == "" {
		return CacheState{}, false
	}
	email, _ := c.kv.Get(keyEmail)
	username, _ := c.kv.Get(keyUsername)
	timestamp, _ := c.kv.Get(keyTimestamp)
	return CacheState{UserID: userID, Email: email, Username: username, Timestamp: timestamp}, true
}

// Valid reports whether the cache holds a user id stamped less than
// SessionMaxAge ago.
func (c *SessionCache) Valid() bool {
	userID, ok := c.kv.Get(keyUserID)
	if !ok || userID == "" {
		return false
	}
	raw, ok := c.kv.Get(keyTimestamp)
	if !ok {
		return false
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	age := c.now().Sub(time.UnixMilli(millis))
	return age < SessionMaxAge
}
