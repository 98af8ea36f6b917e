package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dmatushkin/shoppingmaniac-sync/models"
)

var ErrNilDescriptor = errors.New("nil entity descriptor")

type memoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]models.ChangeToken
}

// NewMemoryTokenStore returns a TokenStore keeping all tokens in process
// memory. Used by tests and as the default when no DSN is configured.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{tokens: make(map[string]models.ChangeToken)}
}

func databaseTokenKey(scope models.Scope) string {
	return "db/" + string(scope)
}

func zoneTokenKey(zone models.ZoneID, scope models.Scope) string {
	return "zone/" + string(scope) + "/" + zone.Key()
}

func (s *memoryTokenStore) DatabaseToken(_ context.Context, scope models.Scope) (models.ChangeToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[databaseTokenKey(scope)], nil
}

func (s *memoryTokenStore) SetDatabaseToken(_ context.Context, scope models.Scope, token models.ChangeToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setToken(databaseTokenKey(scope), token)
	return nil
}

func (s *memoryTokenStore) ZoneToken(_ context.Context, zone models.ZoneID, scope models.Scope) (models.ChangeToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[zoneTokenKey(zone, scope)], nil
}

func (s *memoryTokenStore) SetZoneToken(_ context.Context, zone models.ZoneID, scope models.Scope, token models.ChangeToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setToken(zoneTokenKey(zone, scope), token)
	return nil
}

func (s *memoryTokenStore) setToken(key string, token models.ChangeToken) {
	if token == "" {
		delete(s.tokens, key)
		return
	}
	s.tokens[key] = token
}

type memoryEntityStore struct {
	mu       sync.Mutex
	entities map[string]models.SyncableItem
}

// NewMemoryEntityStore returns an EntityStore holding entities in process
// memory, keyed by record type and record name.
func NewMemoryEntityStore() EntityStore {
	return &memoryEntityStore{entities: make(map[string]models.SyncableItem)}
}

func entityKey(recordType, recordName string) string {
	return recordType + "/" + recordName
}

func (s *memoryEntityStore) FindOrCreate(_ context.Context, desc *models.EntityDescriptor, recordName string) (models.SyncableItem, error) {
	if desc == nil || desc.New == nil {
		return nil, ErrNilDescriptor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := entityKey(desc.RecordType, recordName)
	if item, ok := s.entities[key]; ok {
		return item, nil
	}

	item := desc.New()
	item.SetRecordName(recordName)
	s.entities[key] = item
	return item, nil
}

func (s *memoryEntityStore) Save(_ context.Context, items ...models.SyncableItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if item == nil || item.RecordName() == "" {
			continue // never-synced entities are keyed once a record name is minted
		}
		if s.contains(item) {
			continue
		}
		// record type is not recoverable from the item alone; entities that
		// did not come through FindOrCreate are keyed by record name only
		s.entities[entityKey("", item.RecordName())] = item
	}
	return nil
}

func (s *memoryEntityStore) contains(item models.SyncableItem) bool {
	for _, existing := range s.entities {
		if existing == item {
			return true
		}
	}
	return false
}
