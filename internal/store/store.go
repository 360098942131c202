package store

import (
	"fmt"
	"sync"

	model "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
)

// CommunityStore defines the state storage interface for the sharing app:
// the single active-user slot plus the three shared community collections.
// Collections are ordered newest-first and append-only; only item receiver
// and confirmation fields are ever updated in place.
type CommunityStore interface {
	SetActiveUser(user model.User)
	ClearActiveUser()
	ActiveUser() (model.User, bool)

	PrependPost(post model.Post)
	Posts() []model.Post

	PrependItem(item model.Item)
	Items() []model.Item
	GetItem(itemID string) (model.Item, error)
	SetItemReceiver(itemID, receiverID, receiverName string) (model.Item, error)
	ConfirmItemReturn(itemID string, isOwner bool) (model.Item, error)

	PrependRequest(request model.Request)
	Requests() []model.Request
}

// MemoryStore is a concurrency-safe in-memory implementation of CommunityStore
type MemoryStore struct {
	mu       sync.RWMutex
	user     *model.User
	posts    []model.Post
	items    []model.Item
	requests []model.Request
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetActiveUser designates the given user as the single active session
func (s *MemoryStore) SetActiveUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// ClearActiveUser empties the active-user slot. Community collections are
// shared data and survive the session.
func (s *MemoryStore) ClearActiveUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// ActiveUser returns the active user, or false when nobody is signed in
func (s *MemoryStore) ActiveUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// PrependPost puts a post at the head of the feed (newest-first ordering)
func (s *MemoryStore) PrependPost(post model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]model.Post{post}, s.posts...)
}

// Posts returns a snapshot of the feed, newest first
func (s *MemoryStore) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Post(nil), s.posts...)
}

// PrependItem puts an item at the head of the lendable collection
func (s *MemoryStore) PrependItem(item model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Item{item}, s.items...)
}

// Items returns a snapshot of the lendable items, newest first
func (s *MemoryStore) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.items...)
}

// GetItem returns the item with the given id
func (s *MemoryStore) GetItem(itemID string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ItemID == itemID {
			return item, nil
		}
	}
	return model.Item{}, fmt.Errorf("get item %s: %w", itemID, sharingerrors.ErrItemNotFound)
}

// SetItemReceiver marks the item as held by the given receiver. The write is
// unconditional: an existing receiver is overwritten (last-write-wins) and no
// ownership check is applied. All other items are left unchanged.
func (s *MemoryStore) SetItemReceiver(itemID, receiverID, receiverName string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ItemID == itemID {
			s.items[i].ReceiverID = receiverID
			s.items[i].ReceiverName = receiverName
			return s.items[i], nil
		}
	}
	return model.Item{}, fmt.Errorf("set receiver on item %s: %w", itemID, sharingerrors.ErrItemNotFound)
}

// ConfirmItemReturn records one side's return confirmation. Receiver fields
// are kept even once both sides have confirmed; the lending cycle is closed
// by the pair of flags alone.
func (s *MemoryStore) ConfirmItemReturn(itemID string, isOwner bool) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ItemID == itemID {
			if isOwner {
				s.items[i].OwnerConfirmed = true
			} else {
				s.items[i].ReceiverConfirmed = true
			}
			return s.items[i], nil
		}
	}
	return model.Item{}, fmt.Errorf("confirm return on item %s: %w", itemID, sharingerrors.ErrItemNotFound)
}

// PrependRequest puts a request at the head of the request board
func (s *MemoryStore) PrependRequest(request model.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append([]model.Request{request}, s.requests...)
}

// Requests returns a snapshot of the request board, newest first
func (s *MemoryStore) Requests() []model.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Request(nil), s.requests...)
}
