package sharing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/store"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/utils"
)

// initialMedals is the reputation every member starts a session with
const initialMedals = 3

// SharingService defines the business logic for the community sharing app:
// the single-session login lifecycle and the mutations on the shared
// community collections. Failed preconditions never touch state.
type SharingService struct {
	store store.CommunityStore

	mu          sync.Mutex
	subscribers []func()
}

// NewSharingService creates a new SharingService instance
func NewSharingService(store store.CommunityStore) *SharingService {
	return &SharingService{
		store: store,
	}
}

// OnChange registers a callback invoked after every successful mutation.
// Callbacks fire once the store write has fully completed, so readers always
// observe a complete snapshot.
func (s *SharingService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *SharingService) publish() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Login starts a session for the given member. All three fields must be
// non-empty; the password is checked for presence only and never stored.
func (s *SharingService) Login(username, password, pincode string) (models.User, error) {
	if username == "" || password == "" || pincode == "" {
		return models.User{}, fmt.Errorf("service: %w - all fields are required", sharingerrors.ErrInvalidCredentials)
	}

	user := models.User{
		Username: username,
		Pincode:  pincode,
		Medals:   initialMedals,
	}
	s.store.SetActiveUser(user)
	s.publish()

	return user, nil
}

// Logout ends the session unconditionally. The community collections are
// shared data and are left untouched.
func (s *SharingService) Logout() {
	s.store.ClearActiveUser()
	s.publish()
}

// ActiveUser returns the signed-in member, or false when there is none
func (s *SharingService) ActiveUser() (models.User, bool) {
	return s.store.ActiveUser()
}

// Posts returns the community feed, newest first
func (s *SharingService) Posts() []models.Post {
	return s.store.Posts()
}

// AddPost shares an experience post authored by the active user
func (s *SharingService) AddPost(text, image string) (models.Post, error) {
	user, ok := s.store.ActiveUser()
	if !ok {
		return models.Post{}, fmt.Errorf("service: add post: %w", sharingerrors.ErrNoActiveUser)
	}
	if strings.TrimSpace(text) == "" {
		return models.Post{}, fmt.Errorf("service: %w", sharingerrors.ErrEmptyPost)
	}

	post := models.Post{
		PostID:   utils.GenerateID(),
		UserID:   user.Username,
		Username: user.Username,
		Text:     text,
		Image:    image,
		Date:     utils.DateStamp(),
	}
	s.store.PrependPost(post)
	s.publish()

	return post, nil
}

// Items returns the lendable items, newest first
func (s *SharingService) Items() []models.Item {
	return s.store.Items()
}

// ItemInput carries the owner-supplied fields of a new lendable item
type ItemInput struct {
	Name        string
	Image       string
	Quantity    int
	Quality     int
	DamageLevel int
	Duration    models.LendDuration
}

// AddItem offers a new item for lending, owned by the active user
func (s *SharingService) AddItem(input ItemInput) (models.Item, error) {
	user, ok := s.store.ActiveUser()
	if !ok {
		return models.Item{}, fmt.Errorf("service: add item: %w", sharingerrors.ErrNoActiveUser)
	}
	if err := validateItemInput(input); err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		ItemID:      utils.GenerateID(),
		Name:        input.Name,
		Image:       input.Image,
		Quantity:    input.Quantity,
		Quality:     input.Quality,
		OwnerID:     user.Username,
		OwnerName:   user.Username,
		Duration:    input.Duration,
		DamageLevel: input.DamageLevel,
	}
	s.store.PrependItem(item)
	s.publish()

	return item, nil
}

// validateItemInput checks the documented field ranges for a new item
func validateItemInput(input ItemInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("service: %w - missing item name", sharingerrors.ErrInvalidItem)
	case input.Quantity < 1:
		return fmt.Errorf("service: %w - quantity must be at least 1", sharingerrors.ErrInvalidItem)
	case input.Quality < 1 || input.Quality > 10:
		return fmt.Errorf("service: %w - quality must be between 1 and 10", sharingerrors.ErrInvalidItem)
	case input.DamageLevel < 0 || input.DamageLevel > 10:
		return fmt.Errorf("service: %w - damage level must be between 0 and 10", sharingerrors.ErrInvalidItem)
	case !input.Duration.Valid():
		return fmt.Errorf("service: %w - duration must be a positive day count or permanent", sharingerrors.ErrInvalidItem)
	}
	return nil
}

// RequestItem marks an item as received by the active user. The write is
// last-write-wins: an existing receiver is overwritten, and an owner may
// request their own item.
func (s *SharingService) RequestItem(itemID string) (models.Item, error) {
	user, ok := s.store.ActiveUser()
	if !ok {
		return models.Item{}, fmt.Errorf("service: request item: %w", sharingerrors.ErrNoActiveUser)
	}

	item, err := s.store.SetItemReceiver(itemID, user.Username, user.Username)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: request item %s: %w", itemID, err)
	}
	s.publish()

	return item, nil
}

// ConfirmReturn records one side's confirmation that a lent item came back.
// Receiver fields stay set even after both sides confirm.
func (s *SharingService) ConfirmReturn(itemID string, isOwner bool) (models.Item, error) {
	item, err := s.store.ConfirmItemReturn(itemID, isOwner)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: confirm return on item %s: %w", itemID, err)
	}
	s.publish()

	return item, nil
}

// Requests returns the request board, newest first
func (s *SharingService) Requests() []models.Request {
	return s.store.Requests()
}

// RequestInput carries the fields of a new item request
type RequestInput struct {
	ItemName string
	Quantity int
	Quality  int
	Timeline string
}

// AddRequest posts a new item request on behalf of the active user
func (s *SharingService) AddRequest(input RequestInput) (models.Request, error) {
	user, ok := s.store.ActiveUser()
	if !ok {
		return models.Request{}, fmt.Errorf("service: add request: %w", sharingerrors.ErrNoActiveUser)
	}
	if err := validateRequestInput(input); err != nil {
		return models.Request{}, err
	}

	request := models.Request{
		RequestID: utils.GenerateID(),
		UserID:    user.Username,
		Username:  user.Username,
		ItemName:  input.ItemName,
		Quantity:  input.Quantity,
		Quality:   input.Quality,
		Timeline:  input.Timeline,
		Date:      utils.DateStamp(),
	}
	s.store.PrependRequest(request)
	s.publish()

	return request, nil
}

// validateRequestInput checks the documented field ranges for a new request
func validateRequestInput(input RequestInput) error {
	switch {
	case strings.TrimSpace(input.ItemName) == "":
		return fmt.Errorf("service: %w - missing item name", sharingerrors.ErrInvalidRequest)
	case input.Quantity < 1:
		return fmt.Errorf("service: %w - quantity must be at least 1", sharingerrors.ErrInvalidRequest)
	case input.Quality < 1 || input.Quality > 10:
		return fmt.Errorf("service: %w - quality must be between 1 and 10", sharingerrors.ErrInvalidRequest)
	}
	return nil
}
