package sharing

import (
	"fmt"

	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
)

// Derived read-only views over the community collections. All of them are
// computed on demand from a fresh snapshot; nothing here is stored.

// PostsByUser returns the feed posts authored by the given member
func (s *SharingService) PostsByUser(username string) []models.Post {
	var posts []models.Post
	for _, p := range s.store.Posts() {
		if p.Username == username {
			posts = append(posts, p)
		}
	}
	return posts
}

// ItemsOwnedBy returns the items the given member has offered for lending
func (s *SharingService) ItemsOwnedBy(username string) []models.Item {
	var items []models.Item
	for _, i := range s.store.Items() {
		if i.OwnerName == username {
			items = append(items, i)
		}
	}
	return items
}

// ItemsHeldBy returns the items currently with the given member as receiver
func (s *SharingService) ItemsHeldBy(username string) []models.Item {
	var items []models.Item
	for _, i := range s.store.Items() {
		if i.ReceiverName == username {
			items = append(items, i)
		}
	}
	return items
}

// Profile is the per-member view shown on the profile screen
type Profile struct {
	User          models.User   `json:"user"`
	Tier          string        `json:"tier"`
	Posts         []models.Post `json:"posts"`
	LendedItems   []models.Item `json:"lended_items"`
	ReceivedItems []models.Item `json:"received_items"`
}

// Profile assembles the active user's profile view
func (s *SharingService) Profile() (Profile, error) {
	user, ok := s.store.ActiveUser()
	if !ok {
		return Profile{}, fmt.Errorf("service: profile: %w", sharingerrors.ErrNoActiveUser)
	}

	return Profile{
		User:          user,
		Tier:          user.MedalTier(),
		Posts:         s.PostsByUser(user.Username),
		LendedItems:   s.ItemsOwnedBy(user.Username),
		ReceivedItems: s.ItemsHeldBy(user.Username),
	}, nil
}

// SDGGoal is one of the sustainable-development goals tracked on the impact
// dashboard
type SDGGoal struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// ImpactSummary is the community-wide view shown on the impact dashboard
type ImpactSummary struct {
	MaterialsSaved    int       `json:"materials_saved"`
	MoneySavedUSD     int       `json:"money_saved_usd"`
	ItemsLended       int       `json:"items_lended"`
	SocialConnections int       `json:"social_connections"`
	Goals             []SDGGoal `json:"goals"`
}

// Demo baselines for the impact figures no live collection can produce
const (
	baselineMaterialsSaved = 45
	baselineMoneySavedUSD  = 1250
)

// ImpactSummary computes the impact dashboard. Items-lended and
// social-connections come from the live collections; materials and money
// saved are the demo baselines.
func (s *SharingService) ImpactSummary() ImpactSummary {
	items := s.store.Items()

	lended := 0
	members := map[string]struct{}{}
	for _, i := range items {
		if i.InUse() {
			lended++
		}
		members[i.OwnerName] = struct{}{}
		if i.ReceiverName != "" {
			members[i.ReceiverName] = struct{}{}
		}
	}
	for _, p := range s.store.Posts() {
		members[p.Username] = struct{}{}
	}
	for _, r := range s.store.Requests() {
		members[r.Username] = struct{}{}
	}

	return ImpactSummary{
		MaterialsSaved:    baselineMaterialsSaved,
		MoneySavedUSD:     baselineMoneySavedUSD,
		ItemsLended:       lended,
		SocialConnections: len(members),
		Goals: []SDGGoal{
			{ID: 12, Name: "Responsible Consumption and Production", Progress: 75},
			{ID: 11, Name: "Sustainable Cities and Communities", Progress: 60},
			{ID: 13, Name: "Climate Action", Progress: 55},
			{ID: 17, Name: "Partnerships for the Goals", Progress: 80},
		},
	}
}
