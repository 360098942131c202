package models

// User represents the member who is currently signed in
type User struct {
	Username string `json:"username"`
	Pincode  string `json:"pincode"`
	Medals   int    `json:"medals"`
}

// Medal tier thresholds
const (
	GoldThreshold   = 10
	SilverThreshold = 5
	BronzeThreshold = 1
)

// MedalTier returns the cosmetic membership tier for the user's medal count
func (u User) MedalTier() string {
	switch {
	case u.Medals >= GoldThreshold:
		return "Gold Member"
	case u.Medals >= SilverThreshold:
		return "Silver Member"
	case u.Medals >= BronzeThreshold:
		return "Bronze Member"
	default:
		return "New Member"
	}
}

// Post represents an experience shared on the community feed
type Post struct {
	PostID   string `json:"post_id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Text     string `json:"text"`
	Image    string `json:"image"`
	Date     string `json:"date"`
}

// Item represents a lendable item offered by a community member
type Item struct {
	ItemID            string       `json:"item_id"`
	Name              string       `json:"name"`
	Image             string       `json:"image"`
	Quantity          int          `json:"quantity"`
	Quality           int          `json:"quality"`
	OwnerID           string       `json:"owner_id"`
	OwnerName         string       `json:"owner_name"`
	Duration          LendDuration `json:"duration"`
	DamageLevel       int          `json:"damage_level"`
	ReceiverID        string       `json:"receiver_id,omitempty"`
	ReceiverName      string       `json:"receiver_name,omitempty"`
	OwnerConfirmed    bool         `json:"owner_confirmed,omitempty"`
	ReceiverConfirmed bool         `json:"receiver_confirmed,omitempty"`
	DeadlineCrossed   bool         `json:"deadline_crossed,omitempty"`
}

// InUse reports whether the item is currently with a receiver
func (i Item) InUse() bool {
	return i.ReceiverID != ""
}

// ReturnClosed reports whether both sides have confirmed the return
func (i Item) ReturnClosed() bool {
	return i.OwnerConfirmed && i.ReceiverConfirmed
}

// Request represents a member asking the community for an item
type Request struct {
	RequestID string `json:"request_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Quality   int    `json:"quality"`
	Timeline  string `json:"timeline"`
	Date      string `json:"date"`
}
