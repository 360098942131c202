package main

import (
	"fmt"
	"os"

	model "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/models"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/navigation"
	sharing "github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingService"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/server"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/store"
)

func main() {

	communityStore := store.NewMemoryStore()

	prepopulateCommunity(communityStore)

	sharingSvc := sharing.NewSharingService(communityStore)

	nav := navigation.NewNavigator()

	router := server.SetupRouter(sharingSvc, nav)

	port := getPort()
	fmt.Printf("Starting community sharing server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateCommunity adds the demo posts and items to the in-memory store
func prepopulateCommunity(st *store.MemoryStore) {
	posts := []model.Post{
		{
			PostID:   "1",
			UserID:   "demo",
			Username: "Sarah Chen",
			Text:     "Hey I've received this book collection and it's quite useful, I've saved loads of money! These books would have cost me $150+",
			Image:    "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
			Date:     "2025-10-18",
		},
		{
			PostID:   "2",
			UserID:   "demo2",
			Username: "John Smith",
			Text:     "Just borrowed a drill from the community. Saved $80 and met awesome neighbors! This platform is amazing.",
			Image:    "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=400",
			Date:     "2025-10-17",
		},
	}

	items := []model.Item{
		{
			ItemID:      "1",
			Name:        "Power Drill Set",
			Image:       "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=400",
			Quantity:    1,
			Quality:     9,
			OwnerID:     "user1",
			OwnerName:   "Mike Johnson",
			Duration:    model.ForDays(7),
			DamageLevel: 2,
		},
		{
			ItemID:      "2",
			Name:        "Camping Tent",
			Image:       "https://images.unsplash.com/photo-1478131143081-80f7f84ca84d?w=400",
			Quantity:    1,
			Quality:     8,
			OwnerID:     "user2",
			OwnerName:   "Emma Davis",
			Duration:    model.ForDays(14),
			DamageLevel: 3,
		},
		{
			ItemID:      "3",
			Name:        "Study Books Collection",
			Image:       "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
			Quantity:    5,
			Quality:     10,
			OwnerID:     "user3",
			OwnerName:   "David Lee",
			Duration:    model.Forever(),
			DamageLevel: 1,
		},
	}

	// Prepend in reverse so the first entry ends up newest
	for i := len(posts) - 1; i >= 0; i-- {
		st.PrependPost(posts[i])
	}
	for i := len(items) - 1; i >= 0; i-- {
		st.PrependItem(items[i])
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
