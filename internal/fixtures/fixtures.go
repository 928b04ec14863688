// Package fixtures - демонстрационный каталог и пользователи,
// которыми заполняется пустое хранилище при старте.
package fixtures

import (
	"sync"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword - пароль всех демонстрационных пользователей в строгом режиме.
const DemoPassword = "password123"

func date(s string) time.Time {
	t, err := time.Parse(domain.CalendarDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Properties возвращает новый экземпляр каталога.
func Properties() []domain.Property {
	return []domain.Property{
		{
			ID:          "1",
			Title:       "Modern Downtown Apartment",
			Description: "Bright two-bedroom apartment in the heart of downtown, walking distance to restaurants and transit.",
			Price:       1200,
			Location:    "San Francisco, CA",
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        850,
			Images:      []string{"/images/properties/1-living.jpg", "/images/properties/1-bedroom.jpg"},
			Amenities:   []string{"Wi-Fi", "Air Conditioning", "Dishwasher", "Gym", "Balcony"},
			Featured:    true,
			Available:   true,
			LandlordID:  "landlord1",
			Rating:      4.5,
			Reviews: []domain.Review{
				{ID: "r1", UserID: "user1", UserName: "John Doe", Rating: 5, Comment: "Great location and very clean.", Date: date("2023-10-12")},
				{ID: "r2", UserID: "user2", UserName: "Emily Clark", Rating: 4, Comment: "Nice place, a bit noisy at night.", Date: date("2023-11-03")},
			},
		},
		{
			ID:          "2",
			Title:       "Spacious Family Home",
			Description: "Three-bedroom home with a private backyard in a quiet neighbourhood.",
			Price:       2500,
			Location:    "New York, NY",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1800,
			Images:      []string{"/images/properties/2-front.jpg"},
			Amenities:   []string{"Backyard", "Parking", "Washer/Dryer", "Fully Equipped Kitchen", "Heating"},
			Featured:    true,
			Available:   true,
			LandlordID:  "landlord2",
			Rating:      4.8,
			Reviews: []domain.Review{
				{ID: "r3", UserID: "user3", UserName: "Liam Scott", Rating: 5, Comment: "Perfect for our family.", Date: date("2023-09-21")},
			},
		},
		{
			ID:          "3",
			Title:       "Cozy Studio Loft",
			Description: "Compact loft with high ceilings, ideal for a single professional.",
			Price:       800,
			Location:    "Austin, TX",
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        500,
			Images:      []string{"/images/properties/3-loft.jpg"},
			Amenities:   []string{"Wi-Fi", "Coffee Maker", "Ceiling Fan"},
			Featured:    false,
			Available:   true,
			LandlordID:  "landlord1",
			Rating:      4.2,
			Reviews: []domain.Review{
				{ID: "r4", UserID: "user1", UserName: "John Doe", Rating: 4, Comment: "Small but comfortable.", Date: date("2023-12-11")},
				{ID: "r5", UserID: "user4", UserName: "Ava Lee", Rating: 4.5, Comment: "Loved the natural light.", Date: date("2024-01-08")},
			},
		},
		{
			ID:          "4",
			Title:       "Luxury Beachfront Villa",
			Description: "Four-bedroom villa steps from the beach with a private pool.",
			Price:       3200,
			Location:    "Miami, FL",
			Bedrooms:    4,
			Bathrooms:   3.5,
			Area:        2800,
			Images:      []string{"/images/properties/4-pool.jpg", "/images/properties/4-terrace.jpg"},
			Amenities:   []string{"Pool", "Hot Tub", "Smart Home", "Central Air", "Parking", "Rooftop Terrace"},
			Featured:    true,
			Available:   true,
			LandlordID:  "landlord2",
			Rating:      4.9,
			Reviews: []domain.Review{
				{ID: "r6", UserID: "user5", UserName: "Noah King", Rating: 5, Comment: "Unforgettable stay.", Date: date("2023-08-30")},
			},
		},
		{
			ID:          "5",
			Title:       "Suburban Townhouse",
			Description: "Three-bedroom townhouse with a garage and a small patio.",
			Price:       1800,
			Location:    "Seattle, WA",
			Bedrooms:    3,
			Bathrooms:   2.5,
			Area:        1500,
			Images:      []string{"/images/properties/5-townhouse.jpg"},
			Amenities:   []string{"Patio", "Parking", "Dishwasher", "Heating", "Cable TV"},
			Featured:    false,
			Available:   true,
			LandlordID:  "landlord1",
			Rating:      4.4,
		},
		{
			ID:          "6",
			Title:       "Mountain View Cabin",
			Description: "Two-bedroom cabin with a fireplace and views of the Rockies.",
			Price:       950,
			Location:    "Denver, CO",
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        900,
			Images:      []string{"/images/properties/6-cabin.jpg"},
			Amenities:   []string{"Fireplace", "Deck", "Wi-Fi", "Heating"},
			Featured:    false,
			Available:   false,
			LandlordID:  "landlord2",
			Rating:      4.6,
		},
	}
}

var demoHash = sync.OnceValue(func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
})

// Users возвращает демонстрационных пользователей.
func Users() []*domain.User {
	hash := demoHash()
	created := date("2023-01-01")

	return []*domain.User{
		{
			ID:           "user1",
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: hash,
			Wishlist:     []string{"1", "4"},
			Bookings: []domain.Booking{
				{
					ID:         "b1",
					PropertyID: "3",
					UserID:     "user1",
					StartDate:  date("2023-12-05"),
					EndDate:    date("2023-12-10"),
					Status:     domain.BookingConfirmed,
					TotalPrice: 4250,
					CreatedAt:  date("2023-11-20"),
				},
			},
			Account:   domain.TenantAccount{},
			CreatedAt: created,
		},
		{
			ID:           "landlord1",
			Name:         "Sarah Johnson",
			Email:        "sarah@example.com",
			PasswordHash: hash,
			Wishlist:     []string{},
			Bookings:     []domain.Booking{},
			Account:      domain.LandlordAccount{Listings: []string{"1", "3"}},
			CreatedAt:    created,
		},
		{
			ID:           "landlord2",
			Name:         "Michael Brown",
			Email:        "michael@example.com",
			PasswordHash: hash,
			Wishlist:     []string{},
			Bookings:     []domain.Booking{},
			Account:      domain.LandlordAccount{Listings: []string{"2", "4"}},
			CreatedAt:    created,
		},
	}
}
