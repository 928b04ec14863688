package rest

import (
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- запросы ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateBookingRequest struct {
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// --- ответы ---

type ReviewResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   float64   `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

type PropertyResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Location    string           `json:"location"`
	Bedrooms    int              `json:"bedrooms"`
	Bathrooms   float64          `json:"bathrooms"`
	Area        float64          `json:"area"`
	Images      []string         `json:"images"`
	Amenities   []string         `json:"amenities"`
	Featured    bool             `json:"featured"`
	Available   bool             `json:"available"`
	LandlordID  string           `json:"landlordId"`
	Rating      float64          `json:"rating"`
	Reviews     []ReviewResponse `json:"reviews"`
}

type PropertyListResponse struct {
	Data  []PropertyResponse `json:"data"`
	Total int                `json:"total"`
}

type AmenityCategoryResponse struct {
	Name      string   `json:"name"`
	Amenities []string `json:"amenities"`
}

type PropertyDetailsResponse struct {
	Property          PropertyResponse          `json:"property"`
	AverageRating     float64                   `json:"averageRating"`
	AmenityCategories []AmenityCategoryResponse `json:"amenityCategories"`
	Similar           []PropertyResponse        `json:"similar"`
	LandlordName      string                    `json:"landlordName,omitempty"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Wishlist  []string  `json:"wishlist"`
	Listings  []string  `json:"listings,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type SessionResponse struct {
	State         string        `json:"state"`
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

type WishlistResponse struct {
	PropertyIDs []string           `json:"propertyIds"`
	Properties  []PropertyResponse `json:"properties,omitempty"`
}

type QuoteResponse struct {
	PropertyID string  `json:"propertyId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Nights     int     `json:"nights"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
}

type BookingReceiptResponse struct {
	BookingID  string  `json:"bookingId"`
	Nights     int     `json:"nights"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
}

type BookingResponse struct {
	ID         string            `json:"id"`
	PropertyID string            `json:"propertyId"`
	UserID     string            `json:"userId"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"totalPrice"`
	CreatedAt  time.Time         `json:"createdAt"`
	Property   *PropertyResponse `json:"property,omitempty"`
}

type DashboardResponse struct {
	User             UserResponse       `json:"user"`
	UpcomingBookings []BookingResponse  `json:"upcomingBookings"`
	PastBookings     []BookingResponse  `json:"pastBookings"`
	Favorites        []PropertyResponse `json:"favorites"`
	Listings         []PropertyResponse `json:"listings,omitempty"`
}

// --- маппинг домена в DTO ---

func toPropertyResponse(p domain.Property) PropertyResponse {
	reviews := make([]ReviewResponse, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = ReviewResponse{
			ID:       r.ID,
			UserID:   r.UserID,
			UserName: r.UserName,
			Rating:   r.Rating,
			Comment:  r.Comment,
			Date:     r.Date,
		}
	}
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		Images:      nonNilStrings(p.Images),
		Amenities:   nonNilStrings(p.Amenities),
		Featured:    p.Featured,
		Available:   p.Available,
		LandlordID:  p.LandlordID,
		Rating:      p.Rating,
		Reviews:     reviews,
	}
}

func toPropertyList(props []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(props))
	for i, p := range props {
		out[i] = toPropertyResponse(p)
	}
	return out
}

func toUserResponse(u domain.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role()),
		Wishlist:  nonNilStrings(u.Wishlist),
		CreatedAt: u.CreatedAt,
	}
	if listings, ok := u.Listings(); ok {
		resp.Listings = nonNilStrings(listings)
	}
	return resp
}

func toBookingResponse(b domain.Booking, p *domain.Property) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		UserID:     b.UserID,
		StartDate:  domain.FormatCalendarDate(b.StartDate),
		EndDate:    domain.FormatCalendarDate(b.EndDate),
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
	if p != nil {
		pr := toPropertyResponse(*p)
		resp.Property = &pr
	}
	return resp
}

func toBookingList(items []domain.BookingWithProperty) []BookingResponse {
	out := make([]BookingResponse, len(items))
	for i, item := range items {
		out[i] = toBookingResponse(item.Booking, item.Property)
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
