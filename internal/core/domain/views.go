package domain

// PropertyDetails - представление для страницы объекта.
type PropertyDetails struct {
	Property          Property
	AverageRating     float64
	AmenityCategories []AmenityCategory
	Similar           []Property
	LandlordName      string
}

// BookingWithProperty - бронирование вместе с объектом.
// Property = nil, если объект пропал из каталога.
type BookingWithProperty struct {
	Booking  Booking
	Property *Property
}

// Dashboard - личный кабинет пользователя.
type Dashboard struct {
	User             User
	UpcomingBookings []BookingWithProperty
	PastBookings     []BookingWithProperty
	Favorites        []Property
	Listings         []Property // только для арендодателя
}

// WishlistView - избранное пользователя.
type WishlistView struct {
	PropertyIDs []string
	Properties  []Property
}

// BookingReceipt - результат отправки запроса на бронирование.
type BookingReceipt struct {
	Booking Booking
	Quote   StayQuote
}

// BookingQuote - расчет черновика бронирования без отправки.
type BookingQuote struct {
	PropertyID string
	StartDate  string
	EndDate    string
	Quote      StayQuote
}
