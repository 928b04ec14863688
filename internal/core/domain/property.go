package domain

import (
	"slices"
	"strings"
	"time"
)

// Property - объект аренды из каталога.
// Price - стоимость в денежных единицах в месяц.
type Property struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Location    string
	Bedrooms    int
	Bathrooms   float64 // шаг 0.5
	Area        float64 // кв. футы
	Images      []string
	Amenities   []string
	Featured    bool
	Available   bool
	LandlordID  string
	Rating      float64
	Reviews     []Review
}

// Review - отзыв о объекте. Принадлежит Property.
type Review struct {
	ID       string
	UserID   string
	UserName string
	Rating   float64
	Comment  string
	Date     time.Time
}

// NewReview создает отзыв и проверяет, что рейтинг лежит в [0,5].
func NewReview(id, userID, userName string, rating float64, comment string, date time.Time) (Review, error) {
	if rating < 0 || rating > 5 {
		return Review{}, ErrInvalidRating
	}
	return Review{
		ID:       id,
		UserID:   userID,
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
		Date:     date,
	}, nil
}

// AverageRating - средняя оценка по отзывам. 0, если отзывов нет.
func (p Property) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return sum / float64(len(p.Reviews))
}

// Clone возвращает глубокую копию, чтобы вызывающий код не мог изменить мастер-запись.
func (p Property) Clone() Property {
	cp := p
	cp.Images = slices.Clone(p.Images)
	cp.Amenities = slices.Clone(p.Amenities)
	cp.Reviews = slices.Clone(p.Reviews)
	return cp
}

// AmenityCategory - группа удобств для карточки объекта.
type AmenityCategory struct {
	Name      string
	Amenities []string
}

const otherAmenities = "Other"

var amenityKeywords = []struct {
	name     string
	keywords []string
}{
	{"Home Features", []string{"Backyard", "Balcony", "Patio", "Fireplace", "Pool", "Hot Tub", "Deck"}},
	{"Electronics", []string{"Wi-Fi", "TV", "Cable", "Smart Home"}},
	{"Kitchen", []string{"Fully Equipped Kitchen", "Dishwasher", "Coffee Maker", "Microwave"}},
	{"Climate Control", []string{"Air Conditioning", "Heating", "Ceiling Fan", "Central Air"}},
	{otherAmenities, []string{"Parking", "Gym", "Laundry", "Washer/Dryer", "Doorman", "Elevator", "Storage"}},
}

// CategorizeAmenities раскладывает удобства по группам по ключевым словам.
// Удобство может попасть в несколько групп; не попавшие никуда уходят в "Other".
// Пустые группы не возвращаются, порядок групп фиксирован.
func CategorizeAmenities(amenities []string) []AmenityCategory {
	matched := make(map[string]bool, len(amenities))
	result := make([]AmenityCategory, 0, len(amenityKeywords))

	var other *AmenityCategory
	for _, group := range amenityKeywords {
		var items []string
		for _, a := range amenities {
			for _, kw := range group.keywords {
				if strings.Contains(a, kw) {
					items = append(items, a)
					matched[a] = true
					break
				}
			}
		}
		if len(items) == 0 && group.name != otherAmenities {
			continue
		}
		result = append(result, AmenityCategory{Name: group.name, Amenities: items})
		if group.name == otherAmenities {
			other = &result[len(result)-1]
		}
	}

	for _, a := range amenities {
		if !matched[a] {
			other.Amenities = append(other.Amenities, a)
		}
	}

	if len(other.Amenities) == 0 {
		result = result[:len(result)-1]
	}
	return result
}
