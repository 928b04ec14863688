package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role - роль пользователя. Фиксируется при создании.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

// ParseRole разбирает роль из строки.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTenant:
		return RoleTenant, nil
	case RoleLandlord:
		return RoleLandlord, nil
	}
	return "", ErrInvalidRole
}

// Account - вариант учетной записи: TenantAccount или LandlordAccount.
// Других реализаций нет (isAccount не экспортируется).
type Account interface {
	Role() Role
	isAccount()
}

// TenantAccount - арендатор.
type TenantAccount struct{}

func (TenantAccount) Role() Role { return RoleTenant }
func (TenantAccount) isAccount() {}

// LandlordAccount - арендодатель, управляет списком объектов.
type LandlordAccount struct {
	Listings []string // ID объектов из каталога (слабые ссылки)
}

func (LandlordAccount) Role() Role { return RoleLandlord }
func (LandlordAccount) isAccount() {}

// NewAccount создает пустую учетную запись для роли.
func NewAccount(role Role) (Account, error) {
	switch role {
	case RoleTenant:
		return TenantAccount{}, nil
	case RoleLandlord:
		return LandlordAccount{Listings: []string{}}, nil
	}
	return nil, ErrInvalidRole
}

// User - основная доменная сущность пользователя.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // пустой у пользователей из фикстур: пароль не проверяется
	Wishlist     []string
	Bookings     []Booking
	Account      Account
	CreatedAt    time.Time
}

// NewUser создает пользователя с новым ID, пустым избранным и без бронирований.
// Если hashPassword = true, пароль хэшируется через bcrypt.
func NewUser(name, email, password string, role Role, hashPassword bool) (*User, error) {
	account, err := NewAccount(role)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Wishlist:  []string{},
		Bookings:  []Booking{},
		Account:   account,
		CreatedAt: time.Now().UTC(),
	}

	if hashPassword {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}
	return user, nil
}

// Role возвращает роль, определенную вариантом учетной записи.
func (u *User) Role() Role {
	if u.Account == nil {
		return RoleTenant
	}
	return u.Account.Role()
}

// Listings возвращает объекты арендодателя. ok = false для арендатора.
func (u *User) Listings() ([]string, bool) {
	switch acc := u.Account.(type) {
	case LandlordAccount:
		return acc.Listings, true
	case *LandlordAccount:
		return acc.Listings, true
	default:
		return nil, false
	}
}

// HasPassword сообщает, хранится ли у пользователя хэш пароля.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// CheckPassword сравнивает пароль с хэшем.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Clone возвращает глубокую копию пользователя.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Wishlist = slices.Clone(u.Wishlist)
	if cp.Wishlist == nil {
		cp.Wishlist = []string{}
	}
	cp.Bookings = slices.Clone(u.Bookings)
	if cp.Bookings == nil {
		cp.Bookings = []Booking{}
	}
	if listings, ok := u.Listings(); ok {
		cp.Account = LandlordAccount{Listings: slices.Clone(listings)}
	}
	return &cp
}
