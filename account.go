package authservice

import (
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/xid"
)

type ID string

// Account is a registered identity. Password always holds the bcrypt hash,
// never cleartext.
type Account struct {
	ID        ID        `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Nickname  string    `bson:"nickname" json:"nickname"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPassword = errors.New("invalid password")
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email in use")
	ErrTokenNotFound   = errors.New("token not found")
	ErrDuplicateToken  = errors.New("token in use")
)

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// NewAccount validates the email and returns an unsaved Account carrying
// the profile fields. ID, password hash and timestamp are filled in by the
// registration path.
func NewAccount(email string, nickname string) (*Account, error) {
	if !emailRegexp.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return &Account{Email: email, Nickname: nickname}, nil
}

func NewID() ID {
	return ID(xid.New().String())
}

func isValidID(id string) bool {
	if _, err := xid.FromString(id); err != nil {
		return false
	}
	return true
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", errors.New("error hashing password")
	}
	return string(hash), nil
}

// hashMatchesPassword reports whether password matches hash. A mismatch and
// a malformed hash are both a plain false; the login path never
// distinguishes them.
func hashMatchesPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AccountRepository persists accounts. Create returns the stored record and
// ErrDuplicateEmail when the store's unique email constraint rejects the
// write; lookups return ErrAccountNotFound for absent records.
type AccountRepository interface {
	FindByEmail(email string) (*Account, error)
	FindByID(id ID) (*Account, error)
	Create(acc *Account) (*Account, error)
	Delete(acc *Account) error
}
