package authservice

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/xid"
)

var signingKey = []byte(os.Getenv("AUTH_SIGNING_KEY"))

// TokenService owns token issuance and lookup. Uniqueness of the token
// value is enforced by the store's primary key, not pre-checked here; a
// duplicate Insert is rejected with ErrDuplicateToken.
type TokenService interface {
	Issue(userID ID) (*AccessToken, error)
	Insert(t *AccessToken) error
	GetByToken(value string) (*AccessToken, error)
	ListByUser(userID ID) ([]AccessToken, error)
}

type tokenService struct {
	tokens TokenRepository
}

func NewTokenService(tokens TokenRepository) TokenService {
	return &tokenService{tokens: tokens}
}

// Issue mints a fresh token value bound to userID and stores it. The value
// is a signed JWT so it is unguessable; the stored record stays the source
// of truth for validity.
func (svc *tokenService) Issue(userID ID) (*AccessToken, error) {
	value, err := mintTokenValue(string(userID))
	if err != nil {
		return nil, err
	}

	t := &AccessToken{ID: value, UserID: userID}
	if err := svc.tokens.Insert(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (svc *tokenService) Insert(t *AccessToken) error {
	return svc.tokens.Insert(t)
}

// GetByToken returns nil, not an error, for a value that was never issued;
// callers treat absence as unauthenticated rather than as a fault.
func (svc *tokenService) GetByToken(value string) (*AccessToken, error) {
	t, err := svc.tokens.FindByToken(value)
	if errors.Is(err, ErrTokenNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (svc *tokenService) ListByUser(userID ID) ([]AccessToken, error) {
	return svc.tokens.ListByUser(userID)
}

func mintTokenValue(subject string) (string, error) {
	// The jti claim keeps two tokens minted for the same user within one
	// second from colliding on the primary key.
	claims := jwt.StandardClaims{
		Issuer:   "auth",
		Subject:  subject,
		Id:       xid.New().String(),
		IssuedAt: time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}
