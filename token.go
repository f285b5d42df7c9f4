package authservice

// AccessToken is an opaque bearer credential. The token value doubles as
// the primary key; UserID groups tokens for per-user queries.
type AccessToken struct {
	ID     string `bson:"_id" json:"token"`
	UserID ID     `bson:"userId" json:"userId"`
}

// TokenRepository persists access tokens. Insert returns ErrDuplicateToken
// when the value already exists; FindByToken returns ErrTokenNotFound on a
// miss. Nothing in the account path cascades into Delete, but stores must
// support it.
type TokenRepository interface {
	Insert(t *AccessToken) error
	FindByToken(value string) (*AccessToken, error)
	ListByUser(userID ID) ([]AccessToken, error)
	Delete(value string) error
}
