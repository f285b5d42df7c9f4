package authservice

import "sync"

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[ID]*Account
}

func NewAccountRepository() AccountRepository {
	return &accountRepository{accounts: map[ID]*Account{}}
}

func (repo *accountRepository) FindByEmail(email string) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, acc := range repo.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (repo *accountRepository) FindByID(id ID) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if acc, ok := repo.accounts[id]; ok {
		return acc, nil
	}
	return nil, ErrAccountNotFound
}

func (repo *accountRepository) Create(acc *Account) (*Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	// Email uniqueness is enforced here, under the same lock as the write,
	// so two racing registrations cannot both get through.
	for _, existing := range repo.accounts {
		if existing.Email == acc.Email {
			return nil, ErrDuplicateEmail
		}
	}

	if acc.ID == "" {
		acc.ID = NewID()
	}
	repo.accounts[acc.ID] = acc
	return acc, nil
}

func (repo *accountRepository) Delete(acc *Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.accounts, acc.ID)
	return nil
}

type tokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*AccessToken
}

func NewTokenRepository() TokenRepository {
	return &tokenRepository{tokens: map[string]*AccessToken{}}
}

func (repo *tokenRepository) Insert(t *AccessToken) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.tokens[t.ID]; ok {
		return ErrDuplicateToken
	}
	repo.tokens[t.ID] = t
	return nil
}

func (repo *tokenRepository) FindByToken(value string) (*AccessToken, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if t, ok := repo.tokens[value]; ok {
		return t, nil
	}
	return nil, ErrTokenNotFound
}

func (repo *tokenRepository) ListByUser(userID ID) ([]AccessToken, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	list := []AccessToken{}
	for _, t := range repo.tokens {
		if t.UserID == userID {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (repo *tokenRepository) Delete(value string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.tokens, value)
	return nil
}
