package authservice

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// AccountService owns the account lifecycle. Expected business outcomes
// (duplicate email, missing account, failed login) come back inside the
// Communication envelope with a nil error; only store faults are returned
// as errors, for the caller's boundary to handle.
type AccountService interface {
	Register(req RegisterRequest) (Communication[ID], error)
	Login(req LoginRequest) (Communication[*Account], error)
	GetAccountInfo(userID ID) (Communication[*Account], error)
	RemoveAccount(userID ID) (Communication[struct{}], error)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Same text for a missing account and a wrong password, so a caller cannot
// probe which emails are registered.
const msgLoginFailed = "login failed, please check email or password"

type accountService struct {
	accounts AccountRepository
	events   EventSink
	logger   *slog.Logger
}

func NewAccountService(accounts AccountRepository, events EventSink) AccountService {
	return &accountService{accounts: accounts, events: events, logger: slog.Default()}
}

func (svc *accountService) Register(req RegisterRequest) (Communication[ID], error) {
	var none Communication[ID]

	acc, err := NewAccount(req.Email, req.Nickname)
	if err != nil {
		return none, err
	}
	if len(req.Password) < 8 {
		return none, ErrInvalidPassword
	}

	prev, err := svc.accounts.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return none, err
	}
	if prev != nil {
		return Communication[ID]{
			Result:  DataConflicts,
			Message: fmt.Sprintf("email %s already registered", req.Email),
		}, nil
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return none, err
	}

	acc.ID = NewID()
	acc.Password = hash
	acc.CreatedAt = time.Now().UTC()

	created, err := svc.accounts.Create(acc)
	if errors.Is(err, ErrDuplicateEmail) {
		// A concurrent registration won the race between the pre-check and
		// the write; the store's unique constraint is the authority.
		return Communication[ID]{
			Result:  DataConflicts,
			Message: fmt.Sprintf("email %s already registered", req.Email),
		}, nil
	}
	if err != nil {
		return none, err
	}

	svc.publishCreated(created)

	return Communication[ID]{Result: Success, Data: created.ID}, nil
}

// publishCreated announces the account after the store write has committed.
// The write is the durability boundary; a failed publish is logged and
// dropped, never unwound.
func (svc *accountService) publishCreated(acc *Account) {
	msg := AccountCreatedMessage{AccountID: acc.ID, CreatedAt: acc.CreatedAt}
	if err := svc.events.Publish(TopicAccountCreated, msg); err != nil {
		svc.logger.Error("account_created_publish_failed", "accountId", string(acc.ID), "error", err.Error())
	}
}

func (svc *accountService) Login(req LoginRequest) (Communication[*Account], error) {
	var none Communication[*Account]

	acc, err := svc.accounts.FindByEmail(req.Email)
	if errors.Is(err, ErrAccountNotFound) {
		return Communication[*Account]{Result: DataNotFound, Message: msgLoginFailed}, nil
	}
	if err != nil {
		return none, err
	}

	if !hashMatchesPassword(acc.Password, req.Password) {
		return Communication[*Account]{Result: DataNotFound, Message: msgLoginFailed}, nil
	}

	return Communication[*Account]{Result: Success, Data: acc}, nil
}

func (svc *accountService) GetAccountInfo(userID ID) (Communication[*Account], error) {
	var none Communication[*Account]

	acc, err := svc.accounts.FindByID(userID)
	if errors.Is(err, ErrAccountNotFound) {
		return Communication[*Account]{Result: DataNotFound, Message: "no account for given userId"}, nil
	}
	if err != nil {
		return none, err
	}

	return Communication[*Account]{Result: Success, Data: acc}, nil
}

func (svc *accountService) RemoveAccount(userID ID) (Communication[struct{}], error) {
	var none Communication[struct{}]

	acc, err := svc.accounts.FindByID(userID)
	if errors.Is(err, ErrAccountNotFound) {
		return Communication[struct{}]{Result: DataNotFound, Message: "no account for given userId"}, nil
	}
	if err != nil {
		return none, err
	}

	// Tokens issued to the account are independently lived and stay behind.
	if err := svc.accounts.Delete(acc); err != nil {
		return none, err
	}

	return Communication[struct{}]{Result: Success}, nil
}
