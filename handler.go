package authservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

type registerAccountResponse struct {
	ID ID `json:"id"`
}

func RegisterAccountHandler(svc AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRegisterRequest(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		comm, err := svc.Register(req)
		if err != nil {
			encodeError(err, w)
			return
		}
		if comm.Result != Success {
			encodeOutcome(comm.Result, comm.Message, w)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("%s/%s", r.URL.Path, comm.Data))
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(registerAccountResponse{ID: comm.Data}); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

// LoginHandler verifies credentials and, on success, issues a fresh access
// token bound to the account.
func LoginHandler(svc AccountService, tokens TokenService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeLoginRequest(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		comm, err := svc.Login(req)
		if err != nil {
			encodeError(err, w)
			return
		}
		if comm.Result != Success {
			encodeOutcome(comm.Result, comm.Message, w)
			return
		}

		t, err := tokens.Issue(comm.Data.ID)
		if err != nil {
			encodeError(err, w)
			return
		}

		if err := json.NewEncoder(w).Encode(t); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func GetAccountHandler(svc AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		comm, err := svc.GetAccountInfo(authenticatedUserID(r))
		if err != nil {
			encodeError(err, w)
			return
		}
		if comm.Result != Success {
			encodeOutcome(comm.Result, comm.Message, w)
			return
		}

		if err := json.NewEncoder(w).Encode(comm.Data); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func RemoveAccountHandler(svc AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		comm, err := svc.RemoveAccount(authenticatedUserID(r))
		if err != nil {
			encodeError(err, w)
			return
		}
		encodeOutcome(comm.Result, comm.Message, w)
	})
}

func ListTokensHandler(tokens TokenService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		list, err := tokens.ListByUser(authenticatedUserID(r))
		if err != nil {
			encodeError(err, w)
			return
		}

		if err := json.NewEncoder(w).Encode(list); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
}

// RequireAuth admits requests carrying a bearer token known to the token
// store and exposes the owning user id on the request context. An unknown
// or missing token is unauthenticated, never a fault.
func RequireAuth(next http.Handler, tokens TokenService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value := bearerToken(r)
		if value == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		t, err := tokens.GetByToken(value)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if t == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, t.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticatedUserID(r *http.Request) ID {
	id, _ := r.Context().Value(userIDKey).(ID)
	return id
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func statusFromResult(result ResultType) int {
	switch result {
	case DataConflicts:
		return http.StatusConflict
	case DataNotFound:
		return http.StatusNotFound
	default:
		return http.StatusOK
	}
}

func encodeOutcome(result ResultType, message string, w http.ResponseWriter) {
	w.WriteHeader(statusFromResult(result))
	if err := json.NewEncoder(w).Encode(map[string]any{
		"result":  result,
		"message": message,
	}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func encodeError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPassword):
		w.WriteHeader(http.StatusUnprocessableEntity)
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateToken):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	if err := json.NewEncoder(w).Encode(map[string]any{
		"error": err.Error(),
	}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func decodeRegisterRequest(body io.ReadCloser) (RegisterRequest, error) {
	req := RegisterRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return RegisterRequest{}, err
	}
	return req, nil
}

func decodeLoginRequest(body io.ReadCloser) (LoginRequest, error) {
	req := LoginRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return LoginRequest{}, err
	}
	return req, nil
}
