package authservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAccessToken(token string) *AccessToken {
	return &AccessToken{ID: token, UserID: "testUserId"}
}

func TestInsert_StoresTokenIfNoDuplicate(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())
	tok := testAccessToken("testToken")

	err := svc.Insert(tok)

	assert.NoError(t, err)
	list, err := svc.ListByUser(tok.UserID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, tok.ID, list[0].ID)
	assert.Equal(t, tok.UserID, list[0].UserID)
}

func TestInsert_RejectsDuplicateTokenValue(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())

	assert.NoError(t, svc.Insert(testAccessToken("testToken")))
	assert.Equal(t, ErrDuplicateToken, svc.Insert(testAccessToken("testToken")))
}

func TestGetByToken_ReturnsNilWhenNoData(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())

	tok, err := svc.GetByToken("testToken")

	assert.NoError(t, err)
	assert.Nil(t, tok)
}

func TestGetByToken_ReturnsCorrespondingData(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())
	tok := testAccessToken("testToken")
	assert.NoError(t, svc.Insert(tok))

	got, err := svc.GetByToken(tok.ID)

	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, tok.ID, got.ID)
	assert.Equal(t, tok.UserID, got.UserID)
}

func TestListByUser_ReturnsOnlyThatUsersTokens(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())
	for _, tok := range []*AccessToken{
		testAccessToken("testToken"),
		testAccessToken("hello"),
		testAccessToken("another"),
		{ID: "foreign", UserID: "otherUserId"},
	} {
		assert.NoError(t, svc.Insert(tok))
	}

	list, err := svc.ListByUser("testUserId")

	assert.NoError(t, err)
	assert.Len(t, list, 3)
	for _, tok := range list {
		assert.Equal(t, ID("testUserId"), tok.UserID)
	}
}

func TestListByUser_ReturnsEmptyListForUnknownUser(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())

	list, err := svc.ListByUser("testUserId")

	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestIssue_MintsUniqueValuesBoundToUser(t *testing.T) {
	svc := NewTokenService(NewTokenRepository())

	first, err := svc.Issue("testUserId")
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, ID("testUserId"), first.UserID)

	second, err := svc.Issue("testUserId")
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := svc.GetByToken(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestTokenRepository_DeleteRemovesToken(t *testing.T) {
	repo := NewTokenRepository()
	svc := NewTokenService(repo)
	tok := testAccessToken("testToken")
	assert.NoError(t, svc.Insert(tok))

	assert.NoError(t, repo.Delete(tok.ID))

	got, err := svc.GetByToken(tok.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
