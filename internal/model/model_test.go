package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery_Defaults(t *testing.T) {
	q := &ListQuery{Skip: 5, Limit: 1}
	q.SetDefaults()
	assert.Equal(t, DefaultSkip, q.Skip)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.NoError(t, q.Validate())

	q.Skip = -1
	assert.Error(t, q.Validate())
}

func TestCreateUserPayload_Validate(t *testing.T) {
	valid := CreateUserPayload{Username: "alice", Email: "alice@example.com", Password: "pw"}
	assert.NoError(t, valid.Validate())

	tooLong := valid
	tooLong.Username = strings.Repeat("a", 65)
	assert.Error(t, tooLong.Validate())

	badEmail := valid
	badEmail.Email = "alice"
	assert.Error(t, badEmail.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())
}

func TestCreateItemPayload_Validate(t *testing.T) {
	assert.NoError(t, (&CreateItemPayload{Title: "book", OwnerID: 1}).Validate())
	assert.Error(t, (&CreateItemPayload{OwnerID: 1}).Validate())
	assert.Error(t, (&CreateItemPayload{Title: "book"}).Validate())
	assert.Error(t, (&CreateItemPayload{Title: strings.Repeat("t", 257), OwnerID: 1}).Validate())
}

func TestUser_JSONOmitsPasswordHash(t *testing.T) {
	body, err := json.Marshal(User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"alice","email":"alice@example.com"}`, string(body))
	assert.NotContains(t, string(body), "secret-hash")
}

func TestItem_JSONNullDescription(t *testing.T) {
	body, err := json.Marshal(Item{ID: 1, Title: "book", OwnerID: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"book","description":null,"owner_id":2}`, string(body))
}
