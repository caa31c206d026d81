package models

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, IDLength)

	hexRegex := regexp.MustCompile(`^[0-9a-f]{24}$`)
	assert.True(t, hexRegex.MatchString(id), "id should be hex string")
	assert.NotEqual(t, id, NewID())
}

func TestUser_BeforeCreate(t *testing.T) {
	u := &User{}
	require.NoError(t, u.BeforeCreate(nil))
	assert.Len(t, u.ID, IDLength)

	// 已有 ID 不覆盖
	u2 := &User{ID: "65a1f0c2e4b0a1b2c3d4e5f6"}
	require.NoError(t, u2.BeforeCreate(nil))
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", u2.ID)
}

func TestUser_PasswordHidden(t *testing.T) {
	b, err := json.Marshal(User{ID: "x", Username: "alice", Password: "$2a$10$hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "$2a$10$hash")
}

func TestCategory_BeforeCreate(t *testing.T) {
	c := &Category{Name: "food"}
	require.NoError(t, c.BeforeCreate(nil))
	assert.Len(t, c.ID, IDLength)
	assert.Equal(t, DefaultColorCode, c.ColorCode)

	c2 := &Category{ColorCode: "#ff0000"}
	require.NoError(t, c2.BeforeCreate(nil))
	assert.Equal(t, "#ff0000", c2.ColorCode)
}

func TestExpense_BeforeCreate(t *testing.T) {
	before := time.Now()
	e := &Expense{Amount: 10}
	require.NoError(t, e.BeforeCreate(nil))
	assert.Len(t, e.ID, IDLength)
	assert.False(t, e.Date.Before(before))

	when := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	e2 := &Expense{Date: when}
	require.NoError(t, e2.BeforeCreate(nil))
	assert.Equal(t, when, e2.Date)
}

func TestExpense_JSONOmitsUnloadedRelations(t *testing.T) {
	b, err := json.Marshal(Expense{ID: "x", CategoryID: "c", UserID: "u"})
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "category")
	assert.NotContains(t, m, "user")
	assert.Equal(t, "c", m["categoryId"])
}
