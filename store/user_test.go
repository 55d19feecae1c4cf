package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserProfile(t *testing.T) {
	s, _ := newTestStore(t)
	userID := createUser(t, s.db, "owner@omex.test")

	name := "Boutique OMEX"
	currency := "EUR"
	alerts := false
	user, err := s.UpdateUser(userID, UserPatch{
		BusinessName:   &name,
		Currency:       &currency,
		LowStockAlerts: &alerts,
	})
	require.NoError(t, err)
	assert.Equal(t, "Boutique OMEX", user.BusinessName)
	assert.Equal(t, "EUR", user.Currency)
	assert.False(t, user.LowStockAlerts)
}

func TestUpdateUserIgnoresImmutableFields(t *testing.T) {
	s, _ := newTestStore(t)
	userID := createUser(t, s.db, "owner@omex.test")

	original, err := s.GetUser(userID)
	require.NoError(t, err)

	var patch UserPatch
	payload := []byte(`{"id":"11111111-1111-1111-1111-111111111111","email":"swap@omex.test","businessName":"Renamed"}`)
	require.NoError(t, json.Unmarshal(payload, &patch))

	updated, err := s.UpdateUser(userID, patch)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.BusinessName)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.Email, updated.Email)
	assert.WithinDuration(t, original.CreatedAt, updated.CreatedAt, time.Second)
}

func TestUpdateUserValidation(t *testing.T) {
	s, _ := newTestStore(t)
	userID := createUser(t, s.db, "owner@omex.test")

	empty := ""
	var validationErr *ValidationError
	_, err := s.UpdateUser(userID, UserPatch{BusinessName: &empty})
	require.ErrorAs(t, err, &validationErr)
}
