package store

import (
	"testing"

	"omex-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCRUD(t *testing.T) {
	s, _ := newTestStore(t)
	userID := createUser(t, s.db, "owner@omex.test")

	customer := createCustomer(t, s, userID, "Awa Diallo", "+221771234567")
	assert.Equal(t, userID, customer.UserID)
	assert.True(t, customer.IsActive)
	assert.Zero(t, customer.TotalPurchases)

	got, err := s.GetCustomer(userID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Awa Diallo", got.Name)

	notes := "prefers mobile money"
	updated, err := s.UpdateCustomer(userID, customer.ID, CustomerPatch{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)

	require.NoError(t, s.DeleteCustomer(userID, customer.ID))

	var notFound *NotFoundError
	_, err = s.GetCustomer(userID, customer.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestCustomerValidation(t *testing.T) {
	s, _ := newTestStore(t)
	userID := createUser(t, s.db, "owner@omex.test")

	var validationErr *ValidationError

	err := s.CreateCustomer(userID, &models.Customer{Phone: "+221771234567"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)

	err = s.CreateCustomer(userID, &models.Customer{Name: "Awa"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone", validationErr.Field)

	err = s.CreateCustomer(userID, &models.Customer{Name: "Awa", Phone: "not-a-phone"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone", validationErr.Field)
}

func TestCustomerDuplicatePhonePerTenant(t *testing.T) {
	s, _ := newTestStore(t)
	ownerA := createUser(t, s.db, "a@omex.test")
	ownerB := createUser(t, s.db, "b@omex.test")

	createCustomer(t, s, ownerA, "Awa Diallo", "+221771234567")

	var validationErr *ValidationError
	err := s.CreateCustomer(ownerA, &models.Customer{Name: "Other", Phone: "+221771234567"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "phone", validationErr.Field)

	// Same number under a different tenant is fine
	require.NoError(t, s.CreateCustomer(ownerB, &models.Customer{Name: "Moussa", Phone: "+221771234567"}))
}

func TestCustomerTenantIsolation(t *testing.T) {
	s, _ := newTestStore(t)
	ownerA := createUser(t, s.db, "a@omex.test")
	ownerB := createUser(t, s.db, "b@omex.test")

	customerA := createCustomer(t, s, ownerA, "Awa Diallo", "+221771234567")
	createCustomer(t, s, ownerB, "Moussa Ba", "+221770000001")

	listB, err := s.ListCustomers(ownerB, CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, "Moussa Ba", listB[0].Name)

	var notFound *NotFoundError
	_, err = s.GetCustomer(ownerB, customerA.ID)
	require.ErrorAs(t, err, &notFound)

	name := "Hijacked"
	_, err = s.UpdateCustomer(ownerB, customerA.ID, CustomerPatch{Name: &name})
	require.ErrorAs(t, err, &notFound)

	require.ErrorAs(t, s.DeleteCustomer(ownerB, customerA.ID), &notFound)
}

func TestListCustomersNameSearch(t *testing.T) {
	s, _ := newTestStore(t)
	userID := createUser(t, s.db, "owner@omex.test")

	createCustomer(t, s, userID, "Awa Diallo", "+221771234567")
	createCustomer(t, s, userID, "Moussa Diallo", "+221770000001")
	createCustomer(t, s, userID, "Fatou Sow", "+221770000002")

	search := "Diallo"
	matches, err := s.ListCustomers(userID, CustomerFilter{Name: &search})
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
