package controllers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/IsuruKaushika/UNITUNES-sub000/models"
)

func TestAddRentItemStartsAvailable(t *testing.T) {
	store := newMemRentItems()

	fields := map[string]string{
		"itemName": "Mini fridge",
		"contact":  "0712223333",
		"price":    "2500",
	}
	rec := httptest.NewRecorder()
	AddRentItem(store, &fakeMedia{})(rec, multipartRequest(t, "/api/rentitem/add", fields, nil))

	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	assert.Equal(t, "Rent Item Added Successfully", body["message"])

	items, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsAvailable, "new rent items start available")
}

func TestSetRentItemAvailability(t *testing.T) {
	store := newMemRentItems()
	item := models.RentItem{ItemName: "Bicycle", Contact: "0714445555", Price: 500, IsAvailable: true}
	require.NoError(t, store.Insert(context.Background(), &item))

	fields := map[string]string{"id": item.ID.Hex(), "isAvailable": "false"}
	rec := httptest.NewRecorder()
	SetRentItemAvailability(store)(rec, multipartRequest(t, "/api/rentitem/availability", fields, nil))

	body := decodeBody(t, rec)
	require.Equal(t, true, body["success"])
	assert.Equal(t, "Rent Item Availability Updated", body["message"])

	got, err := store.ByID(context.Background(), item.ID.Hex())
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestSetRentItemAvailabilityRejectsGarbage(t *testing.T) {
	store := newMemRentItems()
	item := models.RentItem{ItemName: "Bicycle", Contact: "0714445555", IsAvailable: true}
	require.NoError(t, store.Insert(context.Background(), &item))

	fields := map[string]string{"id": item.ID.Hex(), "isAvailable": "maybe"}
	rec := httptest.NewRecorder()
	SetRentItemAvailability(store)(rec, multipartRequest(t, "/api/rentitem/availability", fields, nil))

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid availability value", body["message"])

	got, err := store.ByID(context.Background(), item.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.IsAvailable, "rejected input must not change the record")
}

func TestSetRentItemAvailabilityNotFound(t *testing.T) {
	store := newMemRentItems()

	fields := map[string]string{"id": primitive.NewObjectID().Hex(), "isAvailable": "true"}
	rec := httptest.NewRecorder()
	SetRentItemAvailability(store)(rec, multipartRequest(t, "/api/rentitem/availability", fields, nil))

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Rent Item not found", body["message"])
}
