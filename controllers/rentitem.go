package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/IsuruKaushika/UNITUNES-sub000/media"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/repository"
)

type rentItemListResponse struct {
	Success   bool              `json:"success"`
	RentItems []models.RentItem `json:"rentItems"`
}

type rentItemResponse struct {
	Success  bool             `json:"success"`
	RentItem *models.RentItem `json:"rentItem"`
}

type rentItemForm struct {
	ItemName string  `validate:"required"`
	Contact  string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
}

func AddRentItem(store ResourceStore[models.RentItem], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := rentItemForm{}
		form.ItemName, _ = formValue(r, "itemName")
		form.Contact, _ = formValue(r, "contact")
		form.Price, _ = formFloat(r, "price")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "rentitem", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("rentitem add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		category, _ := formValue(r, "category")
		description, _ := formValue(r, "description")
		item := &models.RentItem{
			ItemName:    form.ItemName,
			Category:    category,
			Contact:     form.Contact,
			Price:       form.Price,
			Description: description,
			IsAvailable: true,
			Images:      urls,
			CreatedAt:   time.Now(),
		}

		if err := store.Insert(r.Context(), item); err != nil {
			log.Error().Err(err).Msg("rentitem add: insert failed")
			respondFail(w, "Error adding rent item")
			return
		}
		respondMessage(w, "Rent Item Added Successfully")
	}
}

func ListRentItems(store ResourceStore[models.RentItem]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("rentitem list: fetch failed")
			respondFail(w, "Error fetching rent items")
			return
		}
		writeJSON(w, rentItemListResponse{Success: true, RentItems: items})
	}
}

func RemoveRentItem(store ResourceStore[models.RentItem]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Rent Item not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("rentitem remove: delete failed")
			respondFail(w, "Error removing rent item")
			return
		}
		respondMessage(w, "Rent Item Removed Successfully")
	}
}

func SingleRentItem(store ResourceStore[models.RentItem]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "rentItemId")
		item, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Rent Item not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("rentitem single: fetch failed")
			respondFail(w, "Error fetching rent item")
			return
		}
		writeJSON(w, rentItemResponse{Success: true, RentItem: item})
	}
}

// SetRentItemAvailability overwrites the availability flag and nothing else.
func SetRentItemAvailability(store ResourceStore[models.RentItem]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		raw, ok := formValue(r, "isAvailable")
		if !ok {
			respondFail(w, "Invalid availability value")
			return
		}
		available, err := strconv.ParseBool(raw)
		if err != nil {
			respondFail(w, "Invalid availability value")
			return
		}

		if err := store.SetField(r.Context(), id, "isAvailable", available); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Rent Item not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("rentitem availability: update failed")
			respondFail(w, "Error updating rent item")
			return
		}
		respondMessage(w, "Rent Item Availability Updated")
	}
}
