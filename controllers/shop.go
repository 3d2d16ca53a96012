package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/IsuruKaushika/UNITUNES-sub000/media"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/repository"
)

type shopListResponse struct {
	Success bool          `json:"success"`
	Shops   []models.Shop `json:"shops"`
}

type shopResponse struct {
	Success bool         `json:"success"`
	Shop    *models.Shop `json:"shop"`
}

type shopForm struct {
	ShopName string `validate:"required"`
	Address  string `validate:"required"`
	Contact  string `validate:"required"`
}

func AddShop(store ResourceStore[models.Shop], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := shopForm{}
		form.ShopName, _ = formValue(r, "shopName")
		form.Address, _ = formValue(r, "address")
		form.Contact, _ = formValue(r, "contact")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "shop", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("shop add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		category, _ := formValue(r, "category")
		description, _ := formValue(r, "description")
		shop := &models.Shop{
			ShopName:    form.ShopName,
			Category:    category,
			Address:     form.Address,
			Contact:     form.Contact,
			Description: description,
			Images:      urls,
			CreatedAt:   time.Now(),
		}

		if err := store.Insert(r.Context(), shop); err != nil {
			log.Error().Err(err).Msg("shop add: insert failed")
			respondFail(w, "Error adding shop")
			return
		}
		respondMessage(w, "Shop Added Successfully")
	}
}

func ListShops(store ResourceStore[models.Shop]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("shop list: fetch failed")
			respondFail(w, "Error fetching shops")
			return
		}
		writeJSON(w, shopListResponse{Success: true, Shops: shops})
	}
}

func RemoveShop(store ResourceStore[models.Shop]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Shop not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("shop remove: delete failed")
			respondFail(w, "Error removing shop")
			return
		}
		respondMessage(w, "Shop Removed Successfully")
	}
}

func SingleShop(store ResourceStore[models.Shop]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "shopId")
		shop, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Shop not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("shop single: fetch failed")
			respondFail(w, "Error fetching shop")
			return
		}
		writeJSON(w, shopResponse{Success: true, Shop: shop})
	}
}
