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

type adListResponse struct {
	Success bool        `json:"success"`
	Ads     []models.Ad `json:"ads"`
}

type adResponse struct {
	Success bool       `json:"success"`
	Ad      *models.Ad `json:"ad"`
}

type adForm struct {
	Title   string `validate:"required"`
	Contact string `validate:"required"`
}

func AddAd(store ResourceStore[models.Ad], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := adForm{}
		form.Title, _ = formValue(r, "title")
		form.Contact, _ = formValue(r, "contact")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "ad", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("ad add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		price, _ := formFloat(r, "price")
		description, _ := formValue(r, "description")
		ad := &models.Ad{
			Title:       form.Title,
			Contact:     form.Contact,
			Price:       price,
			Description: description,
			Images:      urls,
			CreatedAt:   time.Now(),
		}

		if err := store.Insert(r.Context(), ad); err != nil {
			log.Error().Err(err).Msg("ad add: insert failed")
			respondFail(w, "Error adding ad")
			return
		}
		respondMessage(w, "Ad Added Successfully")
	}
}

func ListAds(store ResourceStore[models.Ad]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ads, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("ad list: fetch failed")
			respondFail(w, "Error fetching ads")
			return
		}
		writeJSON(w, adListResponse{Success: true, Ads: ads})
	}
}

func RemoveAd(store ResourceStore[models.Ad]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Ad not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("ad remove: delete failed")
			respondFail(w, "Error removing ad")
			return
		}
		respondMessage(w, "Ad Removed Successfully")
	}
}

func SingleAd(store ResourceStore[models.Ad]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "adId")
		ad, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Ad not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("ad single: fetch failed")
			respondFail(w, "Error fetching ad")
			return
		}
		writeJSON(w, adResponse{Success: true, Ad: ad})
	}
}
