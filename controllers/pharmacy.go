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

type pharmacyListResponse struct {
	Success    bool              `json:"success"`
	Pharmacies []models.Pharmacy `json:"pharmacies"`
}

type pharmacyResponse struct {
	Success  bool             `json:"success"`
	Pharmacy *models.Pharmacy `json:"pharmacy"`
}

type pharmacyForm struct {
	PharmacyName string `validate:"required"`
	Address      string `validate:"required"`
	Contact      string `validate:"required"`
}

func AddPharmacy(store ResourceStore[models.Pharmacy], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := pharmacyForm{}
		form.PharmacyName, _ = formValue(r, "pharmacyName")
		form.Address, _ = formValue(r, "address")
		form.Contact, _ = formValue(r, "contact")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "pharmacy", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("pharmacy add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		openHours, _ := formValue(r, "openHours")
		description, _ := formValue(r, "description")
		pharmacy := &models.Pharmacy{
			PharmacyName: form.PharmacyName,
			Address:      form.Address,
			Contact:      form.Contact,
			OpenHours:    openHours,
			Description:  description,
			Images:       urls,
			CreatedAt:    time.Now(),
		}

		if err := store.Insert(r.Context(), pharmacy); err != nil {
			log.Error().Err(err).Msg("pharmacy add: insert failed")
			respondFail(w, "Error adding pharmacy")
			return
		}
		respondMessage(w, "Pharmacy Added Successfully")
	}
}

func ListPharmacies(store ResourceStore[models.Pharmacy]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pharmacies, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("pharmacy list: fetch failed")
			respondFail(w, "Error fetching pharmacies")
			return
		}
		writeJSON(w, pharmacyListResponse{Success: true, Pharmacies: pharmacies})
	}
}

func RemovePharmacy(store ResourceStore[models.Pharmacy]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Pharmacy not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("pharmacy remove: delete failed")
			respondFail(w, "Error removing pharmacy")
			return
		}
		respondMessage(w, "Pharmacy Removed Successfully")
	}
}

func SinglePharmacy(store ResourceStore[models.Pharmacy]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "pharmacyId")
		pharmacy, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Pharmacy not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("pharmacy single: fetch failed")
			respondFail(w, "Error fetching pharmacy")
			return
		}
		writeJSON(w, pharmacyResponse{Success: true, Pharmacy: pharmacy})
	}
}
