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

type mediCenterListResponse struct {
	Success     bool                `json:"success"`
	MediCenters []models.MediCenter `json:"mediCenters"`
}

type mediCenterResponse struct {
	Success    bool               `json:"success"`
	MediCenter *models.MediCenter `json:"mediCenter"`
}

type mediCenterForm struct {
	CenterName string `validate:"required"`
	Address    string `validate:"required"`
	Contact    string `validate:"required"`
}

func AddMediCenter(store ResourceStore[models.MediCenter], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := mediCenterForm{}
		form.CenterName, _ = formValue(r, "centerName")
		form.Address, _ = formValue(r, "address")
		form.Contact, _ = formValue(r, "contact")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "medicenter", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("medicenter add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		openHours, _ := formValue(r, "openHours")
		description, _ := formValue(r, "description")
		center := &models.MediCenter{
			CenterName:  form.CenterName,
			Address:     form.Address,
			Contact:     form.Contact,
			OpenHours:   openHours,
			Description: description,
			Images:      urls,
			CreatedAt:   time.Now(),
		}

		if err := store.Insert(r.Context(), center); err != nil {
			log.Error().Err(err).Msg("medicenter add: insert failed")
			respondFail(w, "Error adding medical center")
			return
		}
		respondMessage(w, "Medical Center Added Successfully")
	}
}

func ListMediCenters(store ResourceStore[models.MediCenter]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		centers, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("medicenter list: fetch failed")
			respondFail(w, "Error fetching medical centers")
			return
		}
		writeJSON(w, mediCenterListResponse{Success: true, MediCenters: centers})
	}
}

func RemoveMediCenter(store ResourceStore[models.MediCenter]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Medical Center not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("medicenter remove: delete failed")
			respondFail(w, "Error removing medical center")
			return
		}
		respondMessage(w, "Medical Center Removed Successfully")
	}
}

func SingleMediCenter(store ResourceStore[models.MediCenter]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "mediCenterId")
		center, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Medical Center not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("medicenter single: fetch failed")
			respondFail(w, "Error fetching medical center")
			return
		}
		writeJSON(w, mediCenterResponse{Success: true, MediCenter: center})
	}
}
