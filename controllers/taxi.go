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

type taxiListResponse struct {
	Success bool          `json:"success"`
	Taxis   []models.Taxi `json:"taxis"`
}

type taxiResponse struct {
	Success bool         `json:"success"`
	Taxi    *models.Taxi `json:"taxi"`
}

type taxiForm struct {
	DriverName  string  `validate:"required"`
	Contact     string  `validate:"required"`
	VehicleType string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
}

func AddTaxi(store ResourceStore[models.Taxi], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := taxiForm{}
		form.DriverName, _ = formValue(r, "driverName")
		form.Contact, _ = formValue(r, "contact")
		form.VehicleType, _ = formValue(r, "vehicleType")
		form.Price, _ = formFloat(r, "price")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "taxi", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("taxi add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		vehicleNumber, _ := formValue(r, "vehicleNumber")
		description, _ := formValue(r, "description")
		taxi := &models.Taxi{
			DriverName:    form.DriverName,
			Contact:       form.Contact,
			VehicleType:   form.VehicleType,
			VehicleNumber: vehicleNumber,
			Price:         form.Price,
			Description:   description,
			Images:        urls,
			CreatedAt:     time.Now(),
		}

		if err := store.Insert(r.Context(), taxi); err != nil {
			log.Error().Err(err).Msg("taxi add: insert failed")
			respondFail(w, "Error adding taxi")
			return
		}
		respondMessage(w, "Taxi Added Successfully")
	}
}

func ListTaxis(store ResourceStore[models.Taxi]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taxis, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("taxi list: fetch failed")
			respondFail(w, "Error fetching taxis")
			return
		}
		writeJSON(w, taxiListResponse{Success: true, Taxis: taxis})
	}
}

// RemoveTaxi deletes unconditionally by id; the admin gate is the only check.
func RemoveTaxi(store ResourceStore[models.Taxi]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Taxi not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("taxi remove: delete failed")
			respondFail(w, "Error removing taxi")
			return
		}
		respondMessage(w, "Taxi Removed Successfully")
	}
}

func SingleTaxi(store ResourceStore[models.Taxi]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "taxiId")
		taxi, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Taxi not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("taxi single: fetch failed")
			respondFail(w, "Error fetching taxi")
			return
		}
		writeJSON(w, taxiResponse{Success: true, Taxi: taxi})
	}
}
