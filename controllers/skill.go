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

type skillListResponse struct {
	Success bool           `json:"success"`
	Skills  []models.Skill `json:"skills"`
}

type skillResponse struct {
	Success bool          `json:"success"`
	Skill   *models.Skill `json:"skill"`
}

type skillForm struct {
	SkillTitle string `validate:"required"`
	PersonName string `validate:"required"`
	Contact    string `validate:"required"`
}

func AddSkill(store ResourceStore[models.Skill], mediaStore media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		form := skillForm{}
		form.SkillTitle, _ = formValue(r, "skillTitle")
		form.PersonName, _ = formValue(r, "personName")
		form.Contact, _ = formValue(r, "contact")
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, "skill", formFiles(r, resourceImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("skill add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		price, _ := formFloat(r, "price")
		description, _ := formValue(r, "description")
		skill := &models.Skill{
			SkillTitle:  form.SkillTitle,
			PersonName:  form.PersonName,
			Contact:     form.Contact,
			Price:       price,
			Description: description,
			Status:      models.SkillStatusAvailable,
			Images:      urls,
			CreatedAt:   time.Now(),
		}

		if err := store.Insert(r.Context(), skill); err != nil {
			log.Error().Err(err).Msg("skill add: insert failed")
			respondFail(w, "Error adding skill")
			return
		}
		respondMessage(w, "Skill Added Successfully")
	}
}

func ListSkills(store ResourceStore[models.Skill]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("skill list: fetch failed")
			respondFail(w, "Error fetching skills")
			return
		}
		writeJSON(w, skillListResponse{Success: true, Skills: skills})
	}
}

func RemoveSkill(store ResourceStore[models.Skill]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Skill not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("skill remove: delete failed")
			respondFail(w, "Error removing skill")
			return
		}
		respondMessage(w, "Skill Removed Successfully")
	}
}

func SingleSkill(store ResourceStore[models.Skill]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "skillId")
		skill, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Skill not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("skill single: fetch failed")
			respondFail(w, "Error fetching skill")
			return
		}
		writeJSON(w, skillResponse{Success: true, Skill: skill})
	}
}

// SetSkillStatus overwrites the status field and nothing else.
func SetSkillStatus(store ResourceStore[models.Skill]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		status, ok := formValue(r, "status")
		if !ok || (status != models.SkillStatusAvailable && status != models.SkillStatusUnavailable) {
			respondFail(w, "Invalid status")
			return
		}

		if err := store.SetField(r.Context(), id, "status", status); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				respondFail(w, "Skill not found")
				return
			}
			log.Error().Err(err).Str("id", id).Msg("skill status: update failed")
			respondFail(w, "Error updating skill")
			return
		}
		respondMessage(w, "Skill Status Updated")
	}
}
