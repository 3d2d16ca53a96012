package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/IsuruKaushika/UNITUNES-sub000/media"
	"github.com/IsuruKaushika/UNITUNES-sub000/middleware"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
	"github.com/IsuruKaushika/UNITUNES-sub000/repository"
)

const (
	boardingListCacheKey = "boarding:list"
	boardingListCacheTTL = 10 * time.Minute
	boardingMediaFolder  = "boarding"
)

// The list payload key is "products"; the mobile app and dashboard already
// parse that name.
type boardingListResponse struct {
	Success  bool              `json:"success"`
	Products []models.Boarding `json:"products"`
}

type boardingResponse struct {
	Success  bool             `json:"success"`
	Boarding *models.Boarding `json:"boarding"`
}

type boardingForm struct {
	Title       string `validate:"required"`
	Owner       string `validate:"required"`
	Address     string `validate:"required"`
	Contact     string `validate:"required"`
	Description string
	Price       float64 `validate:"required,gt=0"`
	Rooms       int
	BathRooms   int
	Gender      string
}

func decodeBoardingForm(r *http.Request) boardingForm {
	var f boardingForm
	f.Title, _ = formValue(r, "Title")
	f.Owner, _ = formValue(r, "owner")
	f.Address, _ = formValue(r, "address")
	f.Contact, _ = formValue(r, "contact")
	f.Description, _ = formValue(r, "description")
	f.Price, _ = formFloat(r, "price")
	f.Rooms, _ = formInt(r, "Rooms")
	f.BathRooms, _ = formInt(r, "bathRooms")
	f.Gender, _ = formValue(r, "gender")
	return f
}

func AddBoarding(store BoardingStore, mediaStore media.Store, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			respondFail(w, "Not Authorized Login Again")
			return
		}

		if err := parseForm(r); err != nil {
			log.Warn().Err(err).Msg("boarding add: bad form")
			respondFail(w, "Invalid form data")
			return
		}

		form := decodeBoardingForm(r)
		if err := validate.Struct(form); err != nil {
			respondFail(w, "Missing required fields")
			return
		}

		owner, err := ownership.StampForCreate(p)
		if err != nil {
			respondFail(w, "Not Authorized Login Again")
			return
		}

		urls, err := media.UploadAll(r.Context(), mediaStore, boardingMediaFolder, formFiles(r, boardingImageFields...))
		if err != nil {
			log.Error().Err(err).Msg("boarding add: image upload failed")
			respondFail(w, "Image upload failed")
			return
		}

		now := time.Now()
		boarding := &models.Boarding{
			Title:       form.Title,
			Owner:       form.Owner,
			Address:     form.Address,
			Contact:     form.Contact,
			Description: form.Description,
			Price:       form.Price,
			Rooms:       form.Rooms,
			BathRooms:   form.BathRooms,
			Gender:      form.Gender,
			Images:      urls,
			OwnerID:     owner.ID,
			OwnerType:   string(owner.Type),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := store.Insert(r.Context(), boarding); err != nil {
			log.Error().Err(err).Msg("boarding add: insert failed")
			respondFail(w, "Error adding boarding")
			return
		}

		invalidateBoardingCache(rdb)
		respondMessage(w, "Boarding Added Successfully")
	}
}

func ListBoardings(store BoardingStore, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rdb != nil {
			cached, err := rdb.Get(r.Context(), boardingListCacheKey).Result()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cached))
				return
			}
			if err != redis.Nil {
				log.Warn().Err(err).Msg("boarding list: cache read failed")
			}
		}

		boardings, err := store.All(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("boarding list: fetch failed")
			respondFail(w, "Error fetching boardings")
			return
		}

		data, err := json.Marshal(boardingListResponse{Success: true, Products: boardings})
		if err != nil {
			log.Error().Err(err).Msg("boarding list: encoding failed")
			respondFail(w, "Error fetching boardings")
			return
		}

		if rdb != nil {
			if err := rdb.Set(r.Context(), boardingListCacheKey, data, boardingListCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("boarding list: cache write failed")
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

func SingleBoarding(store BoardingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "boardingId")
		boarding, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Boarding not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("boarding single: fetch failed")
			respondFail(w, "Error fetching boarding")
			return
		}

		writeJSON(w, boardingResponse{Success: true, Boarding: boarding})
	}
}

func RemoveBoarding(store BoardingStore, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			respondFail(w, "Not Authorized Login Again")
			return
		}

		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		// Not-found is checked before any authorization rule.
		id, _ := formValue(r, "id")
		boarding, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Boarding not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("boarding remove: fetch failed")
			respondFail(w, "Error removing boarding")
			return
		}

		owner := ownership.Owner{ID: boarding.OwnerID, Type: ownership.Role(boarding.OwnerType)}
		if err := ownership.CanMutate(p, owner); err != nil {
			respondFail(w, mutationDenialMessage(err, "delete"))
			return
		}

		if err := store.Delete(r.Context(), id); err != nil {
			log.Error().Err(err).Str("id", id).Msg("boarding remove: delete failed")
			respondFail(w, "Error removing boarding")
			return
		}

		invalidateBoardingCache(rdb)
		respondMessage(w, "Boarding Removed Successfully")
	}
}

func UpdateBoarding(store BoardingStore, mediaStore media.Store, rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			respondFail(w, "Not Authorized Login Again")
			return
		}

		if err := parseForm(r); err != nil {
			respondFail(w, "Invalid form data")
			return
		}

		id, _ := formValue(r, "id")
		boarding, err := store.ByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(w, "Boarding not found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("boarding update: fetch failed")
			respondFail(w, "Error updating boarding")
			return
		}

		owner := ownership.Owner{ID: boarding.OwnerID, Type: ownership.Role(boarding.OwnerType)}
		if err := ownership.CanMutate(p, owner); err != nil {
			respondFail(w, mutationDenialMessage(err, "update"))
			return
		}

		// Partial merge: fields absent from the request keep their stored
		// value.
		if v, ok := formValue(r, "Title"); ok {
			boarding.Title = v
		}
		if v, ok := formValue(r, "owner"); ok {
			boarding.Owner = v
		}
		if v, ok := formValue(r, "address"); ok {
			boarding.Address = v
		}
		if v, ok := formValue(r, "contact"); ok {
			boarding.Contact = v
		}
		if v, ok := formValue(r, "description"); ok {
			boarding.Description = v
		}
		if v, ok := formFloat(r, "price"); ok {
			boarding.Price = v
		}
		if v, ok := formInt(r, "Rooms"); ok {
			boarding.Rooms = v
		}
		if v, ok := formInt(r, "bathRooms"); ok {
			boarding.BathRooms = v
		}
		if v, ok := formValue(r, "gender"); ok {
			boarding.Gender = v
		}

		// New files replace the whole image list; no files keeps it as is.
		if files := formFiles(r, boardingImageFields...); len(files) > 0 {
			urls, err := media.UploadAll(r.Context(), mediaStore, boardingMediaFolder, files)
			if err != nil {
				log.Error().Err(err).Msg("boarding update: image upload failed")
				respondFail(w, "Image upload failed")
				return
			}
			boarding.Images = urls
		}

		// A legacy record becomes admin-owned the first time an admin edits
		// it; read paths never claim it.
		if owner.IsLegacy() && p.Role == ownership.RoleAdmin {
			boarding.OwnerID = p.ID
			boarding.OwnerType = string(ownership.RoleAdmin)
		}

		boarding.UpdatedAt = time.Now()

		if err := store.Replace(r.Context(), id, boarding); err != nil {
			log.Error().Err(err).Str("id", id).Msg("boarding update: replace failed")
			respondFail(w, "Error updating boarding")
			return
		}

		invalidateBoardingCache(rdb)
		respondMessage(w, "Boarding Updated Successfully")
	}
}

func MyBoardings(store BoardingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFrom(r.Context())
		if !ok {
			respondFail(w, "Not Authorized Login Again")
			return
		}

		boardings, err := store.Mine(r.Context(), p)
		if err != nil {
			log.Error().Err(err).Msg("boarding my-list: fetch failed")
			respondFail(w, "Error fetching boardings")
			return
		}

		writeJSON(w, boardingListResponse{Success: true, Products: boardings})
	}
}

func mutationDenialMessage(err error, action string) string {
	if errors.Is(err, ownership.ErrLegacyRecord) {
		return "Only admin can modify legacy records"
	}
	return "Not authorized to " + action + " this boarding"
}

func invalidateBoardingCache(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	go func() {
		if err := rdb.Del(context.Background(), boardingListCacheKey).Err(); err != nil {
			log.Warn().Err(err).Msg("boarding cache invalidation failed")
		}
	}()
}
