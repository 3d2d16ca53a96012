package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

const maxUploadMemory = 32 << 20

// messageResponse is the plain envelope every mutation answers with. Failures
// keep HTTP 200; the clients inspect the success flag, not the status code.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("response encoding failed")
	}
}

func respondMessage(w http.ResponseWriter, message string) {
	writeJSON(w, messageResponse{Success: true, Message: message})
}

func respondFail(w http.ResponseWriter, message string) {
	writeJSON(w, messageResponse{Success: false, Message: message})
}

// parseForm accepts multipart (the clients always send FormData) but also
// plain urlencoded bodies, so field parsing stays uniform.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// formValue distinguishes an absent field from an empty one; the update merge
// policy needs that distinction.
func formValue(r *http.Request, name string) (string, bool) {
	vs, ok := r.Form[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func formFloat(r *http.Request, name string) (float64, bool) {
	v, ok := formValue(r, name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func formInt(r *http.Request, name string) (int, bool) {
	v, ok := formValue(r, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formFiles collects at most one file per named field, in field order.
func formFiles(r *http.Request, names ...string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	var files []*multipart.FileHeader
	for _, name := range names {
		if fhs := r.MultipartForm.File[name]; len(fhs) > 0 {
			files = append(files, fhs[0])
		}
	}
	return files
}

var boardingImageFields = []string{"image1", "image2", "image3", "image4"}
var resourceImageFields = []string{"image", "image1", "image2", "image3", "image4"}
