package httpapi

import (
	"errors"
	"io"
	"net/http"

	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/service"

	"github.com/gorilla/mux"
)

// multipartOverhead leaves room for boundaries and part headers around the file itself.
const multipartOverhead = 1 << 20

func (h *Handler) getPublicRestaurant(w http.ResponseWriter, r *http.Request) {
	info, err := h.Public.Restaurant(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) getPublicMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Public.Menu(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) redirectImage(w http.ResponseWriter, r *http.Request) {
	url, err := h.Uploads.ImageURL(r.Context(), mux.Vars(r)["path"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (h *Handler) uploadTo(folder service.Folder, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadSize+multipartOverhead)

		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, apperr.BadRequest("File too large. Maximum size is 5MB"))
				return
			}
			writeError(w, r, apperr.BadRequest("A file is required in the 'file' field"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, apperr.BadRequest("Could not read uploaded file"))
			return
		}

		url, err := h.Uploads.Upload(r.Context(), service.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}, folder, caller(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"url": url, "message": message})
	}
}
