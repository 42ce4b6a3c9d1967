package api

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/services"
)

// maxUploadBytes bounds a single multipart upload request.
const maxUploadBytes = 32 << 20 // 32MB

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *services.Uploader
}

func newMediaHandler(uploader *services.Uploader) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// uploadImage accepts one image under the multipart field "file" and returns
// its hosted URL.
func (h mediaHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "image hosting is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteValidationError(w, "file", "an image file is required")
			return
		}
		defer file.Close()

		url, err := h.uploader.Upload(r.Context(), header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}

// uploadGallery accepts several images under the multipart field "files".
// Each file uploads independently; the first failure aborts the action and
// is reported, but uploads confirmed before the failure are not rolled back.
func (h mediaHandler) uploadGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.uploader == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "image hosting is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			h.responder.WriteValidationError(w, "files", "at least one image file is required")
			return
		}

		urls := make([]string, len(files))
		var mu sync.Mutex
		var completed int

		group, ctx := errgroup.WithContext(r.Context())
		for i, header := range files {
			group.Go(func() error {
				file, err := header.Open()
				if err != nil {
					return errs.NewUploadError(header.Filename, err)
				}
				defer file.Close()

				url, err := h.uploader.Upload(ctx, header.Filename, file)
				if err != nil {
					return err
				}

				mu.Lock()
				urls[i] = url
				completed++
				mu.Unlock()
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			mu.Lock()
			done := completed
			mu.Unlock()
			h.logger.Error().Err(err).Int("completed", done).Int("total", len(files)).Msg("gallery upload aborted")
			h.responder.WriteError(w, errs.NewPartialFailureError("gallery upload", done, err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"urls": urls, "total": len(urls)})
	}
}
