package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MalithGihan/assetd/internal/store"
	"github.com/MalithGihan/assetd/internal/validate"
	"github.com/MalithGihan/assetd/pkg/types"
)

const maxBody = 64 << 20

// Assets is the subset of *store.Store the API serves.
type Assets interface {
	DownloadVoice(ctx context.Context, id string) (string, error)
	SaveVoiceWAVBase64(id, payload string) (string, error)
	SavePersonalityImageBase64(id, payload string, ext *string) (string, error)
	ReadVoiceBase64(id string) (string, bool, error)
	ListDownloadedVoices() ([]string, error)
}

var _ Assets = (*store.Store)(nil)

type api struct {
	assets Assets
	log    *slog.Logger
}

func NewRouter(assets Assets, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := &api{assets: assets, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"assetd"}`))
	})

	r.Get("/voices", a.listVoices)
	r.Get("/voices/{id}", a.readVoice)
	r.Put("/voices/{id}", a.saveVoice)
	r.Post("/voices/{id}/download", a.downloadVoice)
	r.Put("/personalities/{id}/image", a.saveImage)
	return r
}

func (a *api) listVoices(w http.ResponseWriter, r *http.Request) {
	ids, err := a.assets.ListDownloadedVoices()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.VoiceList{Voices: ids})
}

func (a *api) readVoice(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	enc, ok, err := a.assets.ReadVoiceBase64(id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp := types.VoiceResp{ID: id, Found: ok}
	if ok {
		resp.Base64 = &enc
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) saveVoice(w http.ResponseWriter, r *http.Request) {
	var in types.VoiceUpload
	if !a.decode(w, r, validate.VoiceUpload, &in) {
		return
	}
	path, err := a.assets.SaveVoiceWAVBase64(idParam(r), in.Base64)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.PathResp{Path: path})
}

func (a *api) downloadVoice(w http.ResponseWriter, r *http.Request) {
	path, err := a.assets.DownloadVoice(r.Context(), idParam(r))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.PathResp{Path: path})
}

func (a *api) saveImage(w http.ResponseWriter, r *http.Request) {
	var in types.ImageUpload
	if !a.decode(w, r, validate.ImageUpload, &in) {
		return
	}
	path, err := a.assets.SavePersonalityImageBase64(idParam(r), in.Base64, in.Ext)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.PathResp{Path: path})
}

// decode reads, schema-checks and unmarshals the request body. It writes the
// error response itself and reports false on failure.
func (a *api) decode(w http.ResponseWriter, r *http.Request, schema string, dst any) bool {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeJSON(w, http.StatusRequestEntityTooLarge, types.ErrorResp{Error: err.Error(), Kind: "too_large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, types.ErrorResp{Error: err.Error(), Kind: "bad_request"})
		return false
	}
	if err := validate.Payload(schema, raw); err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResp{Error: err.Error(), Kind: "invalid_payload"})
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResp{Error: err.Error(), Kind: "invalid_payload"})
		return false
	}
	return true
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := store.KindOf(err)
	status := statusFor(kind)
	a.log.Warn("asset request failed",
		"method", r.Method, "path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"kind", kind.String(), "err", err)
	writeJSON(w, status, types.ErrorResp{Error: err.Error(), Kind: kind.String()})
}

// idParam returns the decoded {id} segment. chi matches on RawPath when it is
// set, leaving the segment escaped; otherwise Path is already decoded.
func idParam(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if u, err := url.PathUnescape(id); err == nil {
		return u
	}
	return id
}

func statusFor(k store.Kind) int {
	switch k {
	case store.KindInvalidID, store.KindDecodeFailed:
		return http.StatusBadRequest
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindNetworkFailed, store.KindHTTPStatus:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
