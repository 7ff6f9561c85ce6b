package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	nilaiapp "github.com/muhammadheryan/pendaftaran/application/nilai"
	pendaftaranapp "github.com/muhammadheryan/pendaftaran/application/pendaftaran"
	"github.com/muhammadheryan/pendaftaran/constant"
	cerr "github.com/muhammadheryan/pendaftaran/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options tunes page behaviour.
type Options struct {
	// RedirectDelay is how long the success page waits before going back to
	// the listing.
	RedirectDelay time.Duration
	// Location is the zone dates are displayed in. Defaults to UTC.
	Location *time.Location
}

type RestHandler struct {
	PendaftaranApp pendaftaranapp.PendaftaranApp
	NilaiApp       nilaiapp.NilaiApp

	pages         pages
	redirectDelay time.Duration
}

func NewTransport(opts Options, PendaftaranApp pendaftaranapp.PendaftaranApp, NilaiApp nilaiapp.NilaiApp) http.Handler {
	mux := mux.NewRouter()

	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = constant.DefaultRedirectDelay
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	rh := &RestHandler{
		PendaftaranApp: PendaftaranApp,
		NilaiApp:       NilaiApp,
		pages:          loadPages(opts.Location),
		redirectDelay:  opts.RedirectDelay,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// JSON
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)
	mux.HandleFunc("/api/pendaftaran/validate", rh.ValidatePendaftaran).Methods(http.MethodPost)

	// registration pages
	mux.HandleFunc("/", rh.Landing).Methods(http.MethodGet)
	mux.HandleFunc("/daftar", rh.NewPendaftaran).Methods(http.MethodGet)
	mux.HandleFunc("/daftar", rh.SubmitPendaftaran).Methods(http.MethodPost)
	mux.HandleFunc("/lihat_pendaftaran", rh.ListPendaftaran).Methods(http.MethodGet)
	mux.HandleFunc("/lihat_pendaftaran/{id:[1-9][0-9]*}", rh.EditPendaftaran).Methods(http.MethodGet)
	mux.HandleFunc("/lihat_pendaftaran/{id:[1-9][0-9]*}", rh.SubmitPendaftaran).Methods(http.MethodPost)
	mux.HandleFunc("/lihat_pendaftaran/{id:[1-9][0-9]*}/hapus", rh.ConfirmDeletePendaftaran).Methods(http.MethodGet)
	mux.HandleFunc("/lihat_pendaftaran/{id:[1-9][0-9]*}/hapus", rh.DeletePendaftaran).Methods(http.MethodPost)

	// nilai demo pages
	mux.HandleFunc("/nilai", rh.ListNilai).Methods(http.MethodGet)
	mux.HandleFunc("/nilai", rh.SaveNilai).Methods(http.MethodPost)
	mux.HandleFunc("/nilai/{id:[1-9][0-9]*}/edit", rh.EditNilai).Methods(http.MethodGet)
	mux.HandleFunc("/nilai/{id:[1-9][0-9]*}", rh.SaveNilai).Methods(http.MethodPost)
	mux.HandleFunc("/nilai/{id:[1-9][0-9]*}/hapus", rh.ConfirmDeleteNilai).Methods(http.MethodGet)
	mux.HandleFunc("/nilai/{id:[1-9][0-9]*}/hapus", rh.DeleteNilai).Methods(http.MethodPost)

	mux.NotFoundHandler = http.HandlerFunc(rh.NotFound)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(LoggingMiddleware())

	return mux
}

// pathID returns the {id} route variable, 0 on routes without one. ok is
// false when the id does not fit a uint64.
func pathID(r *http.Request) (uint64, bool) {
	raw, found := mux.Vars(r)["id"]
	if !found {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// errorStatus maps an application error to the HTTP status of the page or
// response that reports it.
func errorStatus(err error) int {
	var ce cerr.CustomError
	if errors.As(err, &ce) {
		return ce.ErrorHTTPCode()
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		ce = cerr.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
