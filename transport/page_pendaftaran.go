package transport

import (
	"fmt"
	"math"
	"net/http"

	"github.com/muhammadheryan/pendaftaran/constant"
	"github.com/muhammadheryan/pendaftaran/model"
	cerr "github.com/muhammadheryan/pendaftaran/utils/errors"
)

const (
	listingURL    = "/lihat_pendaftaran"
	backToListing = "Kembali ke Daftar Pendaftar"

	deleteFailedStatus = "gagal-hapus"
)

type formPage struct {
	model.PendaftaranFormState
	Action    string
	CancelURL string
}

type listPage struct {
	Items     []model.Pendaftaran
	LoadError string
	Notice    string
}

type successPage struct {
	Message      string
	DelaySeconds int
	DelayMillis  int64
}

type loadErrorPage struct {
	Message   string
	BackURL   string
	BackLabel string
}

type confirmPage struct {
	Message   string
	Action    string
	CancelURL string
}

func (s *RestHandler) Landing(w http.ResponseWriter, r *http.Request) {
	s.pages.render(w, r, http.StatusOK, "landing.html", nil)
}

func (s *RestHandler) NewPendaftaran(w http.ResponseWriter, r *http.Request) {
	state, err := s.PendaftaranApp.NewForm(r.Context(), 0)
	if err != nil {
		s.renderLoadError(w, r, err)
		return
	}
	s.renderForm(w, r, http.StatusOK, state)
}

func (s *RestHandler) EditPendaftaran(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, listingURL, backToListing)
		return
	}
	state, err := s.PendaftaranApp.NewForm(r.Context(), id)
	if err != nil {
		s.renderLoadError(w, r, err)
		return
	}
	s.renderForm(w, r, http.StatusOK, state)
}

// SubmitPendaftaran handles both the create form (/daftar) and the edit form
// (/lihat_pendaftaran/{id}).
func (s *RestHandler) SubmitPendaftaran(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, listingURL, backToListing)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, r, http.StatusBadRequest, model.PendaftaranFormState{ID: id}.
			Failed(constant.ErrorTypeMessage[constant.ErrInvalidRequest]))
		return
	}

	state := model.PendaftaranFormState{
		ID:    id,
		Token: r.PostForm.Get("token"),
		Form: model.PendaftaranForm{
			Nama:        r.PostForm.Get("nama"),
			Usia:        r.PostForm.Get("usia"),
			Email:       r.PostForm.Get("email"),
			NomorTelpon: r.PostForm.Get("nomorTelpon"),
			Motivasi:    r.PostForm.Get("motivasi"),
		},
	}

	state, err := s.PendaftaranApp.Submit(r.Context(), state)
	if err != nil {
		s.renderForm(w, r, errorStatus(err), state)
		return
	}

	message := "Pendaftaran berhasil disimpan"
	if state.IsEdit() {
		message = "Data pendaftar berhasil diperbarui"
	}
	s.pages.render(w, r, http.StatusOK, "success.html", successPage{
		Message:      message,
		DelaySeconds: int(math.Ceil(s.redirectDelay.Seconds())),
		DelayMillis:  s.redirectDelay.Milliseconds(),
	})
}

func (s *RestHandler) ListPendaftaran(w http.ResponseWriter, r *http.Request) {
	page := listPage{}
	if r.URL.Query().Get("status") == deleteFailedStatus {
		page.Notice = constant.ErrorTypeMessage[constant.ErrDeleteFailed]
	}

	items, err := s.PendaftaranApp.List(r.Context())
	if err != nil {
		page.LoadError = err.Error()
		s.pages.render(w, r, errorStatus(err), "pendaftaran_list.html", page)
		return
	}
	page.Items = items
	s.pages.render(w, r, http.StatusOK, "pendaftaran_list.html", page)
}

func (s *RestHandler) ConfirmDeletePendaftaran(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, listingURL, backToListing)
		return
	}
	s.pages.render(w, r, http.StatusOK, "confirm.html", confirmPage{
		Message:   "Apakah Anda yakin ingin menghapus data ini?",
		Action:    fmt.Sprintf("%s/%d/hapus", listingURL, id),
		CancelURL: listingURL,
	})
}

// DeletePendaftaran deletes only when the confirmation form was submitted;
// either way the browser goes back to a freshly fetched listing.
func (s *RestHandler) DeletePendaftaran(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, listingURL, backToListing)
		return
	}
	if r.PostFormValue("confirm") != constant.ConfirmDelete {
		http.Redirect(w, r, listingURL, http.StatusSeeOther)
		return
	}

	if err := s.PendaftaranApp.Delete(r.Context(), id); err != nil {
		http.Redirect(w, r, listingURL+"?status="+deleteFailedStatus, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, listingURL, http.StatusSeeOther)
}

func (s *RestHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, state model.PendaftaranFormState) {
	page := formPage{PendaftaranFormState: state, Action: "/daftar", CancelURL: "/"}
	if state.IsEdit() {
		page.Action = fmt.Sprintf("%s/%d", listingURL, state.ID)
		page.CancelURL = listingURL
	}
	s.pages.render(w, r, status, "pendaftaran_form.html", page)
}

func (s *RestHandler) renderLoadError(w http.ResponseWriter, r *http.Request, err error) {
	message := constant.ErrorTypeMessage[constant.ErrLoadFailed]
	if cerr.Is(err, constant.ErrNotFound) {
		message = err.Error()
	}
	s.pages.render(w, r, errorStatus(err), "load_error.html", loadErrorPage{
		Message:   message,
		BackURL:   listingURL,
		BackLabel: backToListing,
	})
}

// NotFound renders the not-found page for unmatched routes.
func (s *RestHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	s.renderNotFound(w, r, "/", "Kembali ke Beranda")
}

func (s *RestHandler) renderNotFound(w http.ResponseWriter, r *http.Request, backURL, backLabel string) {
	s.pages.render(w, r, http.StatusNotFound, "load_error.html", loadErrorPage{
		Message:   constant.ErrorTypeMessage[constant.ErrNotFound],
		BackURL:   backURL,
		BackLabel: backLabel,
	})
}
