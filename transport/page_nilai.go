package transport

import (
	"fmt"
	"net/http"

	nilaiapp "github.com/muhammadheryan/pendaftaran/application/nilai"
	"github.com/muhammadheryan/pendaftaran/constant"
	"github.com/muhammadheryan/pendaftaran/model"
	cerr "github.com/muhammadheryan/pendaftaran/utils/errors"
)

const (
	nilaiURL    = "/nilai"
	backToNilai = "Kembali ke CRUD Nilai"
)

type nilaiPage struct {
	Items  []model.Nilai
	Angka  string
	EditID uint64
	Error  string
}

func (s *RestHandler) ListNilai(w http.ResponseWriter, r *http.Request) {
	s.renderNilai(w, r, http.StatusOK, nilaiPage{})
}

// EditNilai opens the edit panel pre-filled from the freshly fetched list.
func (s *RestHandler) EditNilai(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, nilaiURL, backToNilai)
		return
	}
	s.renderNilai(w, r, http.StatusOK, nilaiPage{EditID: id})
}

// SaveNilai creates (POST /nilai) or updates (POST /nilai/{id}) a score.
func (s *RestHandler) SaveNilai(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, nilaiURL, backToNilai)
		return
	}
	form := nilaiapp.NilaiForm{Angka: r.PostFormValue("angka")}

	if err := s.NilaiApp.Save(r.Context(), id, form); err != nil {
		message := err.Error()
		if cerr.Is(err, constant.ErrValidation) {
			message = "Angka harus berupa bilangan"
		}
		s.renderNilai(w, r, errorStatus(err), nilaiPage{Angka: form.Angka, EditID: id, Error: message})
		return
	}
	http.Redirect(w, r, nilaiURL, http.StatusSeeOther)
}

func (s *RestHandler) ConfirmDeleteNilai(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, nilaiURL, backToNilai)
		return
	}
	s.pages.render(w, r, http.StatusOK, "confirm.html", confirmPage{
		Message:   "Yakin ingin menghapus data ini?",
		Action:    fmt.Sprintf("%s/%d/hapus", nilaiURL, id),
		CancelURL: nilaiURL,
	})
}

func (s *RestHandler) DeleteNilai(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.renderNotFound(w, r, nilaiURL, backToNilai)
		return
	}
	if r.PostFormValue("confirm") != constant.ConfirmDelete {
		http.Redirect(w, r, nilaiURL, http.StatusSeeOther)
		return
	}
	if err := s.NilaiApp.Delete(r.Context(), id); err != nil {
		s.renderNilai(w, r, errorStatus(err), nilaiPage{Error: err.Error()})
		return
	}
	http.Redirect(w, r, nilaiURL, http.StatusSeeOther)
}

// renderNilai always refetches the list before rendering.
func (s *RestHandler) renderNilai(w http.ResponseWriter, r *http.Request, status int, page nilaiPage) {
	items, err := s.NilaiApp.List(r.Context())
	if err != nil {
		if page.Error == "" {
			page.Error = err.Error()
		}
		if status == http.StatusOK {
			status = errorStatus(err)
		}
	}
	page.Items = items

	if page.EditID != 0 && page.Angka == "" {
		found := false
		for _, item := range items {
			if item.NilaiID == page.EditID {
				page.Angka = fmt.Sprint(item.Angka)
				found = true
				break
			}
		}
		if !found {
			page.EditID = 0
		}
	}

	s.pages.render(w, r, status, "nilai.html", page)
}
