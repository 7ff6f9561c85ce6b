package model

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/muhammadheryan/pendaftaran/constant"
)

// Pendaftaran is a registration record as returned by the registration API.
type Pendaftaran struct {
	ID                 uint64 `json:"id_pendaftaran"`
	Nama               string `json:"nama"`
	Usia               int    `json:"usia"`
	Email              string `json:"email"`
	NomorTelpon        string `json:"nomor_telpon"`
	Motifasi           string `json:"motifasi"`
	TanggalPendaftaran string `json:"tanggal_pendaftaran"`
}

// PendaftaranRequest is the create/update body. The API spells the
// motivation key "motifasi"; keep it that way on the wire.
type PendaftaranRequest struct {
	Nama        string `json:"nama"`
	Usia        int    `json:"usia"`
	Email       string `json:"email"`
	NomorTelpon string `json:"nomor_telpon"`
	Motifasi    string `json:"motifasi"`
}

// PendaftaranForm holds the editable fields exactly as typed into the form.
type PendaftaranForm struct {
	Nama        string `json:"nama" form:"nama" validate:"nama"`
	Usia        string `json:"usia" form:"usia" validate:"usia"`
	Email       string `json:"email" form:"email" validate:"email_longgar"`
	NomorTelpon string `json:"nomorTelpon" form:"nomorTelpon" validate:"telpon"`
	Motivasi    string `json:"motivasi" form:"motivasi" validate:"motivasi"`
}

// FieldErrors maps a form field key to the message shown next to it.
type FieldErrors map[string]string

// FromPendaftaran fills a form from a fetched record.
func FromPendaftaran(p Pendaftaran) PendaftaranForm {
	return PendaftaranForm{
		Nama:        p.Nama,
		Usia:        strconv.Itoa(p.Usia),
		Email:       p.Email,
		NomorTelpon: p.NomorTelpon,
		Motivasi:    p.Motifasi,
	}
}

// ToRequest serializes the form into the wire body. Age uses the same lenient
// integer parse the validator applies.
func (f PendaftaranForm) ToRequest() PendaftaranRequest {
	usia, _ := ParseLeadingInt(f.Usia)
	return PendaftaranRequest{
		Nama:        f.Nama,
		Usia:        usia,
		Email:       f.Email,
		NomorTelpon: f.NomorTelpon,
		Motifasi:    f.Motivasi,
	}
}

// ParseLeadingInt parses s like a browser's parseInt(s, 10): leading
// whitespace (IsFormSpace) is skipped, an optional sign is accepted, then the
// longest run of decimal digits is read. ok is false when no digit is found.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, IsFormSpace)
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	// a run too long for int is out of any valid range anyway
	v, err := strconv.Atoi(s[start:i])
	if err != nil {
		v = math.MaxInt
	}
	if neg {
		v = -v
	}
	return v, true
}

// IsFormSpace reports whether r is whitespace in the sense browsers use for
// form input: the regexp \s class, the prefix parseInt skips and what trim
// strips. It differs from unicode.IsSpace: U+FEFF is included, U+0085 is not.
func IsFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// PendaftaranFormState is the state behind one rendered registration form.
// It is a value: every transition returns a new state and leaves the receiver
// untouched.
type PendaftaranFormState struct {
	ID         uint64
	Token      string
	Form       PendaftaranForm
	Errors     FieldErrors
	Submitting bool
	Success    bool
	Notice     string
}

// IsEdit reports whether the form updates an existing record.
func (s PendaftaranFormState) IsEdit() bool {
	return s.ID != 0
}

// Valid reports whether the last validation produced no field errors.
func (s PendaftaranFormState) Valid() bool {
	return len(s.Errors) == 0
}

func (s PendaftaranFormState) WithForm(f PendaftaranForm) PendaftaranFormState {
	s.Form = f
	return s
}

func (s PendaftaranFormState) WithErrors(errs FieldErrors) PendaftaranFormState {
	copied := make(FieldErrors, len(errs))
	for k, v := range errs {
		copied[k] = v
	}
	s.Errors = copied
	return s
}

func (s PendaftaranFormState) BeginSubmit() PendaftaranFormState {
	s.Submitting = true
	s.Notice = ""
	return s
}

func (s PendaftaranFormState) Succeeded() PendaftaranFormState {
	s.Submitting = false
	s.Success = true
	s.Notice = ""
	return s
}

func (s PendaftaranFormState) Failed(notice string) PendaftaranFormState {
	s.Submitting = false
	s.Success = false
	s.Notice = notice
	return s
}

// PendaftaranEventMessage is published after a registration mutation succeeds.
// Create events carry no id: the API does not return the new record.
type PendaftaranEventMessage struct {
	Event         constant.PendaftaranEvent `json:"event"`
	PendaftaranID uint64                    `json:"id_pendaftaran,omitempty"`
	OccurredAt    time.Time                 `json:"occurred_at"`
}
