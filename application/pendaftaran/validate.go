package pendaftaran

import (
	"regexp"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/pendaftaran/model"
	validatorx "github.com/muhammadheryan/pendaftaran/utils/validator"
)

const (
	FieldNama        = "nama"
	FieldUsia        = "usia"
	FieldEmail       = "email"
	FieldNomorTelpon = "nomorTelpon"
	FieldMotivasi    = "motivasi"

	MinUsia = 17
	MaxUsia = 60
)

// formSpaceClass lists the runes model.IsFormSpace accepts. RE2's \s is
// narrower, so the name rule spells the class out.
const formSpaceClass = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	namaPattern   = regexp.MustCompile(`^[A-Za-z` + formSpaceClass + `]{1,15}$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+$`)
	telponPattern = regexp.MustCompile(`^08\d{8,11}$`)
)

var fieldMessages = map[string]string{
	FieldNama:        "Nama hanya boleh huruf dan spasi, maksimal 15 karakter",
	FieldUsia:        "Usia harus antara 17 sampai 60 tahun",
	FieldEmail:       "Email tidak valid",
	FieldNomorTelpon: "Nomor telepon harus 10-13 digit, dimulai 08, dan hanya angka",
	FieldMotivasi:    "Motivasi tidak boleh kosong",
}

var formValidator = validatorx.New(map[string]gpvalidator.Func{
	"nama": func(fl gpvalidator.FieldLevel) bool {
		return namaPattern.MatchString(fl.Field().String())
	},
	"usia": func(fl gpvalidator.FieldLevel) bool {
		n, ok := model.ParseLeadingInt(fl.Field().String())
		return ok && n >= MinUsia && n <= MaxUsia
	},
	"email_longgar": func(fl gpvalidator.FieldLevel) bool {
		email := fl.Field().String()
		// the whitespace check overlaps the pattern but stays a separate condition
		return emailPattern.MatchString(email) && strings.IndexFunc(email, model.IsFormSpace) < 0
	},
	"telpon": func(fl gpvalidator.FieldLevel) bool {
		return telponPattern.MatchString(fl.Field().String())
	},
	"motivasi": func(fl gpvalidator.FieldLevel) bool {
		return strings.TrimFunc(fl.Field().String(), model.IsFormSpace) != ""
	},
})

// Validate checks every field of form and returns one message per failing
// field. An empty result means the form may be submitted.
func Validate(form model.PendaftaranForm) model.FieldErrors {
	errs := model.FieldErrors{}
	for field := range validatorx.FailedFields(formValidator.Struct(form)) {
		errs[field] = fieldMessages[field]
	}
	return errs
}
