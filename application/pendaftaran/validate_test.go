package pendaftaran_test

import (
	"reflect"
	"testing"

	apppendaftaran "github.com/muhammadheryan/pendaftaran/application/pendaftaran"
	"github.com/muhammadheryan/pendaftaran/model"
)

func validForm() model.PendaftaranForm {
	return model.PendaftaranForm{
		Nama:        "Budi Santoso",
		Usia:        "25",
		Email:       "budi@example.com",
		NomorTelpon: "081234567890",
		Motivasi:    "Ingin belajar Go",
	}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *model.PendaftaranForm)
		wantField string
		wantErr   bool
	}{
		{name: "valid form", mutate: func(f *model.PendaftaranForm) {}},

		{name: "nama: single letter", mutate: func(f *model.PendaftaranForm) { f.Nama = "A" }, wantField: apppendaftaran.FieldNama},
		{name: "nama: 15 letters and spaces", mutate: func(f *model.PendaftaranForm) { f.Nama = "Abc Defg Hijklm" }, wantField: apppendaftaran.FieldNama},
		{name: "nama: 16 characters", mutate: func(f *model.PendaftaranForm) { f.Nama = "Abcdefghijklmnop" }, wantField: apppendaftaran.FieldNama, wantErr: true},
		{name: "nama: contains digit", mutate: func(f *model.PendaftaranForm) { f.Nama = "Budi2" }, wantField: apppendaftaran.FieldNama, wantErr: true},
		{name: "nama: empty", mutate: func(f *model.PendaftaranForm) { f.Nama = "" }, wantField: apppendaftaran.FieldNama, wantErr: true},
		{name: "nama: punctuation", mutate: func(f *model.PendaftaranForm) { f.Nama = "O'Neil" }, wantField: apppendaftaran.FieldNama, wantErr: true},
		{name: "nama: no-break space", mutate: func(f *model.PendaftaranForm) { f.Nama = "Budi\u00a0Santoso" }, wantField: apppendaftaran.FieldNama},
		{name: "nama: vertical tab", mutate: func(f *model.PendaftaranForm) { f.Nama = "Ab\vc" }, wantField: apppendaftaran.FieldNama},
		{name: "nama: em space and ideographic space", mutate: func(f *model.PendaftaranForm) { f.Nama = "Ab\u2003c\u3000d" }, wantField: apppendaftaran.FieldNama},
		{name: "nama: byte order mark", mutate: func(f *model.PendaftaranForm) { f.Nama = "\uFEFFBudi" }, wantField: apppendaftaran.FieldNama},
		{name: "nama: next line is not a space", mutate: func(f *model.PendaftaranForm) { f.Nama = "Ab\u0085c" }, wantField: apppendaftaran.FieldNama, wantErr: true},
		{name: "nama: 15 runes with no-break spaces", mutate: func(f *model.PendaftaranForm) { f.Nama = "Abcdef\u00a0ghijk\u00a0lm" }, wantField: apppendaftaran.FieldNama},

		{name: "usia: 16", mutate: func(f *model.PendaftaranForm) { f.Usia = "16" }, wantField: apppendaftaran.FieldUsia, wantErr: true},
		{name: "usia: 61", mutate: func(f *model.PendaftaranForm) { f.Usia = "61" }, wantField: apppendaftaran.FieldUsia, wantErr: true},
		{name: "usia: abc", mutate: func(f *model.PendaftaranForm) { f.Usia = "abc" }, wantField: apppendaftaran.FieldUsia, wantErr: true},
		{name: "usia: empty", mutate: func(f *model.PendaftaranForm) { f.Usia = "" }, wantField: apppendaftaran.FieldUsia, wantErr: true},
		{name: "usia: 17", mutate: func(f *model.PendaftaranForm) { f.Usia = "17" }, wantField: apppendaftaran.FieldUsia},
		{name: "usia: 40", mutate: func(f *model.PendaftaranForm) { f.Usia = "40" }, wantField: apppendaftaran.FieldUsia},
		{name: "usia: 60", mutate: func(f *model.PendaftaranForm) { f.Usia = "60" }, wantField: apppendaftaran.FieldUsia},
		{name: "usia: leading digits parse", mutate: func(f *model.PendaftaranForm) { f.Usia = "40 tahun" }, wantField: apppendaftaran.FieldUsia},
		{name: "usia: leading no-break space", mutate: func(f *model.PendaftaranForm) { f.Usia = "\u00a040" }, wantField: apppendaftaran.FieldUsia},
		{name: "usia: leading byte order mark and newline", mutate: func(f *model.PendaftaranForm) { f.Usia = "\uFEFF\n30" }, wantField: apppendaftaran.FieldUsia},
		{name: "usia: leading next line", mutate: func(f *model.PendaftaranForm) { f.Usia = "\u008540" }, wantField: apppendaftaran.FieldUsia, wantErr: true},

		{name: "email: a@b", mutate: func(f *model.PendaftaranForm) { f.Email = "a@b" }, wantField: apppendaftaran.FieldEmail},
		{name: "email: consecutive dots allowed", mutate: func(f *model.PendaftaranForm) { f.Email = "a..b@c..d" }, wantField: apppendaftaran.FieldEmail},
		{name: "email: contains space", mutate: func(f *model.PendaftaranForm) { f.Email = "a b@c.com" }, wantField: apppendaftaran.FieldEmail, wantErr: true},
		{name: "email: double at", mutate: func(f *model.PendaftaranForm) { f.Email = "a@@b.com" }, wantField: apppendaftaran.FieldEmail, wantErr: true},
		{name: "email: no at", mutate: func(f *model.PendaftaranForm) { f.Email = "budi.example.com" }, wantField: apppendaftaran.FieldEmail, wantErr: true},
		{name: "email: trailing newline", mutate: func(f *model.PendaftaranForm) { f.Email = "a@b.com\n" }, wantField: apppendaftaran.FieldEmail, wantErr: true},
		{name: "email: no-break space", mutate: func(f *model.PendaftaranForm) { f.Email = "a\u00a0b@c.com" }, wantField: apppendaftaran.FieldEmail, wantErr: true},

		{name: "telpon: 10 digits", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "0812345678" }, wantField: apppendaftaran.FieldNomorTelpon},
		{name: "telpon: 13 digits", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "0812345678901" }, wantField: apppendaftaran.FieldNomorTelpon},
		{name: "telpon: 9 digits", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "081234567" }, wantField: apppendaftaran.FieldNomorTelpon, wantErr: true},
		{name: "telpon: 14 digits", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "08123456789012" }, wantField: apppendaftaran.FieldNomorTelpon, wantErr: true},
		{name: "telpon: 15 digits", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "081234567890123" }, wantField: apppendaftaran.FieldNomorTelpon, wantErr: true},
		{name: "telpon: wrong prefix", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "1812345678" }, wantField: apppendaftaran.FieldNomorTelpon, wantErr: true},
		{name: "telpon: with dash", mutate: func(f *model.PendaftaranForm) { f.NomorTelpon = "0812-345678" }, wantField: apppendaftaran.FieldNomorTelpon, wantErr: true},

		{name: "motivasi: blank", mutate: func(f *model.PendaftaranForm) { f.Motivasi = "   " }, wantField: apppendaftaran.FieldMotivasi, wantErr: true},
		{name: "motivasi: empty", mutate: func(f *model.PendaftaranForm) { f.Motivasi = "" }, wantField: apppendaftaran.FieldMotivasi, wantErr: true},
		{name: "motivasi: ok", mutate: func(f *model.PendaftaranForm) { f.Motivasi = "ok" }, wantField: apppendaftaran.FieldMotivasi},
		{name: "motivasi: byte order mark only", mutate: func(f *model.PendaftaranForm) { f.Motivasi = "\uFEFF" }, wantField: apppendaftaran.FieldMotivasi, wantErr: true},
		{name: "motivasi: unicode spaces only", mutate: func(f *model.PendaftaranForm) { f.Motivasi = "\u00a0\u2028\u3000\v" }, wantField: apppendaftaran.FieldMotivasi, wantErr: true},
		{name: "motivasi: next line is content", mutate: func(f *model.PendaftaranForm) { f.Motivasi = "\u0085" }, wantField: apppendaftaran.FieldMotivasi},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			got := apppendaftaran.Validate(form)

			if !tt.wantErr {
				if len(got) != 0 {
					t.Fatalf("Validate() = %v, want no errors", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("Validate() = %v, want exactly one error on %q", got, tt.wantField)
			}
			if _, ok := got[tt.wantField]; !ok {
				t.Fatalf("Validate() = %v, want error on %q", got, tt.wantField)
			}
		})
	}
}

func TestValidate_CollectsEveryError(t *testing.T) {
	got := apppendaftaran.Validate(model.PendaftaranForm{
		Nama:        "Budi 99",
		Usia:        "abc",
		Email:       "a b@c",
		NomorTelpon: "12345",
		Motivasi:    " \t ",
	})

	want := model.FieldErrors{
		"nama":        "Nama hanya boleh huruf dan spasi, maksimal 15 karakter",
		"usia":        "Usia harus antara 17 sampai 60 tahun",
		"email":       "Email tidak valid",
		"nomorTelpon": "Nomor telepon harus 10-13 digit, dimulai 08, dan hanya angka",
		"motivasi":    "Motivasi tidak boleh kosong",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Validate() = %v, want %v", got, want)
	}
}

func TestValidate_DoesNotModifyInput(t *testing.T) {
	form := validForm()
	form.Motivasi = "  spasi  "
	before := form

	_ = apppendaftaran.Validate(form)

	if form != before {
		t.Fatalf("Validate() modified its input: %+v", form)
	}
}
