package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/muhammadheryan/pendaftaran/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOk bool
	}{
		{"40", 40, true},
		{"  17", 17, true},
		{"+25", 25, true},
		{"-3", -3, true},
		{"40abc", 40, true},
		{"60.9", 60, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"\u00a040", 40, true},
		{"\uFEFF\u2028 +33", 33, true},
		{"\u008540", 0, false},
		{"\u00a0", 0, false},
		{"99999999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingInt(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk && tt.want != 0 {
				assert.Equal(t, tt.want, got)
			}
			if tt.in == "99999999999999999999999" {
				assert.Greater(t, got, 60)
			}
		})
	}
}

func TestPendaftaranForm_ToRequest(t *testing.T) {
	form := PendaftaranForm{
		Nama:        "Budi",
		Usia:        "26",
		Email:       "budi@example.com",
		NomorTelpon: "081234567890",
		Motivasi:    "Belajar",
	}

	assert.Equal(t, PendaftaranRequest{
		Nama:        "Budi",
		Usia:        26,
		Email:       "budi@example.com",
		NomorTelpon: "081234567890",
		Motifasi:    "Belajar",
	}, form.ToRequest())
}

func TestFromPendaftaran(t *testing.T) {
	form := FromPendaftaran(Pendaftaran{ID: 3, Nama: "Sari", Usia: 31, Email: "s@x", NomorTelpon: "0898765432", Motifasi: "ilmu"})

	assert.Equal(t, PendaftaranForm{Nama: "Sari", Usia: "31", Email: "s@x", NomorTelpon: "0898765432", Motivasi: "ilmu"}, form)
}

func TestPendaftaranFormState_Transitions(t *testing.T) {
	start := PendaftaranFormState{ID: 7, Token: "t"}
	assert.True(t, start.IsEdit())
	assert.False(t, PendaftaranFormState{}.IsEdit())

	errs := FieldErrors{"nama": "salah"}
	withErrs := start.WithErrors(errs)
	errs["usia"] = "salah"
	assert.Len(t, withErrs.Errors, 1, "errors are copied")
	assert.False(t, withErrs.Valid())
	assert.True(t, start.Valid(), "receiver untouched")

	submitting := start.Failed("old").BeginSubmit()
	assert.True(t, submitting.Submitting)
	assert.Empty(t, submitting.Notice)

	failed := submitting.Failed("gagal")
	assert.False(t, failed.Submitting)
	assert.False(t, failed.Success)
	assert.Equal(t, "gagal", failed.Notice)
	assert.True(t, submitting.Submitting)

	done := submitting.Succeeded()
	assert.True(t, done.Success)
	assert.False(t, done.Submitting)
}

func TestIsFormSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00a0', '\u1680', '\u2000', '\u200a', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\uFEFF'} {
		assert.True(t, IsFormSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '0', '\u0085', '\u200b', '\u180e', 0} {
		assert.False(t, IsFormSpace(r), "%U", r)
	}
}

func TestPendaftaranEventMessage_JSON(t *testing.T) {
	at := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	created, err := json.Marshal(PendaftaranEventMessage{Event: constant.PendaftaranEventCreated, OccurredAt: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"pendaftaran.created","occurred_at":"2026-10-17T08:00:00Z"}`, string(created))

	updated, err := json.Marshal(PendaftaranEventMessage{Event: constant.PendaftaranEventUpdated, PendaftaranID: 7, OccurredAt: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"pendaftaran.updated","id_pendaftaran":7,"occurred_at":"2026-10-17T08:00:00Z"}`, string(updated))
}
