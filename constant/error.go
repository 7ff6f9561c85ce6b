package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrValidation
	ErrLoadFailed
	ErrSaveFailed
	ErrUpdateFailed
	ErrDeleteFailed
	ErrSubmissionInProgress
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "Terjadi kesalahan internal",
	ErrNotFound:             "Data tidak ditemukan",
	ErrInvalidRequest:       "Permintaan tidak valid",
	ErrValidation:           "Data yang dikirim tidak valid",
	ErrLoadFailed:           "Terjadi kesalahan saat memuat data",
	ErrSaveFailed:           "Terjadi kesalahan saat menyimpan data",
	ErrUpdateFailed:         "Terjadi kesalahan saat memperbarui data",
	ErrDeleteFailed:         "Terjadi kesalahan saat menghapus data",
	ErrSubmissionInProgress: "Data sedang diproses, mohon tunggu",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrValidation:           http.StatusUnprocessableEntity,
	ErrLoadFailed:           http.StatusBadGateway,
	ErrSaveFailed:           http.StatusBadGateway,
	ErrUpdateFailed:         http.StatusBadGateway,
	ErrDeleteFailed:         http.StatusBadGateway,
	ErrSubmissionInProgress: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrValidation:           "0004",
	ErrLoadFailed:           "0005",
	ErrSaveFailed:           "0006",
	ErrUpdateFailed:         "0007",
	ErrDeleteFailed:         "0008",
	ErrSubmissionInProgress: "0009",
}
