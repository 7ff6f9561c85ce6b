package model

// Nilai is a record of the numeric score demo resource.
type Nilai struct {
	NilaiID uint64 `json:"NilaiID"`
	Angka   int    `json:"Angka"`
}

type NilaiRequest struct {
	Angka int `json:"Angka"`
}
