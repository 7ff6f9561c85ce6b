package nilai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/pendaftaran/model"
	nilairepo "github.com/muhammadheryan/pendaftaran/repository/nilai"
	"github.com/muhammadheryan/pendaftaran/thirdparty/restapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, h http.HandlerFunc) nilairepo.NilaiRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return nilairepo.NewNilaiRepository(restapi.NewClient(srv.URL+"/", time.Second))
}

func TestAPI_List_DecodesBareArray(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nilai/", r.URL.Path)
		_, _ = io.WriteString(w, `[{"NilaiID":1,"Angka":90},{"NilaiID":2,"Angka":75}]`)
	})

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Nilai{{NilaiID: 1, Angka: 90}, {NilaiID: 2, Angka: 75}}, got)
}

func TestAPI_List_EnvelopeIsRejected(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"NilaiID":1,"Angka":90}]}`)
	})

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestAPI_Mutations(t *testing.T) {
	type call struct {
		method string
		path   string
		body   map[string]interface{}
	}
	var got []call
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		c := call{method: r.Method, path: r.URL.Path}
		if r.ContentLength > 0 {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&c.body))
		}
		got = append(got, c)
	})
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.NilaiRequest{Angka: 80}))
	require.NoError(t, repo.Update(ctx, 4, &model.NilaiRequest{Angka: 81}))
	require.NoError(t, repo.Delete(ctx, 4))

	assert.Equal(t, []call{
		{method: http.MethodPost, path: "/nilai/", body: map[string]interface{}{"Angka": float64(80)}},
		{method: http.MethodPut, path: "/nilai/4", body: map[string]interface{}{"Angka": float64(81)}},
		{method: http.MethodDelete, path: "/nilai/4"},
	}, got)
}
