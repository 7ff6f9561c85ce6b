package nilai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/pendaftaran/model"
	"github.com/muhammadheryan/pendaftaran/thirdparty/restapi"
)

const basePath = "/nilai/"

type API struct {
	client *restapi.Client
}

type NilaiRepository interface {
	List(ctx context.Context) ([]model.Nilai, error)
	Create(ctx context.Context, req *model.NilaiRequest) error
	Update(ctx context.Context, id uint64, req *model.NilaiRequest) error
	Delete(ctx context.Context, id uint64) error
}

func NewNilaiRepository(client *restapi.Client) NilaiRepository {
	return &API{client: client}
}

// List decodes GET /nilai/, which returns a bare array with no envelope.
func (a *API) List(ctx context.Context) ([]model.Nilai, error) {
	var res []model.Nilai
	if err := a.client.Do(ctx, http.MethodGet, basePath, nil, &res); err != nil {
		return nil, err
	}
	if res == nil {
		return []model.Nilai{}, nil
	}
	return res, nil
}

func (a *API) Create(ctx context.Context, req *model.NilaiRequest) error {
	return a.client.Do(ctx, http.MethodPost, basePath, req, nil)
}

func (a *API) Update(ctx context.Context, id uint64, req *model.NilaiRequest) error {
	return a.client.Do(ctx, http.MethodPut, fmt.Sprintf("%s%d", basePath, id), req, nil)
}

func (a *API) Delete(ctx context.Context, id uint64) error {
	return a.client.Do(ctx, http.MethodDelete, fmt.Sprintf("%s%d", basePath, id), nil, nil)
}
