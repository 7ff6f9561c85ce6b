package pendaftaran

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/pendaftaran/model"
	"github.com/muhammadheryan/pendaftaran/thirdparty/restapi"
)

const basePath = "/pendaftaran/"

type API struct {
	client *restapi.Client
}

type PendaftaranRepository interface {
	List(ctx context.Context) ([]model.Pendaftaran, error)
	GetByID(ctx context.Context, id uint64) (*model.Pendaftaran, error)
	Create(ctx context.Context, req *model.PendaftaranRequest) error
	Update(ctx context.Context, id uint64, req *model.PendaftaranRequest) error
	Delete(ctx context.Context, id uint64) error
}

func NewPendaftaranRepository(client *restapi.Client) PendaftaranRepository {
	return &API{client: client}
}

// GET /pendaftaran/ wraps the collection in {"data": [...]}.
type listEnvelope struct {
	Data []model.Pendaftaran `json:"data"`
}

// GET /pendaftaran/{id} wraps the record in {"data": {...}}.
type detailEnvelope struct {
	Data *model.Pendaftaran `json:"data"`
}

func (a *API) List(ctx context.Context) ([]model.Pendaftaran, error) {
	var res listEnvelope
	if err := a.client.Do(ctx, http.MethodGet, basePath, nil, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.Pendaftaran{}, nil
	}
	return res.Data, nil
}

func (a *API) GetByID(ctx context.Context, id uint64) (*model.Pendaftaran, error) {
	var res detailEnvelope
	if err := a.client.Do(ctx, http.MethodGet, itemPath(id), nil, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return nil, fmt.Errorf("GET %s: response has no data", itemPath(id))
	}
	return res.Data, nil
}

func (a *API) Create(ctx context.Context, req *model.PendaftaranRequest) error {
	return a.client.Do(ctx, http.MethodPost, basePath, req, nil)
}

func (a *API) Update(ctx context.Context, id uint64, req *model.PendaftaranRequest) error {
	return a.client.Do(ctx, http.MethodPut, itemPath(id), req, nil)
}

func (a *API) Delete(ctx context.Context, id uint64) error {
	return a.client.Do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id uint64) string {
	return fmt.Sprintf("%s%d", basePath, id)
}
