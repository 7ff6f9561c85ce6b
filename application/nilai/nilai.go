package nilai

import (
	"context"
	"strconv"
	"strings"

	"github.com/muhammadheryan/pendaftaran/constant"
	"github.com/muhammadheryan/pendaftaran/model"
	nilairepo "github.com/muhammadheryan/pendaftaran/repository/nilai"
	"github.com/muhammadheryan/pendaftaran/utils/errors"
	"github.com/muhammadheryan/pendaftaran/utils/logger"
	validatorx "github.com/muhammadheryan/pendaftaran/utils/validator"
	"go.uber.org/zap"
)

// NilaiForm is the single input of the score demo page.
type NilaiForm struct {
	Angka string `form:"angka" validate:"required"`
}

type NilaiApp interface {
	List(ctx context.Context) ([]model.Nilai, error)
	// Save creates the score when id is 0 and updates it otherwise.
	Save(ctx context.Context, id uint64, form NilaiForm) error
	Delete(ctx context.Context, id uint64) error
}

type nilaiAppImpl struct {
	nilaiRepo nilairepo.NilaiRepository
}

func NewNilaiApp(nilaiRepo nilairepo.NilaiRepository) NilaiApp {
	return &nilaiAppImpl{nilaiRepo: nilaiRepo}
}

func (s *nilaiAppImpl) List(ctx context.Context) ([]model.Nilai, error) {
	items, err := s.nilaiRepo.List(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[List] err nilaiRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrLoadFailed)
	}
	return items, nil
}

func (s *nilaiAppImpl) Save(ctx context.Context, id uint64, form NilaiForm) error {
	form.Angka = strings.TrimSpace(form.Angka)
	if err := validatorx.ValidateStruct(&form); err != nil {
		return errors.SetCustomError(constant.ErrValidation)
	}
	angka, err := strconv.Atoi(form.Angka)
	if err != nil {
		return errors.SetCustomError(constant.ErrValidation)
	}

	req := &model.NilaiRequest{Angka: angka}
	if id == 0 {
		err = s.nilaiRepo.Create(ctx, req)
	} else {
		err = s.nilaiRepo.Update(ctx, id, req)
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Save] err nilaiRepo save", zap.Uint64("id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrSaveFailed)
	}
	return nil
}

func (s *nilaiAppImpl) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.nilaiRepo.Delete(ctx, id); err != nil {
		logger.Ctx(ctx).Error("[Delete] err nilaiRepo.Delete", zap.Uint64("id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDeleteFailed)
	}
	return nil
}
