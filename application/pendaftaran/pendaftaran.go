package pendaftaran

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/pendaftaran/constant"
	"github.com/muhammadheryan/pendaftaran/model"
	lockrepo "github.com/muhammadheryan/pendaftaran/repository/lock"
	pendaftaranrepo "github.com/muhammadheryan/pendaftaran/repository/pendaftaran"
	"github.com/muhammadheryan/pendaftaran/utils/errors"
	"github.com/muhammadheryan/pendaftaran/utils/logger"
	"go.uber.org/zap"
)

type PendaftaranApp interface {
	List(ctx context.Context) ([]model.Pendaftaran, error)
	Get(ctx context.Context, id uint64) (*model.Pendaftaran, error)
	NewForm(ctx context.Context, id uint64) (model.PendaftaranFormState, error)
	Validate(form model.PendaftaranForm) model.FieldErrors
	Submit(ctx context.Context, state model.PendaftaranFormState) (model.PendaftaranFormState, error)
	Delete(ctx context.Context, id uint64) error
}

// EventPublisher announces successful mutations.
type EventPublisher interface {
	PublishPendaftaranEvent(ctx context.Context, msg model.PendaftaranEventMessage) error
}

type pendaftaranAppImpl struct {
	pendaftaranRepo pendaftaranrepo.PendaftaranRepository
	lockRepo        lockrepo.LockRepository
	publisher       EventPublisher
	now             func() time.Time
}

// NewPendaftaranApp wires the registration use cases. publisher may be nil.
func NewPendaftaranApp(pendaftaranRepo pendaftaranrepo.PendaftaranRepository, lockRepo lockrepo.LockRepository, publisher EventPublisher) PendaftaranApp {
	return &pendaftaranAppImpl{
		pendaftaranRepo: pendaftaranRepo,
		lockRepo:        lockRepo,
		publisher:       publisher,
		now:             time.Now,
	}
}

func (s *pendaftaranAppImpl) List(ctx context.Context) ([]model.Pendaftaran, error) {
	items, err := s.pendaftaranRepo.List(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[List] err pendaftaranRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrLoadFailed)
	}
	return items, nil
}

func (s *pendaftaranAppImpl) Get(ctx context.Context, id uint64) (*model.Pendaftaran, error) {
	if id == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	item, err := s.pendaftaranRepo.GetByID(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error("[Get] err pendaftaranRepo.GetByID", zap.Uint64("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrLoadFailed)
	}
	return item, nil
}

// NewForm returns the initial state of a form instance: empty for id 0,
// otherwise populated from the stored record.
func (s *pendaftaranAppImpl) NewForm(ctx context.Context, id uint64) (model.PendaftaranFormState, error) {
	state := model.PendaftaranFormState{ID: id, Token: uuid.NewString()}
	if id == 0 {
		return state, nil
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return model.PendaftaranFormState{}, err
	}
	return state.WithForm(model.FromPendaftaran(*item)), nil
}

func (s *pendaftaranAppImpl) Validate(form model.PendaftaranForm) model.FieldErrors {
	return Validate(form)
}

// Submit validates state.Form and, when valid, creates (ID 0) or updates the
// record. The returned state replaces the one passed in.
func (s *pendaftaranAppImpl) Submit(ctx context.Context, state model.PendaftaranFormState) (model.PendaftaranFormState, error) {
	state = state.WithErrors(Validate(state.Form))
	if !state.Valid() {
		return state, errors.SetCustomError(constant.ErrValidation)
	}

	failType := constant.ErrSaveFailed
	if state.IsEdit() {
		failType = constant.ErrUpdateFailed
	}

	if state.Token == "" {
		state.Token = uuid.NewString()
	}
	acquired, err := s.lockRepo.Acquire(ctx, state.Token)
	if err != nil {
		logger.Ctx(ctx).Error("[Submit] err lockRepo.Acquire", zap.String("error", err.Error()))
		return state.Failed(constant.ErrorTypeMessage[failType]), errors.SetCustomError(failType)
	}
	if !acquired {
		return state.Failed(constant.ErrorTypeMessage[constant.ErrSubmissionInProgress]), errors.SetCustomError(constant.ErrSubmissionInProgress)
	}
	defer func() {
		if err := s.lockRepo.Release(context.WithoutCancel(ctx), state.Token); err != nil {
			logger.Ctx(ctx).Warn("[Submit] err lockRepo.Release", zap.String("error", err.Error()))
		}
	}()

	state = state.BeginSubmit()
	req := state.Form.ToRequest()

	event := constant.PendaftaranEventCreated
	if state.IsEdit() {
		event = constant.PendaftaranEventUpdated
		err = s.pendaftaranRepo.Update(ctx, state.ID, &req)
	} else {
		err = s.pendaftaranRepo.Create(ctx, &req)
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Submit] err pendaftaranRepo save", zap.Uint64("id", state.ID), zap.String("error", err.Error()))
		return state.Failed(constant.ErrorTypeMessage[failType]), errors.SetCustomError(failType)
	}

	s.publish(ctx, event, state.ID)
	return state.Succeeded(), nil
}

func (s *pendaftaranAppImpl) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.pendaftaranRepo.Delete(ctx, id); err != nil {
		logger.Ctx(ctx).Error("[Delete] err pendaftaranRepo.Delete", zap.Uint64("id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDeleteFailed)
	}
	s.publish(ctx, constant.PendaftaranEventDeleted, id)
	return nil
}

func (s *pendaftaranAppImpl) publish(ctx context.Context, event constant.PendaftaranEvent, id uint64) {
	if s.publisher == nil {
		return
	}
	msg := model.PendaftaranEventMessage{
		Event:         event,
		PendaftaranID: id,
		OccurredAt:    s.now(),
	}
	if err := s.publisher.PublishPendaftaranEvent(ctx, msg); err != nil {
		logger.Ctx(ctx).Error("[publish] err PublishPendaftaranEvent", zap.String("event", string(event)), zap.String("error", err.Error()))
	}
}
