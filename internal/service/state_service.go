package service

import (
	"context"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/pkg/store"
)

type IStateService interface {
	Preferences(ctx context.Context) *dto.PreferencesResponse
	SetTheme(ctx context.Context, request *dto.SetThemeRequest) error
	SetUser(ctx context.Context, request *dto.SetUserRequest) error
	ClearUser(ctx context.Context) error
}

type stateService struct {
	store *store.Store
}

func NewStateService(st *store.Store) IStateService {
	return &stateService{store: st}
}

func (ss *stateService) Preferences(ctx context.Context) *dto.PreferencesResponse {
	snapshot := ss.store.Snapshot()
	resp := &dto.PreferencesResponse{Theme: snapshot.Theme}
	if snapshot.User != nil {
		resp.User = &dto.UserProfileDTO{Name: snapshot.User.Name, Email: snapshot.User.Email}
	}
	return resp
}

func (ss *stateService) SetTheme(ctx context.Context, request *dto.SetThemeRequest) error {
	return ss.store.SetTheme(ctx, request.Theme)
}

func (ss *stateService) SetUser(ctx context.Context, request *dto.SetUserRequest) error {
	return ss.store.SetUser(ctx, &entity.UserProfile{Name: request.Name, Email: request.Email})
}

func (ss *stateService) ClearUser(ctx context.Context) error {
	return ss.store.SetUser(ctx, nil)
}
