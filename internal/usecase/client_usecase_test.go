package usecase

import (
	"context"
	"errors"
	"testing"

	"sistemaos/internal/domain/entities"
	mock_interfaces "sistemaos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing document", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), ClientCreateInput{Name: "Carlos"})
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("duplicate document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocument(gomock.Any(), "123").Return(entities.Client{ID: "c-1", Document: "123"}, nil)

		_, err := uc.Create(context.Background(), ClientCreateInput{Document: "123", Name: "Carlos"})
		if !errors.Is(err, ErrClientDocumentExists) {
			t.Fatalf("expected ErrClientDocumentExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocument(gomock.Any(), "123").Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Document != "123" || c.Name != "Carlos" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), ClientCreateInput{Document: " 123 ", Name: "Carlos"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Document != "123" {
			t.Fatalf("expected trimmed document, got %q", c.Document)
		}
	})
}

func TestClientUseCase_GetByDocument(t *testing.T) {
	t.Run("blank document", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByDocument(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocument(gomock.Any(), "999").Return(entities.Client{}, nil)

		_, err := uc.GetByDocument(context.Background(), "999")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success trims the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByDocument(gomock.Any(), "123").Return(entities.Client{ID: "c-1", Document: "123"}, nil)

		c, err := uc.GetByDocument(context.Background(), " 123 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "c-1" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), "c-1", ClientCreateInput{Document: "123", Name: "Carlos"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("document change collides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Document: "123"}, nil)
		repo.EXPECT().GetByDocument(gomock.Any(), "456").Return(entities.Client{ID: "c-2", Document: "456"}, nil)

		_, err := uc.Update(context.Background(), "c-1", ClientCreateInput{Document: "456", Name: "Carlos"})
		if !errors.Is(err, ErrClientDocumentExists) {
			t.Fatalf("expected ErrClientDocumentExists, got %v", err)
		}
	})

	t.Run("same document skips collision check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Document: "123", Name: "Carlos"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "Carlos A." {
					t.Fatalf("unexpected name: %q", c.Name)
				}
				return c, nil
			},
		)

		_, err := uc.Update(context.Background(), "c-1", ClientCreateInput{Document: "123", Name: "Carlos A."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		if err := uc.Delete(context.Background(), "c-1"); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		if err := uc.Delete(context.Background(), " c-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
