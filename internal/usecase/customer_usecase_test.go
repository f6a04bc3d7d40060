package usecase

import (
	"context"
	"errors"
	"testing"

	"assistec/internal/domain/entities"
	mock_interfaces "assistec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_List(t *testing.T) {
	t.Run("clamps pagination and never returns nil items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICustomerService(ctrl)
		uc := NewCustomerUseCase(svc)

		svc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f map[string]any) (entities.Page[entities.Customer], error) {
				if f["page"] != 1 || f["limit"] != 100 || f["busca"] != "ana" {
					t.Fatalf("unexpected filters: %+v", f)
				}
				return entities.Page[entities.Customer]{}, nil
			},
		)

		res, err := uc.List(context.Background(), map[string]any{"page": "0", "limit": 500, "busca": "ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Items == nil {
			t.Fatalf("items must not be nil")
		}
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICustomerService(ctrl)
		uc := NewCustomerUseCase(svc)

		svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(entities.Page[entities.Customer]{}, errors.New("boom"))

		_, err := uc.List(context.Background(), nil)
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Customer{Name: "  "})
		if !errors.Is(err, ErrInvalidCustomerInput) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrInvalidCustomerInput, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Fields[0].Field != "nome" {
			t.Fatalf("expected nome field error, got %v", err)
		}
	})

	t.Run("invalid email and state", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Customer{Name: "Ana", Email: "ana@", State: "São Paulo"})
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 2 {
			t.Fatalf("expected two field errors, got %v", err)
		}
	})

	t.Run("success trims fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICustomerService(ctrl)
		uc := NewCustomerUseCase(svc)

		svc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name != "Ana Souza" || c.State != "SP" || c.Email != "ana@mail.com" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				c.ID = "7"
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Customer{Name: " Ana Souza ", Email: " ana@mail.com", State: "sp"})
		if err != nil || res.ID != "7" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestCustomerUseCase_ByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "", entities.Customer{Name: "x"}); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("delete passes server error through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICustomerService(ctrl)
		uc := NewCustomerUseCase(svc)

		want := errors.New("Cliente possui ordens vinculadas")
		svc.EXPECT().Delete(gomock.Any(), "12").Return(want)

		if err := uc.Delete(context.Background(), " 12 "); !errors.Is(err, want) {
			t.Fatalf("expected server error, got %v", err)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockICustomerService(ctrl)
		uc := NewCustomerUseCase(svc)

		svc.EXPECT().Update(gomock.Any(), "3", gomock.Any()).Return(entities.Customer{ID: "3", Name: "Bia"}, nil)

		res, err := uc.Update(context.Background(), "3", entities.Customer{Name: "Bia"})
		if err != nil || res.Name != "Bia" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
