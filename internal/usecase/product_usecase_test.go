package usecase

import (
	"context"
	"errors"
	"testing"

	"assistec/internal/domain/entities"
	mock_interfaces "assistec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestComputeMargin(t *testing.T) {
	cases := []struct {
		cost, sale, want float64
	}{
		{cost: 100, sale: 150, want: 50},
		{cost: 3, sale: 4, want: 33.33},
		{cost: 0, sale: 10, want: 0},
		{cost: -1, sale: 10, want: 0},
		{cost: 10, sale: 5, want: -50},
	}
	for _, tc := range cases {
		if got := ComputeMargin(tc.cost, tc.sale); got != tc.want {
			t.Fatalf("ComputeMargin(%v, %v) = %v, want %v", tc.cost, tc.sale, got, tc.want)
		}
	}
}

func TestProductUseCase_CreateUpdate(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ProductInput{Type: "servico", CostPrice: -1, StockMin: 5, StockMax: 2})
		var verr *ValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrInvalidProductInput) || len(verr.Fields) != 4 {
			t.Fatalf("expected 4 field errors, got %v", err)
		}
	})

	t.Run("create computes margin and keeps initial stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockIProductService(ctrl)
		uc := NewProductUseCase(svc)
		stock := 10

		svc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProductInput{})).DoAndReturn(
			func(_ context.Context, p entities.ProductInput) (entities.Product, error) {
				if p.Margin != 25 || p.InitialStock == nil || *p.InitialStock != 10 || p.Type != entities.ProductTypePeca {
					t.Fatalf("unexpected input: %+v", p)
				}
				return entities.Product{ID: "1", Name: p.Name}, nil
			},
		)

		if _, err := uc.Create(context.Background(), entities.ProductInput{Name: "Tela", CostPrice: 80, SalePrice: 100, InitialStock: &stock}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update strips stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockIProductService(ctrl)
		uc := NewProductUseCase(svc)
		stock := 99

		svc.EXPECT().Update(gomock.Any(), "1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.ProductInput) (entities.Product, error) {
				if p.InitialStock != nil {
					t.Fatalf("update must not carry stock")
				}
				return entities.Product{ID: "1"}, nil
			},
		)

		if _, err := uc.Update(context.Background(), "1", entities.ProductInput{Name: "Tela", InitialStock: &stock}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProductUseCase_MoveStock(t *testing.T) {
	cases := []struct {
		name string
		m    entities.StockMovement
	}{
		{name: "invalid type", m: entities.StockMovement{Type: "transferencia", Quantity: 1}},
		{name: "zero quantity", m: entities.StockMovement{Type: entities.MovementEntrada}},
		{name: "adjustment without reason", m: entities.StockMovement{Type: entities.MovementAjuste, Quantity: 2, Reason: " "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewProductUseCase(nil)
			if _, err := uc.MoveStock(context.Background(), "1", tc.m); !errors.Is(err, ErrInvalidMovement) {
				t.Fatalf("expected ErrInvalidMovement, got %v", err)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := mock_interfaces.NewMockIProductService(ctrl)
		uc := NewProductUseCase(svc)
		m := entities.StockMovement{Type: entities.MovementSaida, Quantity: 3}

		svc.EXPECT().MoveStock(gomock.Any(), "1", m).Return(entities.StockMovement{ID: "mv1", Type: m.Type, Quantity: 3}, nil)

		res, err := uc.MoveStock(context.Background(), "1", m)
		if err != nil || res.ID != "mv1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("invalid product id", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		if _, err := uc.MoveStock(context.Background(), "", entities.StockMovement{}); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})
}

func TestProductUseCase_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock_interfaces.NewMockIProductService(ctrl)
	uc := NewProductUseCase(svc)

	svc.EXPECT().Categories(gomock.Any()).Return(nil, nil)
	svc.EXPECT().Alerts(gomock.Any()).Return(nil, nil)

	cats, err := uc.Categories(context.Background())
	if err != nil || cats == nil {
		t.Fatalf("expected empty categories, got err=%v", err)
	}
	alerts, err := uc.Alerts(context.Background())
	if err != nil || alerts == nil {
		t.Fatalf("expected empty alerts, got err=%v", err)
	}
	if _, err := uc.CreateCategory(context.Background(), entities.Category{}); !errors.Is(err, ErrInvalidCategoryInput) {
		t.Fatalf("expected ErrInvalidCategoryInput, got %v", err)
	}
}
