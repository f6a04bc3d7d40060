package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"assistec/internal/domain/entities"
	mock_interfaces "assistec/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestComputeOrderTotals(t *testing.T) {
	cases := []struct {
		name  string
		order entities.ServiceOrder
		parts float64
		svc   float64
		total float64
	}{
		{name: "empty", order: entities.ServiceOrder{}, total: 0},
		{
			name: "parts services labour discount",
			order: entities.ServiceOrder{
				Parts:     []entities.OrderPart{{Quantity: 2, UnitPrice: 10.5}, {Quantity: 1, UnitPrice: 0.1}},
				Services:  []entities.OrderService{{Description: "Limpeza", Price: 30}},
				LaborCost: 50,
				Discount:  10,
			},
			parts: 21.1, svc: 30, total: 91.1,
		},
		{
			name:  "discount larger than total floors at zero",
			order: entities.ServiceOrder{LaborCost: 20, Discount: 50},
			total: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeOrderTotals(tc.order)
			if got.PartsTotal != tc.parts || got.ServicesTotal != tc.svc || got.Total != tc.total {
				t.Fatalf("unexpected totals: parts=%v services=%v total=%v", got.PartsTotal, got.ServicesTotal, got.Total)
			}
		})
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{Priority: "máxima"})
		var verr *ValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrInvalidOrderInput) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(verr.Fields) != 4 {
			t.Fatalf("expected 4 field errors, got %+v", verr.Fields)
		}
	})

	t.Run("defaults and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Status != entities.OrderStatusAguardando || o.Priority != entities.OrderPriorityNormal {
					t.Fatalf("expected defaults, got %s/%s", o.Status, o.Priority)
				}
				if o.Total != 120 || o.Parts == nil || o.Services == nil {
					t.Fatalf("unexpected order: %+v", o)
				}
				o.ID = "55"
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.ServiceOrder{
			CustomerID:     "1",
			Equipment:      " Notebook ",
			ReportedDefect: "Não liga",
			LaborCost:      120,
		})
		if err != nil || res.ID != "55" || res.Equipment != "Notebook" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "1", entities.StatusChange{Status: "perdido"}, false)
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("pronto notifies through twilio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		sender := mock_interfaces.NewMockINotificationSender(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, sender)

		orders.EXPECT().UpdateStatus(gomock.Any(), "9", entities.StatusChange{Status: entities.OrderStatusPronto, Note: "ok"}).
			Return(entities.ServiceOrder{ID: "9", Number: "OS-9", CustomerName: "Ana Souza", CustomerPhone: "11999990000", Equipment: "Notebook", Total: 150}, nil)
		sender.EXPECT().SendWhatsApp(gomock.Any(), "11999990000", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, body string) (string, error) {
				if !strings.Contains(body, "Olá, Ana!") || !strings.Contains(body, "OS-9") || !strings.Contains(body, "150.00") {
					t.Fatalf("unexpected message: %s", body)
				}
				return "SM1", nil
			},
		)

		res, err := uc.UpdateStatus(context.Background(), "9", entities.StatusChange{Status: entities.OrderStatusPronto, Note: " ok "}, true)
		if err != nil || res.ID != "9" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("notification failure does not fail the status change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		customers := mock_interfaces.NewMockICustomerService(ctrl)
		whatsapp := mock_interfaces.NewMockIWhatsAppService(ctrl)
		uc := NewOrderUseCase(orders, customers, whatsapp, nil)

		orders.EXPECT().UpdateStatus(gomock.Any(), "9", gomock.Any()).Return(entities.ServiceOrder{ID: "9", CustomerID: "4"}, nil)
		customers.EXPECT().GetByID(gomock.Any(), "4").Return(entities.Customer{ID: "4", Name: "Bia", Phone: "11988887777"}, nil)
		whatsapp.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(errors.New("whatsapp desconectado"))

		if _, err := uc.UpdateStatus(context.Background(), "9", entities.StatusChange{Status: entities.OrderStatusPronto}, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no notification when not requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		sender := mock_interfaces.NewMockINotificationSender(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, sender)

		orders.EXPECT().UpdateStatus(gomock.Any(), "9", gomock.Any()).Return(entities.ServiceOrder{ID: "9", CustomerPhone: "11999990000"}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "9", entities.StatusChange{Status: entities.OrderStatusPronto}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_UploadPhotos(t *testing.T) {
	t.Run("too many photos", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		photos := make([]entities.PhotoUpload, MaxPhotosPerUpload+1)
		_, err := uc.UploadPhotos(context.Background(), "1", photos)
		if !errors.Is(err, ErrInvalidPhotoUpload) {
			t.Fatalf("expected ErrInvalidPhotoUpload, got %v", err)
		}
	})

	t.Run("oversized and non image", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil)
		photos := []entities.PhotoUpload{
			{Filename: "big.jpg", ContentType: "image/jpeg", Data: bytes.Repeat([]byte{1}, MaxPhotoSize+1)},
			{Filename: "notes.txt", Data: []byte("hello")},
		}
		_, err := uc.UploadPhotos(context.Background(), "1", photos)
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 2 {
			t.Fatalf("expected two field errors, got %v", err)
		}
	})

	t.Run("detects content type and uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderService(ctrl)
		uc := NewOrderUseCase(orders, nil, nil, nil)

		orders.EXPECT().UploadPhotos(gomock.Any(), "1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, photos []entities.PhotoUpload) ([]entities.OrderPhoto, error) {
				if len(photos) != 1 || photos[0].ContentType != "image/png" {
					t.Fatalf("unexpected photos: %+v", photos)
				}
				return []entities.OrderPhoto{{ID: "p1", URL: "/uploads/p1.png"}}, nil
			},
		)

		res, err := uc.UploadPhotos(context.Background(), "1", []entities.PhotoUpload{{Filename: "a.png", Data: pngHeader}})
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestOrderUseCase_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderService(ctrl)
	uc := NewOrderUseCase(orders, nil, nil, nil)

	orders.EXPECT().History(gomock.Any(), "1").Return(nil, nil)

	res, err := uc.History(context.Background(), "1")
	if err != nil || res == nil {
		t.Fatalf("expected empty non-nil history, got err=%v res=%v", err, res)
	}
}
