// Package backend implements the resource services over the shared
// httpclient. Every failure is returned as an *httpclient.APIError whose
// message is the server's when it sent one, else a Portuguese fallback.
package backend

import (
	"encoding/json"
	"net/url"

	"assistec/internal/domain/entities"
	"assistec/internal/infrastructure/httpclient"
	"assistec/pkg/query"
)

// Services groups every resource service built over one client.
type Services struct {
	Customers *CustomerService
	Orders    *OrderService
	Products  *ProductService
	Finance   *FinanceService
	Backup    *BackupService
	Billing   *BillingService
	WhatsApp  *WhatsAppService
}

func NewServices(c *httpclient.Client) *Services {
	return &Services{
		Customers: NewCustomerService(c),
		Orders:    NewOrderService(c),
		Products:  NewProductService(c),
		Finance:   NewFinanceService(c),
		Backup:    NewBackupService(c),
		Billing:   NewBillingService(c),
		WhatsApp:  NewWhatsAppService(c),
	}
}

func withQuery(path string, filters map[string]any) string {
	return path + query.BuildQuery(query.BuildSafeFilters(filters))
}

func seg(id string) string {
	return url.PathEscape(id)
}

// fetch decodes the unwrapped payload of a JSON call into T.
func fetch[T any](resp *httpclient.Response, err error, fallback string) (T, error) {
	var out T
	if err != nil {
		return out, httpclient.Normalize(err, fallback)
	}
	if err := resp.Decode(&out); err != nil {
		return out, httpclient.InvalidResponse(resp, err, fallback)
	}
	return out, nil
}

// fetchList decodes a list payload, accepting a second "data" envelope
// inside the first. A missing payload is an empty list.
func fetchList[T any](resp *httpclient.Response, err error, fallback string) ([]T, *entities.Pagination, error) {
	if err != nil {
		return nil, nil, httpclient.Normalize(err, fallback)
	}
	items := []T{}
	payload, pg := resp.Payload, resp.Pagination
	if len(payload) > 0 && payload[0] == '{' {
		shape, inner, innerPg := httpclient.Unwrap(payload)
		if shape == httpclient.ShapeEnveloped {
			payload = inner
			if innerPg != nil {
				pg = innerPg
			}
		}
	}
	if len(payload) == 0 {
		return items, pg, nil
	}
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, nil, httpclient.InvalidResponse(resp, err, fallback)
	}
	if items == nil {
		items = []T{}
	}
	return items, pg, nil
}

func fetchPage[T any](resp *httpclient.Response, err error, fallback string) (entities.Page[T], error) {
	items, pg, err := fetchList[T](resp, err, fallback)
	if err != nil {
		return entities.Page[T]{Items: []T{}}, err
	}
	page := entities.Page[T]{Items: items}
	if pg != nil {
		page.Pagination = *pg
	} else {
		page.Pagination = entities.Pagination{Page: 1, Limit: len(items), Total: len(items), TotalPages: 1}
	}
	return page, nil
}
