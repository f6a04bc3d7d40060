package handlers

import (
	"context"
	"errors"
	"net/http"

	"assistec/internal/infrastructure/httpclient"
	"assistec/internal/usecase"
	"assistec/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errInvalidJSON    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Corpo da requisição inválido", http.StatusBadRequest)
)

// domainMapper maps use case sentinels to an AppError; nil falls through to
// the shared mapping.
type domainMapper func(error) *pkg.AppError

// respondError renders err. Backend failures keep the upstream status and
// the server message; network failures become 502.
func respondError(c *gin.Context, err error, mappers ...domainMapper) {
	appErr := mapError(err, mappers...)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error, mappers ...domainMapper) *pkg.AppError {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return pkg.NewDomainError("VALIDATION_ERROR", "Dados inválidos", err, http.StatusBadRequest).WithDetails(vErr.Fields)
	}
	for _, m := range mappers {
		if appErr := m(err); appErr != nil {
			return appErr
		}
	}

	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Invalid() {
			return pkg.NewDomainError("BACKEND_INVALID_RESPONSE", apiErr.Message, err, http.StatusBadGateway)
		}
		if apiErr.Network() {
			if errors.Is(err, context.DeadlineExceeded) {
				return pkg.NewDomainError("BACKEND_TIMEOUT", apiErr.Message, err, http.StatusGatewayTimeout)
			}
			return pkg.NewDomainError("BACKEND_UNAVAILABLE", apiErr.Message, err, http.StatusBadGateway)
		}
		return pkg.NewDomainError("BACKEND_ERROR", apiErr.Message, err, apiErr.Status).WithDetails(apiErr.Details)
	}
	if errors.Is(err, usecase.ErrAuthNotConfigured) {
		return pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Autenticação não configurada", http.StatusServiceUnavailable)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
}

// sentinel builds a mapper for a fixed set of sentinels.
func sentinel(err error, code, message string, status int) domainMapper {
	return func(got error) *pkg.AppError {
		if errors.Is(got, err) {
			return pkg.NewDomainErrorSimple(code, message, status)
		}
		return nil
	}
}

func badJSON(c *gin.Context) {
	c.JSON(errInvalidJSON.HTTPStatus, errInvalidJSON.ToHTTPError())
}
