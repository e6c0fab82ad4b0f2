package servers

import (
	"fmt"
	"net/http"

	"marketplace/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/v1/verifications)
	CreateApplication(ctx echo.Context, params ActorParams) error
	// (GET /api/v1/verifications/statistics)
	GetVerificationStatistics(ctx echo.Context) error
	// (GET /api/v1/verifications/queue)
	ListReviewQueue(ctx echo.Context, params ListReviewQueueParams) error
	// (GET /api/v1/verifications/{id})
	GetApplication(ctx echo.Context, id openapi_types.UUID) error
	// (POST /api/v1/verifications/{id}/submit)
	SubmitApplication(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/verifications/{id}/assign)
	AssignReviewer(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (PUT /api/v1/verifications/{id}/documents/{documentId})
	ReviewDocument(ctx echo.Context, id openapi_types.UUID, documentId openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/verifications/{id}/review)
	DecideApplication(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/verifications/{id}/request-info)
	RequestAdditionalInfo(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/verifications/{id}/info-requests/{requestId}/resolve)
	ResolveInfoRequest(ctx echo.Context, id openapi_types.UUID, requestId openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/verifications/{id}/suspend)
	SuspendApplication(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context, params ActorParams) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /api/v1/orders/{id}/status)
	AdvanceOrder(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (PUT /api/v1/orders/{id}/assign)
	AssignDeliveryPerson(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (GET /api/v1/audit/{entityType}/{entityId})
	GetAuditTrail(ctx echo.Context, entityType string, entityId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindActor(ctx echo.Context) (ActorParams, error) {
	var params ActorParams
	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-Actor-ID")]
	if !found {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor-ID is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
	}
	err := runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &params.XActorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
	}
	return params, nil
}

// CreateApplication converts echo context to params.
func (w *ServerInterfaceWrapper) CreateApplication(ctx echo.Context) error {
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateApplication(ctx, params)
}

// GetVerificationStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetVerificationStatistics(ctx echo.Context) error {
	return w.Handler.GetVerificationStatistics(ctx)
}

// ListReviewQueue converts echo context to params.
func (w *ServerInterfaceWrapper) ListReviewQueue(ctx echo.Context) error {
	var params ListReviewQueueParams
	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	return w.Handler.ListReviewQueue(ctx, params)
}

// GetApplication converts echo context to params.
func (w *ServerInterfaceWrapper) GetApplication(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetApplication(ctx, id)
}

// SubmitApplication converts echo context to params.
func (w *ServerInterfaceWrapper) SubmitApplication(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SubmitApplication(ctx, id, params)
}

// AssignReviewer converts echo context to params.
func (w *ServerInterfaceWrapper) AssignReviewer(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignReviewer(ctx, id, params)
}

// ReviewDocument converts echo context to params.
func (w *ServerInterfaceWrapper) ReviewDocument(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	documentId, err := bindPathUUID(ctx, "documentId")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReviewDocument(ctx, id, documentId, params)
}

// DecideApplication converts echo context to params.
func (w *ServerInterfaceWrapper) DecideApplication(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DecideApplication(ctx, id, params)
}

// RequestAdditionalInfo converts echo context to params.
func (w *ServerInterfaceWrapper) RequestAdditionalInfo(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RequestAdditionalInfo(ctx, id, params)
}

// ResolveInfoRequest converts echo context to params.
func (w *ServerInterfaceWrapper) ResolveInfoRequest(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	requestId, err := bindPathUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ResolveInfoRequest(ctx, id, requestId, params)
}

// SuspendApplication converts echo context to params.
func (w *ServerInterfaceWrapper) SuspendApplication(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SuspendApplication(ctx, id, params)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PlaceOrder(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

// AdvanceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrder(ctx, id, params)
}

// AssignDeliveryPerson converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDeliveryPerson(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignDeliveryPerson(ctx, id, params)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	params, err := bindActor(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id, params)
}

// GetAuditTrail converts echo context to params.
func (w *ServerInterfaceWrapper) GetAuditTrail(ctx echo.Context) error {
	var entityType string
	err := runtime.BindStyledParameterWithOptions("simple", "entityType", ctx.Param("entityType"), &entityType,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter entityType: %s", err))
	}
	entityId, err := bindPathUUID(ctx, "entityId")
	if err != nil {
		return err
	}
	return w.Handler.GetAuditTrail(ctx, entityType, entityId)
}

// EchoRouter is the part of *echo.Echo and *echo.Group handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/verifications", wrapper.CreateApplication)
	router.GET(baseURL+"/api/v1/verifications/statistics", wrapper.GetVerificationStatistics)
	router.GET(baseURL+"/api/v1/verifications/queue", wrapper.ListReviewQueue)
	router.GET(baseURL+"/api/v1/verifications/:id", wrapper.GetApplication)
	router.POST(baseURL+"/api/v1/verifications/:id/submit", wrapper.SubmitApplication)
	router.POST(baseURL+"/api/v1/verifications/:id/assign", wrapper.AssignReviewer)
	router.PUT(baseURL+"/api/v1/verifications/:id/documents/:documentId", wrapper.ReviewDocument)
	router.POST(baseURL+"/api/v1/verifications/:id/review", wrapper.DecideApplication)
	router.POST(baseURL+"/api/v1/verifications/:id/request-info", wrapper.RequestAdditionalInfo)
	router.POST(baseURL+"/api/v1/verifications/:id/info-requests/:requestId/resolve", wrapper.ResolveInfoRequest)
	router.POST(baseURL+"/api/v1/verifications/:id/suspend", wrapper.SuspendApplication)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/status", wrapper.AdvanceOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/assign", wrapper.AssignDeliveryPerson)
	router.POST(baseURL+"/api/v1/orders/:id/cancel", wrapper.CancelOrder)
	router.GET(baseURL+"/api/v1/audit/:entityType/:entityId", wrapper.GetAuditTrail)
}

// GetSwagger returns the parsed OpenAPI document the routes above implement.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
}
