package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hydronet/builder"
	"github.com/katalvlaran/hydronet/core"
	"github.com/katalvlaran/hydronet/planner"
)

// MIMEGeoJSON is the media type of /routes/geojson replies.
const MIMEGeoJSON = "application/geo+json"

// CustomValidator plugs validator/v10 into echo.Context.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Handler exposes a Planner over HTTP.
type Handler struct {
	planner *planner.Planner
	logger  *slog.Logger
}

func NewHandler(p *planner.Planner, logger *slog.Logger) *Handler {
	return &Handler{planner: p, logger: logger}
}

// RegisterRoutes mounts the handler on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/regions", h.Regions)
	e.GET("/critical-points", h.CriticalPoints)
	e.POST("/mst", h.RegionalMST)
	e.GET("/routes", h.Routes)
	e.GET("/routes/geojson", h.RoutesGeoJSON)
}

type healthData struct {
	Status         string `json:"status"`
	Regions        int    `json:"regions"`
	CriticalPoints int    `json:"critical_points"`
}

func (h *Handler) Health(c echo.Context) error {
	return success(c, http.StatusOK, healthData{
		Status:         "ok",
		Regions:        len(h.planner.Regions()),
		CriticalPoints: len(h.planner.CriticalPoints()),
	}, "")
}

func (h *Handler) Regions(c echo.Context) error {
	return success(c, http.StatusOK, h.planner.Regions(), "")
}

type pointData struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Region string          `json:"region,omitempty"`
	At     core.Coordinate `json:"at"`
}

func (h *Handler) CriticalPoints(c echo.Context) error {
	points := h.planner.CriticalPoints()
	out := make([]pointData, len(points))
	for i, p := range points {
		out[i] = pointData{ID: p.ID, Label: p.Label, Region: p.Region, At: p.Coordinate()}
	}

	return success(c, http.StatusOK, out, "")
}

// MSTRequest is the body of POST /mst.
type MSTRequest struct {
	Region string `json:"region" validate:"required"`
}

func (h *Handler) RegionalMST(c echo.Context) error {
	var req MSTRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, CodeInvalidInput, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, CodeValidation, err.Error())
	}

	plan, err := h.planner.Regional(c.Request().Context(), req.Region)
	if err != nil {
		return h.planError(c, err)
	}
	if !plan.Found {
		return success(c, http.StatusOK, plan, "Region has fewer than two records")
	}

	return success(c, http.StatusOK, plan, "")
}

// routeQuery holds the query string of /routes. Either Point or both Lat
// and Lon must be given.
type routeQuery struct {
	Point         string
	Lat, Lon      float64
	HasCoordinate bool
	Params        planner.Params
}

func bindRouteQuery(c echo.Context) (routeQuery, error) {
	var q routeQuery
	err := echo.QueryParamsBinder(c).
		String("point", &q.Point).
		Float64("lat", &q.Lat).
		Float64("lon", &q.Lon).
		Float64("maxDistanceKm", &q.Params.MaxDistanceKm).
		Int("maxNeighbors", &q.Params.MaxNeighbors).
		Float64("routeCapKm", &q.Params.RouteCapKm).
		Float64("toleranceKm", &q.Params.ToleranceKm).
		BindError()
	if err != nil {
		return q, err
	}

	hasLat, hasLon := c.QueryParam("lat") != "", c.QueryParam("lon") != ""
	q.HasCoordinate = hasLat && hasLon
	switch {
	case q.Point != "" && (hasLat || hasLon):
		return q, errors.New("give either point or lat/lon, not both")
	case q.Point == "" && !q.HasCoordinate:
		return q, errors.New("point or lat/lon is required")
	}

	return q, nil
}

// plan resolves the route query. On failure it writes the error response
// itself and returns a nil plan with the write error.
func (h *Handler) plan(c echo.Context) (*planner.RoutePlan, error) {
	q, err := bindRouteQuery(c)
	if err != nil {
		return nil, badRequest(c, CodeInvalidParameter, err.Error())
	}

	ctx := c.Request().Context()
	var plan *planner.RoutePlan
	if q.HasCoordinate {
		plan, err = h.planner.Locate(ctx, core.Coordinate{Latitude: q.Lat, Longitude: q.Lon}, q.Params)
	} else {
		plan, err = h.planner.Routes(ctx, q.Point, q.Params)
	}
	if err != nil {
		return nil, h.planError(c, err)
	}

	return plan, nil
}

func (h *Handler) Routes(c echo.Context) error {
	plan, err := h.plan(c)
	if plan == nil {
		return err
	}

	return success(c, http.StatusOK, plan, "")
}

func (h *Handler) RoutesGeoJSON(c echo.Context) error {
	plan, err := h.plan(c)
	if plan == nil {
		return err
	}

	body, err := json.Marshal(plan.GeoJSON())
	if err != nil {
		h.logger.Error("encode geojson", slog.Any("error", err))

		return internalError(c)
	}

	return c.Blob(http.StatusOK, MIMEGeoJSON, body)
}

// planError writes the response for a planner error.
func (h *Handler) planError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, planner.ErrPointNotFound):
		return notFound(c, CodePointNotFound, err.Error())
	case errors.Is(err, planner.ErrBadParams),
		errors.Is(err, core.ErrBadCoordinate),
		errors.Is(err, builder.ErrEmptyRegion):
		return badRequest(c, CodeInvalidParameter, err.Error())
	default:
		h.logger.Error("plan failed", slog.Any("error", err))

		return internalError(c)
	}
}
