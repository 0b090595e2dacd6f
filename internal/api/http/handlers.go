package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/syslocale/domainpbn/internal/database"
	"github.com/syslocale/domainpbn/internal/service"
	"github.com/syslocale/domainpbn/pkg/response"
)

// handleRoot reports the API name and version.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{
		"message": "DomainPBN API",
		"version": "1.0",
	})
}

// bindRequest decodes and validates a JSON request body. On failure it
// writes the error response and reports false.
func bindRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, req any) bool {
	if err := render.DecodeJSON(r.Body, req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.EmptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.BadRequestResponse)
		return false
	}

	if err := validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationErrorResponse(err))
		return false
	}

	return true
}

// renderServiceError maps a service error onto the envelope: ErrNotFound
// becomes 404, anything else is logged and becomes 500.
func renderServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, database.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.ResourceNotFoundResponse)
		return
	}

	httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.ServerErrorResponse)
}

// queryInt parses an optional integer query parameter. It reports whether
// the parameter was present and an error when it isn't an integer.
func queryInt(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("must be an integer")
	}

	return n, true, nil
}

// parsePagination validates the page and limit parameters against the
// boundary rules: page >= 1, 1 <= limit <= maxLimit. On failure it writes
// the error response and reports false.
func parsePagination(w http.ResponseWriter, r *http.Request, maxLimit int) (page, limit int, ok bool) {
	page, present, err := queryInt(r, "page")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.QueryParamErrorResponse("page", "Must be an integer."))
		return 0, 0, false
	}
	if present && page < 1 {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.QueryParamErrorResponse("page", "Must be greater than or equal to 1."))
		return 0, 0, false
	}

	limit, present, err = queryInt(r, "limit")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.QueryParamErrorResponse("limit", "Must be an integer."))
		return 0, 0, false
	}
	if present && (limit < 1 || limit > maxLimit) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.QueryParamErrorResponse("limit",
			fmt.Sprintf("Must be between 1 and %d.", maxLimit)))
		return 0, 0, false
	}

	return page, limit, true
}

// parseListingParams validates and assembles the shared listing parameters
// (min_dr, max_price, sort_by, page, limit). On failure it writes the
// error response and reports false.
func parseListingParams(w http.ResponseWriter, r *http.Request) (service.ListingParams, bool) {
	var p service.ListingParams

	minScore, _, err := queryInt(r, "min_dr")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.QueryParamErrorResponse("min_dr", "Must be an integer."))
		return p, false
	}

	maxPrice, _, err := queryInt(r, "max_price")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.QueryParamErrorResponse("max_price", "Must be an integer."))
		return p, false
	}

	page, limit, ok := parsePagination(w, r, service.MaxLimit)
	if !ok {
		return p, false
	}

	p.MinScore = minScore
	p.MaxPrice = maxPrice
	p.SortBy = r.URL.Query().Get("sort_by")
	p.Page = page
	p.Limit = limit

	return p, true
}
