package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"cvnapi/internal/db"
	"cvnapi/internal/metrics"
	"cvnapi/internal/models"
	"cvnapi/internal/validation"
)

// LookupHandler serves the list lookup endpoint.
type LookupHandler struct {
	db *db.DB
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(database *db.DB) *LookupHandler {
	return &LookupHandler{db: database}
}

// Lookup resolves pipe-separated user and page lists against the
// moderation store and emits JSON or, via the callback parameter, JSONP.
// At least one of users/pages must be supplied; a list that matches
// nothing is fine, asking for nothing is a client error.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	users, usersRequested := listParam(c, "users")
	pages, pagesRequested := listParam(c, "pages")
	callback := param(c, "callback")

	// The callback check runs first so an invalid callback can never
	// be reflected, not even into an error response.
	if callback != "" && !validation.ValidateCallback(callback) {
		metrics.RecordLookupRequest("invalid_callback")
		return writeClientError(c, "invalid-callback")
	}

	if !usersRequested && !pagesRequested {
		metrics.RecordLookupRequest("missing_query")
		return writeClientError(c, "missing-query")
	}

	var payload models.LookupResponse
	var warnings []string

	if usersRequested {
		entries, w := h.db.LookupUsers(c.Context(), users)
		payload.Users = entries
		warnings = append(warnings, w...)
	}
	if pagesRequested {
		entries, w := h.db.LookupPages(c.Context(), pages)
		payload.Pages = entries
		warnings = append(warnings, w...)
	}

	lastUpdate, err := h.db.LastModified()
	if err != nil {
		warnings = append(warnings, "Could not determine last modified timestamp.")
	}
	payload.LastUpdate = lastUpdate
	payload.Warnings = warnings

	// CORS, so plain-JSON consumers do not need the callback
	// indirection just to cross origins.
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

	if len(warnings) > 0 {
		// Warning-bearing responses are diagnostic, not representative.
		c.Set(fiber.HeaderCacheControl, "no-cache")
	} else if lastUpdate > 0 {
		setCacheHeaders(c, lastUpdate)
		if notModifiedSince(c, lastUpdate) {
			metrics.RecordLookupRequest("not_modified")
			return c.SendStatus(fiber.StatusNotModified)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	metrics.RecordLookupRequest("ok")

	if callback != "" {
		c.Set(fiber.HeaderContentType, "text/javascript; charset=utf-8")
		return c.SendString(callback + "(" + string(body) + ")")
	}

	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Send(body)
}

// listParam reads a pipe-delimited identifier list. The query string
// wins over a POST form value. The second return distinguishes "absent"
// from "present but matching nothing"; empty segments from stray pipes
// are kept and simply match no row.
func listParam(c fiber.Ctx, key string) ([]string, bool) {
	raw := param(c, key)
	if raw == "" {
		return nil, false
	}
	return strings.Split(raw, "|"), true
}

// param reads a request parameter, query string first, POST form second.
func param(c fiber.Ctx, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.FormValue(key)
}

// writeClientError emits a 400 with a machine-readable error code. The
// body is always plain JSON, never callback-wrapped.
func writeClientError(c fiber.Ctx, code string) error {
	body, err := json.Marshal(models.ErrorResponse{Error: code})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Status(fiber.StatusBadRequest).Send(body)
}
