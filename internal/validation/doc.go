// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

/*
Package validation provides struct validation using go-playground/validator v10.

It wraps a thread-safe singleton validator configured with
WithRequiredStructEnabled, json-tag field names and a custom notblank rule,
and translates failures into the API's VALIDATION_FAILED error shape.

# Usage

	type RecommendRequest struct {
	    Title string `json:"title" validate:"required,notblank"`
	    K     int    `json:"k" validate:"min=1,max=20"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	    return
	}

Rules that depend on runtime configuration or span fields, such as an upper
bound on k taken from config, are checked by the caller and reported with
NewRequestValidationError so clients see one error format.

# Custom Validators

  - notblank: string is non-empty after trimming whitespace
*/
package validation
