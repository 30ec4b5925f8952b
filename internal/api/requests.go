// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import (
	"github.com/tomtom215/mediarec/internal/recommend"
)

// RecommendRequest is the recommendation query, from either the GET query
// string or the POST JSON body. Field errors are reported by json name.
//
// MinScore has no upper bound because corpora differ in score scale.
// K has an upper bound from configuration (recommend.max_k), which is
// checked by the handler after struct validation.
type RecommendRequest struct {
	Title     string   `json:"title" validate:"required,notblank,max=500"`
	K         *int     `json:"k,omitempty" validate:"omitempty,min=1"`
	Types     []string `json:"type,omitempty" validate:"omitempty,max=50,dive,max=200"`
	Countries []string `json:"country,omitempty" validate:"omitempty,max=50,dive,max=200"`
	Genres    []string `json:"genres,omitempty" validate:"omitempty,max=50,dive,max=200"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,max=50,dive,max=200"`
	MinScore  *float64 `json:"min_score,omitempty" validate:"omitempty,gte=0"`
	YearFrom  *int     `json:"year_from,omitempty" validate:"omitempty,gte=0,lte=9999"`
	YearTo    *int     `json:"year_to,omitempty" validate:"omitempty,gte=0,lte=9999"`
	MaxRating string   `json:"max_rating,omitempty" validate:"omitempty,max=100"`
	Explain   bool     `json:"explain,omitempty"`
}

// Query converts the request to a service query. A nil K becomes zero,
// which the service replaces with its default.
func (req *RecommendRequest) Query() recommend.Query {
	q := recommend.Query{
		Title: req.Title,
		Filters: recommend.FilterCriteria{
			Types:     req.Types,
			Countries: req.Countries,
			Genres:    req.Genres,
			Tags:      req.Tags,
			MinScore:  req.MinScore,
			YearFrom:  req.YearFrom,
			YearTo:    req.YearTo,
			MaxRating: req.MaxRating,
		},
		Explain: req.Explain,
	}
	if req.K != nil {
		q.K = *req.K
	}
	return q
}

// TitlesRequest is the query for GET /titles. With Q set it is an
// autocomplete lookup; otherwise a page of the sorted title list.
type TitlesRequest struct {
	Q      string `json:"q" validate:"max=200"`
	Limit  int    `json:"limit" validate:"min=1,max=1000"`
	Offset int    `json:"offset" validate:"min=0"`
}
