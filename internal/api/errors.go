// Mediarec - Content-Based Media Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediarec

package api

import "errors"

// ErrNilService is returned by AttachService when no service is given.
var ErrNilService = errors.New("recommendation service is nil")
