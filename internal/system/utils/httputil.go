/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/reenboog/touchid/internal/system/constants"
	"github.com/reenboog/touchid/internal/system/error/apierror"
	"github.com/reenboog/touchid/internal/system/log"
)

// MaxRequestBodySize bounds the bytes read from a JSON request body.
const MaxRequestBodySize = 1 << 20

var (
	// errEmptyBody is returned when the request carries no body at all.
	errEmptyBody = errors.New("request body is empty")
	// errTrailingData is returned when the body holds anything but whitespace after the JSON value.
	errTrailingData = errors.New("request body has data after the JSON value")
)

// DecodeJSONBody decodes the JSON request body into a new value of type T.
// The body must hold exactly one JSON value. A body over MaxRequestBodySize fails with *http.MaxBytesError.
func DecodeJSONBody[T any](w http.ResponseWriter, r *http.Request) (*T, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, errEmptyBody
	}

	var data T
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodySize))
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyBody
		}
		return nil, err
	}

	var trailing json.RawMessage
	if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, errTrailingData
	}
	return &data, nil
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, message, desc string, statusCode int,
	respHeaders []map[string]string) {
	logger := log.GetLogger()
	logger.Debug("Error in HTTP response", log.String("error", code), log.String("description", desc))

	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(apierror.ErrorResponse{
		Code:        code,
		Message:     message,
		Description: desc,
	})
	if err != nil {
		logger.Error("Failed to write JSON error response", log.Error(err))
		return
	}
}
