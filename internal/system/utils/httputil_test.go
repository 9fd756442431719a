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

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/reenboog/touchid/internal/system/error/apierror"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

type sampleBody struct {
	Token *string `json:"token"`
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	testCases := []struct {
		name      string
		body      string
		expectErr bool
		token     *string
	}{
		{"ValidToken", `{"token":"abc"}`, false, strPtr("abc")},
		{"EmptyToken", `{"token":""}`, false, strPtr("")},
		{"MissingToken", `{}`, false, nil},
		{"NullToken", `{"token":null}`, false, nil},
		{"MalformedJSON", `{"token":`, true, nil},
		{"WrongType", `{"token":42}`, true, nil},
		{"EmptyBody", ``, true, nil},
		{"TrailingWhitespace", "{\"token\":\"abc\"}\n  ", false, strPtr("abc")},
		{"TrailingGarbage", `{"token":"a"} x`, true, nil},
		{"SecondValue", `{"token":"a"}{"token":"b"}`, true, nil},
		{"TrailingNumber", `{"token":"a"}5`, true, nil},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/lock/a", strings.NewReader(tc.body))
			result, err := DecodeJSONBody[sampleBody](httptest.NewRecorder(), req)
			if tc.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.token, result.Token)
		})
	}
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyNoBody() {
	req := httptest.NewRequest(http.MethodPost, "/lock/a", nil)
	result, err := DecodeJSONBody[sampleBody](httptest.NewRecorder(), req)

	assert.ErrorIs(suite.T(), err, errEmptyBody)
	assert.Nil(suite.T(), result)
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyTrailingDataIsSyntaxError() {
	req := httptest.NewRequest(http.MethodPost, "/lock/a", strings.NewReader(`{"token":"a"}{"token":"b"}`))
	result, err := DecodeJSONBody[sampleBody](httptest.NewRecorder(), req)

	assert.ErrorIs(suite.T(), err, errTrailingData)
	assert.Nil(suite.T(), result)
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyTooLarge() {
	body := `{"token":"` + strings.Repeat("a", MaxRequestBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/lock/a", strings.NewReader(body))
	result, err := DecodeJSONBody[sampleBody](httptest.NewRecorder(), req)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(suite.T(), err, &maxBytesErr)
	assert.Nil(suite.T(), result)
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBodyTrailingDataOverLimit() {
	body := `{"token":"a"}` + strings.Repeat(" ", MaxRequestBodySize) + "x"
	req := httptest.NewRequest(http.MethodPost, "/lock/a", strings.NewReader(body))
	result, err := DecodeJSONBody[sampleBody](httptest.NewRecorder(), req)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(suite.T(), err, &maxBytesErr)
	assert.Nil(suite.T(), result)
}

func (suite *HTTPUtilTestSuite) TestWriteJSONError() {
	rr := httptest.NewRecorder()

	WriteJSONError(rr, "LCK-1003", "Lock not found", "No lock exists for the given id",
		http.StatusGone, []map[string]string{{"Cache-Control": "no-store"}})

	assert.Equal(suite.T(), http.StatusGone, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "no-store", rr.Header().Get("Cache-Control"))

	var resp apierror.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(suite.T(), "LCK-1003", resp.Code)
	assert.Equal(suite.T(), "Lock not found", resp.Message)
	assert.Equal(suite.T(), "No lock exists for the given id", resp.Description)
}

func strPtr(s string) *string {
	return &s
}
