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

package lock

import (
	"errors"

	"github.com/reenboog/touchid/internal/system/error/serviceerror"
)

// Client errors for lock operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body is not valid JSON.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LCK-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or is not a JSON object",
	}
	// ErrorInvalidToken is the error returned when the request body carries no string token.
	ErrorInvalidToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LCK-1002",
		Error:            "Invalid token",
		ErrorDescription: "The request body must contain a string token",
	}
	// ErrorLockNotFound is the error returned when no lock exists for the id.
	ErrorLockNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LCK-1003",
		Error:            "Lock not found",
		ErrorDescription: "No lock exists for the given id",
	}
	// ErrorInvalidLockID is the error returned when the lock id is empty or too long.
	ErrorInvalidLockID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LCK-1004",
		Error:            "Invalid lock id",
		ErrorDescription: "The lock id must be valid UTF-8 between 1 and 255 characters",
	}
	// ErrorRequestTooLarge is the error returned when the request body exceeds the size limit.
	ErrorRequestTooLarge = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "LCK-1005",
		Error:            "Request body too large",
		ErrorDescription: "The request body must not exceed 1 MiB",
	}
)

// Server errors for lock operations.
var (
	// ErrorInternalServerError is the error returned when the lock store fails.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "LCK-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// errLockNotFound is returned by the stores when no record exists for an id.
var errLockNotFound = errors.New("lock not found")
