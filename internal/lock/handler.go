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
	"encoding/json"
	"errors"
	"net/http"

	serverconst "github.com/reenboog/touchid/internal/system/constants"
	"github.com/reenboog/touchid/internal/system/error/serviceerror"
	"github.com/reenboog/touchid/internal/system/log"
	sysutils "github.com/reenboog/touchid/internal/system/utils"
)

const handlerLoggerComponentName = "LockHandler"

// lockHandler is the handler for lock operations.
type lockHandler struct {
	lockService LockServiceInterface
}

// newLockHandler creates a new instance of lockHandler.
func newLockHandler(lockService LockServiceInterface) *lockHandler {
	return &lockHandler{
		lockService: lockService,
	}
}

// HandleLockRequest handles the lock request. The token in the body is stored under the path id.
func (lh *lockHandler) HandleLockRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	lockRequest, err := sysutils.DecodeJSONBody[LockRequest](w, r)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			lh.handleError(w, logger, &ErrorRequestTooLarge)
			return
		}
		if errors.As(err, &typeErr) {
			lh.handleError(w, logger, &ErrorInvalidToken)
			return
		}
		lh.handleError(w, logger, &ErrorInvalidRequestFormat)
		return
	}
	if lockRequest.Token == nil {
		lh.handleError(w, logger, &ErrorInvalidToken)
		return
	}

	if svcErr := lh.lockService.Lock(r.Context(), r.PathValue("id"), *lockRequest.Token); svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleUnlockRequest handles the unlock request. The token held under the path id is returned and removed.
func (lh *lockHandler) HandleUnlockRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	lock, svcErr := lh.lockService.Unlock(r.Context(), r.PathValue("id"))
	if svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(lock); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		return
	}
}

// HandlePurgeRequest handles the purge request. Every lock is removed.
func (lh *lockHandler) HandlePurgeRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	if svcErr := lh.lockService.Purge(r.Context()); svcErr != nil {
		lh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleError writes the HTTP response for a service error.
func (lh *lockHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	if svcErr.Type != serviceerror.ClientErrorType {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusBadRequest
	switch svcErr.Code {
	case ErrorLockNotFound.Code:
		statusCode = http.StatusGone
	case ErrorInvalidToken.Code:
		statusCode = http.StatusUnprocessableEntity
	case ErrorRequestTooLarge.Code:
		statusCode = http.StatusRequestEntityTooLarge
	}

	sysutils.WriteJSONError(w, svcErr.Code, svcErr.Error, svcErr.ErrorDescription, statusCode, nil)
}
