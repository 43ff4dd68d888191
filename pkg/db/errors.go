/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package db

import "errors"

var (

	// Core database errors.

	ErrDatabaseError = errors.New("database error")
	ErrNotFound      = errors.New("record not found")

	// Operation errors.

	ErrFailedToScan   = errors.New("failed to scan")
	ErrFailedToQuery  = errors.New("failed to query")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToUpdate = errors.New("failed to update")
	ErrFailedToDelete = errors.New("failed to delete")
	ErrFailedToInit   = errors.New("failed to initialize schema")
	ErrFailedOpenDB   = errors.New("failed to open database")

	// Connection settings.

	ErrHostRequired  = errors.New("database host is required")
	ErrTLSDisabled   = errors.New("tls is configured but sslmode=disable")
	ErrTLSIncomplete = errors.New("tls requires cert_file, key_file and ca_file")

	// Record validation.

	ErrIPAddressRequired  = errors.New("device ip address is required")
	ErrDeviceTypeRequired = errors.New("device type is required")
	ErrSiteNameRequired   = errors.New("site name is required")
	ErrInvalidStatus      = errors.New("invalid device status")
	ErrInvalidSeverity    = errors.New("invalid alert severity")
	ErrDeviceIDRequired   = errors.New("device id is required")
	ErrMACRequired        = errors.New("old and new mac addresses are required")
	ErrInterfaceNil       = errors.New("interface is nil")
	ErrStatNil            = errors.New("interface stat is nil")
)

// IsValidationError reports whether err was caused by a rejected record
// rather than by the database itself.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrIPAddressRequired, ErrDeviceTypeRequired, ErrSiteNameRequired, ErrInvalidStatus,
		ErrInvalidSeverity, ErrDeviceIDRequired, ErrMACRequired, ErrInterfaceNil, ErrStatNil,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
