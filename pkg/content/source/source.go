// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package source

import "fmt"

// ErrResourceNotFound indicated that a resource was not found
type ErrResourceNotFound string

// Error returns "resource r not found" error
func (e ErrResourceNotFound) Error() string {
	return fmt.Sprintf("resource %q not found", string(e))
}
