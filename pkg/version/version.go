// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version of navforge, set at build time with
// -ldflags "-X github.com/gardener/navforge/pkg/version.Version=<version>"
var Version = "binary was not built properly"
