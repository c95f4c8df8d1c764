// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools

// Package tools pins the code generators run by go generate, e.g. the
// counterfeiter fakes of content.Index, content.Source, source.Git and
// writers.Writer.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
