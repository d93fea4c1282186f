// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package header

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// The two header families are a symmetric pair: each preset recognizes one
// family and substitutes the other. Running both presets over the same tree
// is contradictory and unsupported.

// MITHeader is the short MIT-style block placed by the agpl-to-mit preset.
const MITHeader = `/**
 * Copyright (c) 2019-2025 Mark Sandford
 * Licensed under the MIT License. See LICENSE and NOTICE files.
 */`

// LegacyMITHeader is the older MIT-style block recognized verbatim by the
// mit-to-agpl preset. The trailing whitespace inside is part of the literal.
const LegacyMITHeader = "/**\n" +
	" * CIV.IQ - Civic Information  \n" +
	" * Copyright (c) 2025 CIV.IQ \n" +
	" * Licensed under MIT License\n" +
	" * Built with public government data\n" +
	" */"

// AGPLHeader is the AGPL-style block placed by the mit-to-agpl preset and
// recognized by the agpl-to-mit preset.
const AGPLHeader = `/*
 * CIV.IQ - Civic Information Hub
 * Copyright (C) 2025 Mark Sandford
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program. If not, see <https://www.gnu.org/licenses/>.
 *
 * For commercial licensing inquiries: mark@marksandford.dev
 */`

// 🧲 agplPattern tolerates formatting drift between the fixed anchor
// phrases of the AGPL block.
var agplPattern = regexp.MustCompile(`(?s)/\*\s*\n\s*\*\s*CIV\.IQ.*?\n.*?GNU Affero General Public License.*?\*/\s*\n`)

// DefaultMarkers are the leading directive lines preserved at line 1 when
// a header is inserted into a file that starts with one.
var DefaultMarkers = []string{"'use client'", `"use client"`}

// 🗺️ presets maps preset names to policy constructors. Policies carry a
// lazily compiled matcher, so each lookup returns a fresh value.
var presets = map[string]func() *Policy{
	"agpl-to-mit": func() *Policy {
		return &Policy{
			Name:         "agpl-to-mit",
			OldExact:     AGPLHeader,
			OldPattern:   agplPattern,
			MatchGeneric: true,
			Replacement:  MITHeader,
			Markers:      DefaultMarkers,
		}
	},
	"mit-to-agpl": func() *Policy {
		return &Policy{
			Name:        "mit-to-agpl",
			OldExact:    LegacyMITHeader,
			SkipForeign: true,
			Replacement: AGPLHeader,
		}
	},
}

// 🎯 Preset returns the named built-in policy
func Preset(name string) (*Policy, error) {
	ctor, ok := presets[name]
	if !ok {
		return nil, errors.Errorf("unknown preset: %s", name)
	}
	return ctor(), nil
}

// PresetNames lists the built-in preset names
func PresetNames() []string {
	return []string{"agpl-to-mit", "mit-to-agpl"}
}
