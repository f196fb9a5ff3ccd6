// Copyright 2025 Naren Yellavula
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

// dateutil.go
// Placeholder layouts follow https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"strings"
	"time"
)

/*
	Formats:

	MMM  - month (Jan)
	MM   - month (01)
	DD   - day (02)
	DDD  - day (Mon)
	YYYY - year (2006)
	hh   - hours (15)
	mm   - minutes (04)
	ss   - seconds (05)
*/

type placeholder struct{ find, subst string }

// Longer tokens come first so "MMM" is not read as "MM" + "M"
var placeholders = []placeholder{
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"YYYY", "2006"},
	{"DDD", "Mon"},
	{"DD", "02"},
}

var (
	StampTimeFormat     = "hh:mm:ss"
	StampDateTimeFormat = "DDD DD MMM hh:mm"
)

func translateLayout(format string) string {
	out := format
	for _, ph := range placeholders {
		out = strings.ReplaceAll(out, ph.find, ph.subst)
	}
	return out
}

// formatStamp formats date with the placeholder layout above
func formatStamp(format string, date time.Time) string {
	if format == "" {
		format = StampTimeFormat
	}
	return date.Format(translateLayout(format))
}

// iterationStamp labels a saved iteration: time only for today, date and
// time otherwise.
func iterationStamp(saved, now time.Time) string {
	if saved.IsZero() {
		return ""
	}
	sy, sm, sd := saved.Date()
	ny, nm, nd := now.Date()
	if sy == ny && sm == nm && sd == nd {
		return formatStamp(StampTimeFormat, saved)
	}
	return formatStamp(StampDateTimeFormat, saved)
}
