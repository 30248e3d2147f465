// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
)

func newMatcher() *ReconcileService {
	return NewReconcileService(nil, nil, nil, nil)
}

func TestMatchByEmailLocalPart(t *testing.T) {
	rs := newMatcher()
	candidates := []model.NewHire{
		{NewHireId: "nh-1", FirstName: "Jane", LastName: "Doe"},
		{NewHireId: "nh-2", FirstName: "Bob", LastName: "Smith"},
	}

	result := rs.Match("jane.doe@example.com", "", candidates)

	require.Equal(t, MatchConfident, result.Confidence)
	assert.Equal(t, "nh-1", result.NewHire.NewHireId)
	assert.Equal(t, 1, result.Rule)
}

func TestMatchByExactDisplayName(t *testing.T) {
	rs := newMatcher()
	candidates := []model.NewHire{
		{NewHireId: "nh-1", FirstName: "Jane", LastName: "Doe"},
	}

	result := rs.Match("jd42@example.com", "Jane Doe", candidates)

	require.Equal(t, MatchConfident, result.Confidence)
	assert.Equal(t, "nh-1", result.NewHire.NewHireId)
	assert.Equal(t, 2, result.Rule)
}

func TestMatchByDisplayNameContains(t *testing.T) {
	rs := newMatcher()
	candidates := []model.NewHire{
		{NewHireId: "nh-1", FirstName: "Jane", LastName: "Doe"},
	}

	result := rs.Match("jd42@example.com", "Dr. Jane Doe, RN", candidates)

	require.Equal(t, MatchConfident, result.Confidence)
	assert.Equal(t, 3, result.Rule)
}

func TestMatchAmbiguousFailsClosed(t *testing.T) {
	rs := newMatcher()
	candidates := []model.NewHire{
		{NewHireId: "nh-1", FirstName: "Jane", LastName: "Doe"},
		{NewHireId: "nh-2", FirstName: "Jane", LastName: "Doe"},
	}

	result := rs.Match("jane.doe@example.com", "Jane Doe", candidates)

	assert.Equal(t, MatchAmbiguous, result.Confidence)
	assert.Nil(t, result.NewHire)
	assert.Equal(t, 1, result.Rule)
}

func TestMatchNone(t *testing.T) {
	rs := newMatcher()
	candidates := []model.NewHire{
		{NewHireId: "nh-1", FirstName: "Jane", LastName: "Doe"},
	}

	result := rs.Match("someone@example.com", "Someone Else", candidates)

	assert.Equal(t, MatchNone, result.Confidence)
	assert.Nil(t, result.NewHire)
}

func TestMatchIgnoresEmptyNames(t *testing.T) {
	rs := newMatcher()
	candidates := []model.NewHire{
		{NewHireId: "nh-1", FirstName: "", LastName: "Doe"},
	}

	// an empty first name must not turn Contains into a wildcard
	result := rs.Match("doe@example.com", "", candidates)

	assert.Equal(t, MatchNone, result.Confidence)
}

func TestMatchNoCandidates(t *testing.T) {
	rs := newMatcher()

	result := rs.Match("jane.doe@example.com", "Jane Doe", nil)

	assert.Equal(t, MatchNone, result.Confidence)
}

func TestTransferableStatus(t *testing.T) {
	assert.False(t, transferableStatus(model.DocStatusNotStarted))
	assert.True(t, transferableStatus(model.DocStatusViewed))
	assert.True(t, transferableStatus(model.DocStatusStarted))
	assert.True(t, transferableStatus(model.DocStatusCompleted))
	assert.False(t, transferableStatus("bogus"))
}
