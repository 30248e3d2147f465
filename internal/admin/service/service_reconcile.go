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
	"strings"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/log"
)

// Match confidence levels returned by the matcher.
const (
	MatchNone      = "none"
	MatchConfident = "confident"
	// MatchAmbiguous means several new hires matched. Automatic transfer
	// refuses to act on it.
	MatchAmbiguous = "ambiguous"
)

// MatchResult is the outcome of running the matching policy against the
// active new-hire set.
type MatchResult struct {
	Confidence string
	NewHire    *model.NewHire
	// Rule is the 1-based index of the policy rule that fired.
	Rule int
}

type ReconcileService struct {
	ctx          *ctx.Context
	userRepo     repo.IUserRepository
	newHireRepo  repo.INewHireRepository
	userDocRepo  repo.IUserDocumentRepository
}

func NewReconcileService(
	appCtx *ctx.Context,
	userRepo repo.IUserRepository,
	newHireRepo repo.INewHireRepository,
	userDocRepo repo.IUserDocumentRepository,
) *ReconcileService {
	return &ReconcileService{
		ctx:         appCtx,
		userRepo:    userRepo,
		newHireRepo: newHireRepo,
		userDocRepo: userDocRepo,
	}
}

// Match runs the matching policy against every active new hire, first
// rule to produce exactly one hit wins:
//
//	1. email local-part contains both first and last name
//	2. exact full-name equality against the display name
//	3. display name contains both first and last name
//
// More than one hit on the winning rule is ambiguous and fails closed.
func (rs *ReconcileService) Match(email, displayName string, candidates []model.NewHire) MatchResult {
	localPart := strings.ToLower(email)
	if i := strings.Index(localPart, "@"); i >= 0 {
		localPart = localPart[:i]
	}
	name := strings.ToLower(strings.TrimSpace(displayName))

	rules := []func(n *model.NewHire) bool{
		func(n *model.NewHire) bool {
			first := strings.ToLower(n.FirstName)
			last := strings.ToLower(n.LastName)
			if first == "" || last == "" {
				return false
			}
			return strings.Contains(localPart, first) && strings.Contains(localPart, last)
		},
		func(n *model.NewHire) bool {
			return name != "" && name == strings.ToLower(n.FullName())
		},
		func(n *model.NewHire) bool {
			first := strings.ToLower(n.FirstName)
			last := strings.ToLower(n.LastName)
			if first == "" || last == "" || name == "" {
				return false
			}
			return strings.Contains(name, first) && strings.Contains(name, last)
		},
	}

	for ruleIdx, rule := range rules {
		var hits []*model.NewHire
		for i := range candidates {
			if rule(&candidates[i]) {
				hits = append(hits, &candidates[i])
			}
		}
		switch len(hits) {
		case 0:
			continue
		case 1:
			return MatchResult{Confidence: MatchConfident, NewHire: hits[0], Rule: ruleIdx + 1}
		default:
			return MatchResult{Confidence: MatchAmbiguous, Rule: ruleIdx + 1}
		}
	}

	return MatchResult{Confidence: MatchNone}
}

// Reconcile matches a freshly registered user against the staged new
// hires and, on a confident match, transfers document progress onto the
// user's rows. No match or an ambiguous match is a no-op.
func (rs *ReconcileService) Reconcile(user *model.User) (*MatchResult, error) {
	candidates, err := rs.newHireRepo.ListActive()
	if err != nil {
		return nil, err
	}

	result := rs.Match(user.Email, user.DisplayName, candidates)
	switch result.Confidence {
	case MatchNone:
		return &result, nil
	case MatchAmbiguous:
		log.Warnw("ambiguous new hire match, refusing automatic transfer",
			"userId", user.UserId, "email", user.Email, "rule", result.Rule)
		return &result, nil
	}

	rs.Transfer(user, result.NewHire)
	return &result, nil
}

// Transfer moves the new hire's document progress onto the user and
// deactivates the new-hire record. Sub-step failures log and abort the
// remaining steps; completed writes are not rolled back.
func (rs *ReconcileService) Transfer(user *model.User, hire *model.NewHire) {
	hireRows, err := rs.userDocRepo.ListByNewHire(hire.NewHireId)
	if err != nil {
		log.Errorw("transfer aborted: failed to list new hire rows",
			"userId", user.UserId, "newHireId", hire.NewHireId, "error", err)
		return
	}

	userRows, err := rs.userDocRepo.ListByUser(user.UserId)
	if err != nil {
		log.Errorw("transfer aborted: failed to list user rows",
			"userId", user.UserId, "newHireId", hire.NewHireId, "error", err)
		return
	}

	userRowByTemplate := make(map[string]*model.UserDocument, len(userRows))
	for i := range userRows {
		userRowByTemplate[userRows[i].TemplateId] = &userRows[i]
	}

	for i := range hireRows {
		hireRow := &hireRows[i]
		if !transferableStatus(hireRow.Status) {
			continue
		}

		if existing, ok := userRowByTemplate[hireRow.TemplateId]; ok {
			// never clobber progress the user already made on their own row
			if existing.Status != model.DocStatusNotStarted {
				continue
			}
			fields := map[string]interface{}{
				"status":       hireRow.Status,
				"viewed_at":    hireRow.ViewedAt,
				"started_at":   hireRow.StartedAt,
				"completed_at": hireRow.CompletedAt,
				"submission_id": hireRow.SubmissionId,
				"document_url":  hireRow.DocumentUrl,
				"audit_log_url": hireRow.AuditLogUrl,
			}
			if err := rs.userDocRepo.UpdateFields(existing.RowId, fields); err != nil {
				log.Errorw("transfer aborted: failed to overwrite user row",
					"userId", user.UserId, "rowId", existing.RowId, "error", err)
				return
			}
		} else {
			if err := rs.userDocRepo.ReassignToUser(hireRow.RowId, user.UserId); err != nil {
				log.Errorw("transfer aborted: failed to reassign row",
					"userId", user.UserId, "rowId", hireRow.RowId, "error", err)
				return
			}
		}
	}

	// stamp provenance on the user profile
	if err := rs.userRepo.SetOrigin(user.UserId, hire.NewHireId, hire.FullName()); err != nil {
		log.Errorw("transfer aborted: failed to stamp provenance",
			"userId", user.UserId, "newHireId", hire.NewHireId, "error", err)
		return
	}
	if hire.Occupation != "" && user.Occupation == "" {
		if err := rs.userRepo.UpdateUser(user.UserId, &model.User{Occupation: hire.Occupation}); err != nil {
			log.Errorw("transfer aborted: failed to copy occupation",
				"userId", user.UserId, "error", err)
			return
		}
	}

	if err := rs.newHireRepo.Deactivate(hire.NewHireId); err != nil {
		log.Errorw("failed to deactivate new hire after transfer",
			"newHireId", hire.NewHireId, "error", err)
		return
	}

	log.Infow("new hire reconciled",
		"userId", user.UserId, "newHireId", hire.NewHireId, "rows", len(hireRows))
}

// transferableStatus reports whether a new-hire row carries progress
// worth moving to the user.
func transferableStatus(status string) bool {
	switch status {
	case model.DocStatusViewed, model.DocStatusStarted, model.DocStatusCompleted:
		return true
	}
	return false
}
