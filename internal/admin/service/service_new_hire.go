package service

import (
	"errors"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
)

type NewHireService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	sync     *SyncService
	notifier realtime.Notifier
}

func NewNewHireService(appCtx *ctx.Context, repos *repo.Repositories, sync *SyncService, notifier realtime.Notifier) *NewHireService {
	return &NewHireService{
		ctx:      appCtx,
		repos:    repos,
		sync:     sync,
		notifier: notifier,
	}
}

// AddNewHire stages an identity before the person has an account and
// materializes its tracking rows.
func (ns *NewHireService) AddNewHire(req *model.AddNewHireReq) (*model.NewHire, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}

	hire := &model.NewHire{
		NewHireId:  id.GetUUIDWithoutDashes(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Zip:        req.Zip,
		Occupation: req.Occupation,
		IsActive:   true,
	}
	if err := ns.repos.NewHire.AddNewHire(hire); err != nil {
		return nil, err
	}

	if _, err := ns.sync.Sync(); err != nil {
		log.Errorw("failed to initialize tracking rows for new hire", "newHireId", hire.NewHireId, "error", err)
	}

	ns.notifier.Publish(consts.CollectionNewHires, consts.CollectionUserDocuments)
	return hire, nil
}

func (ns *NewHireService) GetNewHire(newHireId string) (*model.NewHire, error) {
	hire, err := ns.repos.NewHire.GetNewHire(newHireId)
	if err != nil {
		return nil, errors.New(http.NewHireNotExist.Msg)
	}
	return hire, nil
}

func (ns *NewHireService) ListNewHires(pageNum, pageSize int, includeInactive bool) ([]model.NewHire, int64, error) {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (pageNum - 1) * pageSize
	return ns.repos.NewHire.ListNewHires(offset, pageSize, includeInactive)
}

func (ns *NewHireService) UpdateNewHire(newHireId string, hire *model.NewHire) error {
	if err := ns.repos.NewHire.UpdateNewHire(newHireId, hire); err != nil {
		return err
	}
	ns.notifier.Publish(consts.CollectionNewHires)
	return nil
}

// Deactivate soft-deletes a staged identity. Its tracking rows remain
// for audit.
func (ns *NewHireService) Deactivate(newHireId string) error {
	if _, err := ns.repos.NewHire.GetNewHire(newHireId); err != nil {
		return errors.New(http.NewHireNotExist.Msg)
	}
	if err := ns.repos.NewHire.Deactivate(newHireId); err != nil {
		return err
	}
	ns.notifier.Publish(consts.CollectionNewHires)
	return nil
}
