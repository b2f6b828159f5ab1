package service

import (
	"context"
	"encoding/json"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/util"
	"time"

	"github.com/pkg/errors"
)

// SelectionTTL bounds how long an unsubmitted manager selection is kept.
const SelectionTTL = 30 * time.Minute

// DraftStore keeps short-lived JSON documents; Load returns
// util.ErrSelectionNotFound for missing or expired keys.
type DraftStore interface {
	Save(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// SelectionDraft is a manager selection in progress for one assessment form.
type SelectionDraft struct {
	ID           string            `json:"id"`
	BusinessID   uint              `json:"businessId"`
	AssessmentID uint              `json:"assessmentId,omitempty"`
	Selection    *ManagerSelection `json:"selection"`
	State        SelectionState    `json:"state"`
}

type selectionDrafts struct {
	store DraftStore
}

func draftKey(operatorID uint, id string) string {
	return fmt.Sprintf("console:selection:%d:%s", operatorID, id)
}

func (d selectionDrafts) create(ctx context.Context, businessID, assessmentID uint, sel *ManagerSelection) (*SelectionDraft, error) {
	draft := &SelectionDraft{
		ID:           model.NewID(),
		BusinessID:   businessID,
		AssessmentID: assessmentID,
		Selection:    sel,
	}
	if err := d.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (d selectionDrafts) save(ctx context.Context, draft *SelectionDraft) error {
	draft.State = draft.Selection.State()
	raw, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "encode selection")
	}
	return d.store.Save(ctx, draftKey(util.OperatorIDFromContext(ctx), draft.ID), raw, SelectionTTL)
}

func (d selectionDrafts) load(ctx context.Context, id string) (*SelectionDraft, error) {
	raw, err := d.store.Load(ctx, draftKey(util.OperatorIDFromContext(ctx), id))
	if err != nil {
		return nil, err
	}
	var draft SelectionDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, errors.Wrap(err, "decode selection")
	}
	if draft.Selection == nil {
		return nil, util.ErrSelectionNotFound
	}
	return &draft, nil
}

func (d selectionDrafts) discard(ctx context.Context, id string) error {
	return d.store.Delete(ctx, draftKey(util.OperatorIDFromContext(ctx), id))
}
