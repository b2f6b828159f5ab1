package service

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"hr_console/pkg/logger"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// AssessmentList is the filtered list with its empty state.
type AssessmentList struct {
	Assessments []model.Assessment `json:"assessments"`
	Total       int                `json:"total"`
	EmptyState  string             `json:"empty_state,omitempty"`
	Message     string             `json:"message,omitempty"`
}

type AssessmentService struct {
	Platform *platform.Client
	Activity *Activity
	Location *time.Location

	drafts selectionDrafts
}

func NewAssessmentService(client *platform.Client, activity *Activity, drafts DraftStore, loc *time.Location) *AssessmentService {
	return &AssessmentService{
		Platform: client,
		Activity: activity,
		Location: loc,
		drafts:   selectionDrafts{store: drafts},
	}
}

// List returns the business's standard assessments narrowed by f.
func (s *AssessmentService) List(ctx context.Context, businessID uint, f AssessmentFilter) (*AssessmentList, error) {
	all, err := s.Platform.ListAssessments(ctx, businessID)
	if err != nil {
		return nil, err
	}
	standard := StandardOnly(all)
	visible, err := FilterAssessments(standard, f, s.Location)
	if err != nil {
		return nil, err
	}
	state, msg := emptyState(len(standard), len(visible))
	return &AssessmentList{
		Assessments: visible,
		Total:       len(standard),
		EmptyState:  state,
		Message:     msg,
	}, nil
}

func (s *AssessmentService) find(ctx context.Context, businessID, assessmentID uint) (*model.Assessment, error) {
	all, err := s.Platform.ListAssessments(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == assessmentID {
			return &all[i], nil
		}
	}
	return nil, &platform.APIError{Operation: "find_assessment", Status: http.StatusNotFound, Message: "Assessment not found"}
}

// StartSelection opens a manager selection for a new assessment, or for an
// existing one when assessmentID is set.
func (s *AssessmentService) StartSelection(ctx context.Context, businessID, assessmentID uint) (*SelectionDraft, error) {
	managers, err := s.Platform.ListManagers(ctx, businessID)
	if err != nil {
		return nil, err
	}

	var sel *ManagerSelection
	if assessmentID > 0 {
		a, err := s.find(ctx, businessID, assessmentID)
		if err != nil {
			return nil, err
		}
		sel = ResumeManagerSelection(businessID, managers, *a)
	} else {
		sel = NewManagerSelection(businessID, managers)
	}
	return s.drafts.create(ctx, businessID, assessmentID, sel)
}

func (s *AssessmentService) Selection(ctx context.Context, draftID string) (*SelectionDraft, error) {
	return s.drafts.load(ctx, draftID)
}

func (s *AssessmentService) ToggleManager(ctx context.Context, draftID string, managerID uint) (*SelectionDraft, error) {
	return s.updateDraft(ctx, draftID, func(sel *ManagerSelection) error { return sel.Toggle(managerID) })
}

func (s *AssessmentService) SetPrimary(ctx context.Context, draftID string, managerID uint) (*SelectionDraft, error) {
	return s.updateDraft(ctx, draftID, func(sel *ManagerSelection) error { return sel.SetPrimary(managerID) })
}

func (s *AssessmentService) updateDraft(ctx context.Context, draftID string, fn func(*ManagerSelection) error) (*SelectionDraft, error) {
	draft, err := s.drafts.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft.Selection); err != nil {
		return nil, err
	}
	if err := s.drafts.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// selection resolves the manager fields of form. A draft wins over the ids
// posted with the form; either way only a valid selection is accepted. A
// draft only applies to the business and assessment it was started for,
// assessmentID being zero for a new assessment.
func (s *AssessmentService) selection(ctx context.Context, businessID, assessmentID uint, form *AssessmentForm, draftID string) error {
	if draftID != "" {
		draft, err := s.drafts.load(ctx, draftID)
		if err != nil {
			return err
		}
		if draft.BusinessID != businessID || draft.AssessmentID != assessmentID {
			return util.ErrSelectionNotFound
		}
		if err := draft.Selection.Validate(); err != nil {
			return err
		}
		draft.Selection.Apply(form)
		return nil
	}

	if len(form.ManagerIDs) == 0 {
		return util.ErrNoManagersSelected
	}
	managers, err := s.Platform.ListManagers(ctx, businessID)
	if err != nil {
		return err
	}
	for _, id := range form.ManagerIDs {
		if !hasManager(managers, id) {
			return util.ErrUnknownManager
		}
	}
	sel := ResumeManagerSelection(businessID, managers, model.Assessment{
		ManagerIDs:       form.ManagerIDs,
		PrimaryManagerID: form.PrimaryManagerID,
	})
	if form.PrimaryManagerID != nil && !sel.IsSelected(*form.PrimaryManagerID) {
		return util.ErrManagerNotSelected
	}
	if err := sel.Validate(); err != nil {
		return err
	}
	sel.Apply(form)
	return nil
}

func hasManager(managers []model.Manager, id uint) bool {
	for _, m := range managers {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Create submits a new assessment and returns the refreshed list.
func (s *AssessmentService) Create(ctx context.Context, businessID uint, form AssessmentForm, draftID string) ([]model.Assessment, error) {
	if err := s.selection(ctx, businessID, 0, &form, draftID); err != nil {
		return nil, err
	}

	created, err := s.Platform.CreateAssessment(ctx, businessID, form.input())
	s.Activity.Done(ctx, "assessment.create", form.CandidateEmail, err, "Assessment created successfully")
	if err != nil {
		return nil, err
	}
	logger.Log.Info("assessment created",
		zap.Uint("business_id", businessID),
		zap.Uint("assessment_id", created.ID))

	s.dropDraft(ctx, draftID)
	return s.refetch(ctx, businessID)
}

func (s *AssessmentService) Update(ctx context.Context, businessID, assessmentID uint, form AssessmentForm, draftID string) ([]model.Assessment, error) {
	if err := s.selection(ctx, businessID, assessmentID, &form, draftID); err != nil {
		return nil, err
	}

	err := s.Platform.UpdateAssessment(ctx, assessmentID, form.input())
	s.Activity.Done(ctx, "assessment.update", fmt.Sprintf("assessment:%d", assessmentID), err, "Assessment updated successfully")
	if err != nil {
		return nil, err
	}
	s.dropDraft(ctx, draftID)
	return s.refetch(ctx, businessID)
}

func (s *AssessmentService) Delete(ctx context.Context, businessID, assessmentID uint) ([]model.Assessment, error) {
	err := s.Platform.DeleteAssessment(ctx, assessmentID)
	s.Activity.Done(ctx, "assessment.delete", fmt.Sprintf("assessment:%d", assessmentID), err, "Assessment deleted successfully")
	if err != nil {
		return nil, err
	}
	return s.refetch(ctx, businessID)
}

// Resend issues a new candidate link; the previous link stops working.
func (s *AssessmentService) Resend(ctx context.Context, businessID, assessmentID uint) ([]model.Assessment, error) {
	err := s.Platform.ResendAssessment(ctx, assessmentID)
	s.Activity.Done(ctx, "assessment.resend", fmt.Sprintf("assessment:%d", assessmentID), err, "Assessment resent successfully")
	if err != nil {
		return nil, err
	}
	return s.refetch(ctx, businessID)
}

// Report opens the PDF report stream; the caller closes it.
func (s *AssessmentService) Report(ctx context.Context, assessmentID uint, download bool) (*platform.Report, error) {
	if download {
		return s.Platform.DownloadReport(ctx, assessmentID)
	}
	return s.Platform.PreviewReport(ctx, assessmentID)
}

func (s *AssessmentService) refetch(ctx context.Context, businessID uint) ([]model.Assessment, error) {
	all, err := s.Platform.ListAssessments(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return StandardOnly(all), nil
}

func (s *AssessmentService) dropDraft(ctx context.Context, draftID string) {
	if draftID == "" {
		return
	}
	if err := s.drafts.discard(ctx, draftID); err != nil {
		logger.Log.Warn("discard selection failed", zap.String("draft", draftID), zap.Error(err))
	}
}
