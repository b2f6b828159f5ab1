package service

import (
	"hr_console/internal/model"
	"hr_console/internal/util"
)

// SelectionState is the validity of a manager selection.
type SelectionState string

const (
	SelectionUnselected SelectionState = "unselected"
	SelectionPartial    SelectionState = "partially_selected"
	SelectionValid      SelectionState = "valid"
)

// ManagerSelection is the multi-manager picker of the assessment form. Default
// managers are always members; the primary contact, when set, is a member.
type ManagerSelection struct {
	BusinessID   uint            `json:"businessId"`
	Managers     []model.Manager `json:"managers"`
	Selected     []uint          `json:"selected"`
	PrimaryID    *uint           `json:"primaryId"`
	ManagerName  string          `json:"managerName"`
	ManagerEmail string          `json:"managerEmail"`
}

// NewManagerSelection starts a selection with every default manager checked.
func NewManagerSelection(businessID uint, managers []model.Manager) *ManagerSelection {
	s := &ManagerSelection{BusinessID: businessID, Managers: managers, Selected: []uint{}}
	for _, m := range managers {
		if m.IsDefault {
			s.add(m.ID)
		}
	}
	return s
}

// ResumeManagerSelection rebuilds the picker for an existing assessment.
// Unknown ids are dropped and defaults are re-added.
func ResumeManagerSelection(businessID uint, managers []model.Manager, a model.Assessment) *ManagerSelection {
	s := NewManagerSelection(businessID, managers)
	for _, id := range a.ManagerIDs {
		if s.manager(id) != nil && !s.IsSelected(id) {
			s.add(id)
		}
	}
	if a.PrimaryManagerID != nil && s.IsSelected(*a.PrimaryManagerID) {
		s.setPrimary(*a.PrimaryManagerID)
	}
	return s
}

func (s *ManagerSelection) manager(id uint) *model.Manager {
	for i := range s.Managers {
		if s.Managers[i].ID == id {
			return &s.Managers[i]
		}
	}
	return nil
}

func (s *ManagerSelection) IsSelected(id uint) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

// Toggle checks or unchecks one manager. Unchecking a default manager is a
// no-op; unchecking the primary clears the primary contact.
func (s *ManagerSelection) Toggle(id uint) error {
	m := s.manager(id)
	if m == nil {
		return util.ErrUnknownManager
	}

	if !s.IsSelected(id) {
		s.add(id)
		return nil
	}
	if m.IsDefault {
		return nil
	}

	kept := s.Selected[:0]
	for _, sel := range s.Selected {
		if sel != id {
			kept = append(kept, sel)
		}
	}
	s.Selected = kept

	if s.PrimaryID != nil && *s.PrimaryID == id {
		s.clearPrimary()
	}
	return nil
}

// SetPrimary makes a selected manager the primary contact.
func (s *ManagerSelection) SetPrimary(id uint) error {
	if s.manager(id) == nil {
		return util.ErrUnknownManager
	}
	if !s.IsSelected(id) {
		return util.ErrManagerNotSelected
	}
	s.setPrimary(id)
	return nil
}

func (s *ManagerSelection) State() SelectionState {
	switch {
	case len(s.Selected) == 0:
		return SelectionUnselected
	case s.PrimaryID == nil:
		return SelectionPartial
	default:
		return SelectionValid
	}
}

// Validate reports why the selection cannot be submitted.
func (s *ManagerSelection) Validate() error {
	switch s.State() {
	case SelectionUnselected:
		return util.ErrNoManagersSelected
	case SelectionPartial:
		return util.ErrNoPrimaryManager
	}
	return nil
}

// Apply copies the selection into the assessment form.
func (s *ManagerSelection) Apply(form *AssessmentForm) {
	form.ManagerIDs = append([]uint(nil), s.Selected...)
	form.PrimaryManagerID = nil
	if s.PrimaryID != nil {
		id := *s.PrimaryID
		form.PrimaryManagerID = &id
	}
	form.ManagerName = s.ManagerName
	form.ManagerEmail = s.ManagerEmail
}

func (s *ManagerSelection) add(id uint) {
	wasEmpty := len(s.Selected) == 0
	s.Selected = append(s.Selected, id)

	if wasEmpty && s.PrimaryID == nil {
		if def, ok := s.soleDefault(); ok && s.IsSelected(def) {
			s.setPrimary(def)
		}
	}
}

// soleDefault returns the default manager when exactly one exists.
func (s *ManagerSelection) soleDefault() (uint, bool) {
	var (
		id    uint
		count int
	)
	for _, m := range s.Managers {
		if m.IsDefault {
			id = m.ID
			count++
		}
	}
	return id, count == 1
}

func (s *ManagerSelection) setPrimary(id uint) {
	m := s.manager(id)
	pid := id
	s.PrimaryID = &pid
	s.ManagerName = m.Name
	s.ManagerEmail = m.Email
}

func (s *ManagerSelection) clearPrimary() {
	s.PrimaryID = nil
	s.ManagerName = ""
	s.ManagerEmail = ""
}
