package service

import (
	"hr_console/internal/model"
	"hr_console/internal/util"
	"strings"
	"time"
)

// AssessmentFilter is the filter bar of the assessment list. Each dimension
// has its own enable flag; a disabled dimension is not applied at all.
type AssessmentFilter struct {
	DateEnabled   bool   `form:"dateEnabled" json:"dateEnabled"`
	Start         string `form:"start" json:"start"`
	End           string `form:"end" json:"end"`
	StatusEnabled bool   `form:"statusEnabled" json:"statusEnabled"`
	Status        string `form:"status" json:"status"`
}

// Empty list states shown by the console.
const (
	EmptyNone        = ""
	EmptyNoData      = "no_assessments"
	EmptyNoMatches   = "no_matches"
	msgNoAssessments = "No assessments have been created yet"
	msgNoMatches     = "No assessments match the selected filters"
)

// StandardOnly drops benchmark assessments, keeping server order.
func StandardOnly(list []model.Assessment) []model.Assessment {
	out := make([]model.Assessment, 0, len(list))
	for _, a := range list {
		if a.AssessmentType == "" || a.AssessmentType == model.AssessmentStandard {
			out = append(out, a)
		}
	}
	return out
}

// FilterAssessments returns the visible subset of list. The date window runs
// from start 00:00:00 through the whole end day in loc; it only applies when
// both dates are set.
func FilterAssessments(list []model.Assessment, f AssessmentFilter, loc *time.Location) ([]model.Assessment, error) {
	if loc == nil {
		loc = time.Local
	}

	var from, until time.Time
	useDate := f.DateEnabled && strings.TrimSpace(f.Start) != "" && strings.TrimSpace(f.End) != ""
	if useDate {
		var err error
		from, err = time.ParseInLocation(util.DateFormat, strings.TrimSpace(f.Start), loc)
		if err != nil {
			return nil, util.ErrInvalidDateRange
		}
		endDay, err := time.ParseInLocation(util.DateFormat, strings.TrimSpace(f.End), loc)
		if err != nil {
			return nil, util.ErrInvalidDateRange
		}
		until = endDay.AddDate(0, 0, 1)
	}

	status := strings.ToLower(strings.TrimSpace(f.Status))
	useStatus := f.StatusEnabled && status != "" && status != util.StatusAll

	out := make([]model.Assessment, 0, len(list))
	for _, a := range list {
		if useDate {
			created := a.CreatedAt.In(loc)
			if created.Before(from) || !created.Before(until) {
				continue
			}
		}
		if useStatus {
			if status == util.StatusCompleted && !a.Completed {
				continue
			}
			if status == util.StatusPending && a.Completed {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

// emptyState tells "nothing exists" apart from "filters hid everything".
func emptyState(total, visible int) (string, string) {
	switch {
	case total == 0:
		return EmptyNoData, msgNoAssessments
	case visible == 0:
		return EmptyNoMatches, msgNoMatches
	default:
		return EmptyNone, ""
	}
}
