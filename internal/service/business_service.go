package service

import (
	"bytes"
	"context"
	"fmt"
	"hr_console/internal/config"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"hr_console/internal/util"
	"hr_console/pkg/logger"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
)

// CreateBusinessResult reports a created business. LogoWarning is set when the
// business exists but its logo could not be stored.
type CreateBusinessResult struct {
	Business    *model.Business `json:"business"`
	LogoWarning string          `json:"logoWarning,omitempty"`
}

type BusinessService struct {
	Platform     *platform.Client
	Activity     *Activity
	LogoMaxBytes int64
}

func NewBusinessService(client *platform.Client, activity *Activity, logoMaxBytes int64) *BusinessService {
	return &BusinessService{Platform: client, Activity: activity, LogoMaxBytes: logoMaxBytes}
}

// List returns the sidebar businesses, ranked by fuzzy match when query is set.
func (s *BusinessService) List(ctx context.Context, query string) ([]model.Business, error) {
	businesses, err := s.Platform.ListBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return businesses, nil
	}

	names := make([]string, len(businesses))
	for i, b := range businesses {
		names[i] = b.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	result := make([]model.Business, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, businesses[rank.OriginalIndex])
	}
	return result, nil
}

func (s *BusinessService) Details(ctx context.Context, businessID uint) (*model.BusinessDetails, error) {
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

// Create validates the optional logo, creates the business and then uploads
// the logo. A failed logo upload keeps the business and returns a warning.
func (s *BusinessService) Create(ctx context.Context, form CreateBusinessForm, logo *Upload) (*CreateBusinessResult, error) {
	name := strings.TrimSpace(form.Name)
	if logo != nil {
		if err := s.validateLogo(logo); err != nil {
			return nil, err
		}
	}

	color := form.PrimaryColor
	if color == "" {
		color = "#000000"
	}
	business, err := s.Platform.CreateBusiness(ctx, platform.NewBusiness{
		Name:         name,
		Slug:         util.DeriveSlug(name),
		PrimaryColor: color,
	})
	if err != nil {
		s.Activity.Done(ctx, "business.create", name, err, "")
		return nil, err
	}

	result := &CreateBusinessResult{Business: business}
	target := fmt.Sprintf("business:%d", business.ID)

	if logo != nil {
		if err := s.Platform.UploadBusinessLogo(ctx, business.ID, logo.Filename, bytes.NewReader(logo.Content)); err != nil {
			result.LogoWarning = fmt.Sprintf("Business created, but logo upload failed: %s", err.Error())
			logger.Log.Warn("business created without logo",
				zap.Uint("business_id", business.ID),
				zap.Error(err))
			s.Activity.Warn(ctx, "business.create", target, result.LogoWarning)
			return result, nil
		}
	}

	s.Activity.Done(ctx, "business.create", target, nil, "Business created successfully")
	return result, nil
}

func (s *BusinessService) validateLogo(logo *Upload) error {
	limit := s.LogoMaxBytes
	if limit <= 0 {
		limit = config.DefaultLogoMaxBytes
	}
	_, err := util.ValidateImage(bytes.NewReader(logo.Content), logo.Size, limit)
	return err
}

// UploadLogo replaces the logo of an existing business.
func (s *BusinessService) UploadLogo(ctx context.Context, businessID uint, logo *Upload) (*model.BusinessDetails, error) {
	if err := s.validateLogo(logo); err != nil {
		return nil, err
	}
	err := s.Platform.UploadBusinessLogo(ctx, businessID, logo.Filename, bytes.NewReader(logo.Content))
	s.Activity.Done(ctx, "business.logo", fmt.Sprintf("business:%d", businessID), err, "Logo uploaded successfully")
	if err != nil {
		return nil, err
	}
	return s.Details(ctx, businessID)
}

func (s *BusinessService) Update(ctx context.Context, businessID uint, form UpdateBusinessForm) (*model.BusinessDetails, error) {
	err := s.Platform.UpdateBusiness(ctx, businessID, platform.BusinessUpdate{
		Name:         strings.TrimSpace(form.Name),
		PrimaryColor: form.PrimaryColor,
		Active:       form.Active,
	})
	s.Activity.Done(ctx, "business.update", fmt.Sprintf("business:%d", businessID), err, "Business updated successfully")
	if err != nil {
		return nil, err
	}
	return s.Details(ctx, businessID)
}

func (s *BusinessService) Delete(ctx context.Context, businessID uint) error {
	err := s.Platform.DeleteBusiness(ctx, businessID)
	s.Activity.Done(ctx, "business.delete", fmt.Sprintf("business:%d", businessID), err, "Business deleted successfully")
	return err
}

// UploadQuestionTemplate sends a question-pair template; .xlsx files are
// converted to CSV first.
func (s *BusinessService) UploadQuestionTemplate(ctx context.Context, businessID uint, file *Upload) (*model.BusinessDetails, error) {
	target := fmt.Sprintf("business:%d", businessID)
	csvData, err := QuestionTemplateCSV(file.Filename, file.Content)
	if err != nil {
		s.Activity.Done(ctx, "business.template", target, err, "")
		return nil, err
	}

	filename := file.Filename
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".csv"
	}
	err = s.Platform.UploadAssessmentTemplate(ctx, businessID, filename, bytes.NewReader(csvData))
	s.Activity.Done(ctx, "business.template", target, err, "Assessment template uploaded successfully")
	if err != nil {
		return nil, err
	}
	return s.Details(ctx, businessID)
}
