package service

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"hr_console/internal/platform"
	"sort"
	"strings"
)

type QuestionPairService struct {
	Platform *platform.Client
	Activity *Activity
}

func NewQuestionPairService(client *platform.Client, activity *Activity) *QuestionPairService {
	return &QuestionPairService{Platform: client, Activity: activity}
}

// List returns the business's pairs in their display order.
func (s *QuestionPairService) List(ctx context.Context, businessID uint) ([]model.QuestionPair, error) {
	pairs, err := s.Platform.ListQuestionPairs(ctx, businessID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Order < pairs[j].Order })
	return pairs, nil
}

func (s *QuestionPairService) Attributes(ctx context.Context, businessID uint) ([]model.Attribute, error) {
	return s.Platform.ListAttributes(ctx, businessID)
}

func (s *QuestionPairService) Update(ctx context.Context, businessID, pairID uint, form QuestionPairForm) (*model.BusinessDetails, error) {
	err := s.Platform.UpdateQuestionPair(ctx, pairID, platform.QuestionPairUpdate{
		StatementA: strings.TrimSpace(form.StatementA),
		StatementB: strings.TrimSpace(form.StatementB),
		Active:     form.Active,
	})
	s.Activity.Done(ctx, "question_pair.update", fmt.Sprintf("question_pair:%d", pairID), err, "Question pair updated successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}

func (s *QuestionPairService) Delete(ctx context.Context, businessID, pairID uint) (*model.BusinessDetails, error) {
	err := s.Platform.DeleteQuestionPair(ctx, pairID)
	s.Activity.Done(ctx, "question_pair.delete", fmt.Sprintf("question_pair:%d", pairID), err, "Question pair deleted successfully")
	if err != nil {
		return nil, err
	}
	return s.Platform.GetBusinessDetails(ctx, businessID)
}
