package platform

import (
	"context"
	"fmt"
	"hr_console/internal/model"
	"net/http"
	"net/url"
	"strconv"
)

type QuestionPairUpdate struct {
	StatementA string `json:"statement_a"`
	StatementB string `json:"statement_b"`
	Active     *bool  `json:"active,omitempty"`
}

func businessQuery(businessID uint) url.Values {
	return url.Values{"business_id": []string{strconv.FormatUint(uint64(businessID), 10)}}
}

func (c *Client) ListQuestionPairs(ctx context.Context, businessID uint) ([]model.QuestionPair, error) {
	var out struct {
		QuestionPairs []model.QuestionPair `json:"question_pairs"`
	}
	err := c.get(ctx, "list_question_pairs", "/api/question-pairs/", businessQuery(businessID), &out, "Failed to fetch question pairs")
	return out.QuestionPairs, err
}

func (c *Client) ListAttributes(ctx context.Context, businessID uint) ([]model.Attribute, error) {
	var out struct {
		Attributes []model.Attribute `json:"attributes"`
	}
	err := c.get(ctx, "list_attributes", "/api/attributes/", businessQuery(businessID), &out, "Failed to fetch attributes")
	return out.Attributes, err
}

func (c *Client) UpdateQuestionPair(ctx context.Context, pairID uint, in QuestionPairUpdate) error {
	path := fmt.Sprintf("/api/question-pairs/%d/", pairID)
	return c.doJSON(ctx, "update_question_pair", http.MethodPut, path, in, nil, "Failed to update question pair")
}

func (c *Client) DeleteQuestionPair(ctx context.Context, pairID uint) error {
	path := fmt.Sprintf("/api/question-pairs/%d/", pairID)
	return c.doJSON(ctx, "delete_question_pair", http.MethodDelete, path, nil, nil, "Failed to delete question pair")
}
