package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/nutritrack/internal/models"
)

type InsightsScoreRepository interface {
	ListByUser(userID string) ([]models.UserScore, error)
	FindByUserAndType(userID string, scoreTypeID string) (*models.UserScore, error)
}

type InsightsUserRepository interface {
	FindByID(userID string) (*models.User, error)
}

// ScoreInsight is one score joined with its type's maximum; Progress is the
// 0..1 fraction a progress bar renders.
type ScoreInsight struct {
	ScoreTypeID string  `json:"score_type_id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	MaxValue    float64 `json:"max_value"`
	Progress    float64 `json:"progress"`
}

type Insights struct {
	Total      ScoreInsight   `json:"total"`
	Components []ScoreInsight `json:"components"`
}

type InsightsService struct {
	users  InsightsUserRepository
	scores InsightsScoreRepository
}

func NewInsightsService(users InsightsUserRepository, scores InsightsScoreRepository) *InsightsService {
	return &InsightsService{users: users, scores: scores}
}

func (service *InsightsService) Insights(userID string) (*Insights, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	scores, err := service.scores.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	insights := &Insights{Components: make([]ScoreInsight, 0, len(scores))}
	for _, score := range scores {
		insight := buildScoreInsight(score)
		if score.ScoreTypeID == models.TotalScoreTypeID {
			insights.Total = insight
			continue
		}
		insights.Components = append(insights.Components, insight)
	}
	return insights, nil
}

// ShareText renders the one-line summary the insights screen shares.
func (service *InsightsService) ShareText(userID string) (string, error) {
	insights, err := service.Insights(userID)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "My HEIFA score is %.1f/%.0f!", insights.Total.Value, insights.Total.MaxValue)
	for _, component := range insights.Components {
		fmt.Fprintf(&builder, "\n%s: %.1f/%.0f", component.Name, component.Value, component.MaxValue)
	}
	return builder.String(), nil
}

func buildScoreInsight(score models.UserScore) ScoreInsight {
	insight := ScoreInsight{
		ScoreTypeID: score.ScoreTypeID,
		Name:        score.ScoreType.Name,
		Value:       score.Value,
		MaxValue:    score.ScoreType.MaxValue,
	}
	if insight.MaxValue > 0 {
		insight.Progress = insight.Value / insight.MaxValue
		if insight.Progress > 1 {
			insight.Progress = 1
		}
		if insight.Progress < 0 {
			insight.Progress = 0
		}
	}
	return insight
}
