package response

import (
	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
)

type AwardResponse struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Won      bool   `json:"won"`
	Year     int    `json:"year,omitempty"`
}

func AwardsToResponse(awards []entity.Award) []AwardResponse {
	out := make([]AwardResponse, 0, len(awards))
	for _, a := range awards {
		out = append(out, AwardResponse{Name: a.Name, Category: a.Category, Won: a.Won, Year: a.Year})
	}
	return out
}

func IDsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
