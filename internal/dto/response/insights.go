package response

import "movie-catalog/internal/data/entity"

type NameCountResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type MovieViewsResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ViewCount int64  `json:"viewCount"`
}

type CastAppearanceResponse struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
}

type ReviewerResponse struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	ReviewCount int64  `json:"reviewCount"`
}

type MovieAppearancesResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Genre            []string `json:"genre"`
	Cast             []string `json:"cast"`
	TotalAppearances int      `json:"totalAppearances"`
}

type SiteStatisticsResponse struct {
	MostPopularMovies  []MovieViewsResponse     `json:"mostPopularMovies"`
	TrendingGenres     []NameCountResponse      `json:"trendingGenres"`
	MostSearchedActors []CastAppearanceResponse `json:"mostSearchedActors"`
}

type UserEngagementResponse struct {
	TotalUsers   int64              `json:"totalUsers"`
	ActiveUsers  int64              `json:"activeUsers"`
	TopReviewers []ReviewerResponse `json:"topReviewers"`
}

type RecommendationInsightsResponse struct {
	TopRecommendedMovies []MovieAppearancesResponse `json:"topRecommendedMovies"`
	MostPopularGenres    []NameCountResponse        `json:"mostPopularGenres"`
	MostFavoritedActors  []NameCountResponse        `json:"mostFavoritedActors"`
}

func NameCountsToResponse(items []entity.NameCount) []NameCountResponse {
	out := make([]NameCountResponse, 0, len(items))
	for _, nc := range items {
		out = append(out, NameCountResponse{Name: nc.Name, Count: nc.Count})
	}
	return out
}

func MovieViewsToResponse(items []entity.MovieViews) []MovieViewsResponse {
	out := make([]MovieViewsResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MovieViewsResponse{ID: m.ID.String(), Title: m.Title, ViewCount: m.ViewCount})
	}
	return out
}

func CastAppearancesToResponse(items []entity.CastAppearance) []CastAppearanceResponse {
	out := make([]CastAppearanceResponse, 0, len(items))
	for _, c := range items {
		out = append(out, CastAppearanceResponse{PersonID: c.PersonID.String(), Name: c.Name, Count: c.Count})
	}
	return out
}

func ReviewersToResponse(items []entity.ReviewerCount) []ReviewerResponse {
	out := make([]ReviewerResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ReviewerResponse{UserID: r.UserID.String(), Username: r.Username, ReviewCount: r.ReviewCount})
	}
	return out
}

func MovieAppearancesToResponse(items []entity.MovieAppearances) []MovieAppearancesResponse {
	out := make([]MovieAppearancesResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MovieAppearancesResponse{
			ID:               m.ID.String(),
			Title:            m.Title,
			Genre:            nonNil(m.Genres),
			Cast:             IDsToStrings(m.CastIDs),
			TotalAppearances: m.TotalAppearances,
		})
	}
	return out
}
