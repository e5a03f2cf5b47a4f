package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type ListResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Movies      []MovieSummary `json:"movies"`
	CreatedBy   string         `json:"createdBy"`
	Followers   []string       `json:"followers"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func ListToResponse(list *entity.List, movies []*entity.Movie) ListResponse {
	return ListResponse{
		ID:          list.ID.String(),
		Title:       list.Title,
		Description: list.Description,
		Movies:      MoviesToSummary(movies),
		CreatedBy:   list.OwnerID.String(),
		Followers:   IDsToStrings(list.FollowerIDs),
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

type ReplyResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type DiscussionResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Category      string          `json:"category"`
	RelatedMovie  *string         `json:"relatedMovie,omitempty"`
	RelatedPerson *string         `json:"relatedPerson,omitempty"`
	UserID        string          `json:"userId"`
	Replies       []ReplyResponse `json:"replies"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func DiscussionToResponse(d *entity.Discussion) DiscussionResponse {
	replies := make([]ReplyResponse, 0, len(d.Replies))
	for _, r := range d.Replies {
		replies = append(replies, ReplyResponse{
			ID:        r.ID.String(),
			UserID:    r.UserID.String(),
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}

	resp := DiscussionResponse{
		ID:        d.ID.String(),
		Title:     d.Title,
		Content:   d.Content,
		Category:  d.Category,
		UserID:    d.UserID.String(),
		Replies:   replies,
		CreatedAt: d.CreatedAt,
	}
	if d.RelatedMovieID != nil {
		id := d.RelatedMovieID.String()
		resp.RelatedMovie = &id
	}
	if d.RelatedPersonID != nil {
		id := d.RelatedPersonID.String()
		resp.RelatedPerson = &id
	}
	return resp
}

type ArticleResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Category       string    `json:"category"`
	RelatedMovies  []string  `json:"relatedMovies"`
	RelatedPersons []string  `json:"relatedPersons"`
	CoverPhoto     *string   `json:"coverPhoto,omitempty"`
	CreatedBy      string    `json:"createdBy"`
	PublishedDate  time.Time `json:"publishedDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ArticleToResponse(a *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:             a.ID.String(),
		Title:          a.Title,
		Content:        a.Content,
		Category:       a.Category,
		RelatedMovies:  IDsToStrings(a.RelatedMovies),
		RelatedPersons: IDsToStrings(a.RelatedPersons),
		CoverPhoto:     a.CoverPhoto,
		CreatedBy:      a.CreatedBy.String(),
		PublishedDate:  a.PublishedDate,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func ArticlesToResponse(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleToResponse(a))
	}
	return out
}

type ReminderResponse struct {
	ID           string    `json:"id"`
	MovieID      string    `json:"movieId"`
	MovieTitle   string    `json:"movieTitle"`
	ReleaseDate  time.Time `json:"releaseDate"`
	ReminderDate time.Time `json:"reminderDate"`
}

func RemindersToResponse(items []entity.DueReminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(items))
	for _, r := range items {
		out = append(out, ReminderResponse{
			ID:           r.ReminderID.String(),
			MovieID:      r.MovieID.String(),
			MovieTitle:   r.MovieTitle,
			ReleaseDate:  r.ReleaseDate,
			ReminderDate: r.ReminderDate,
		})
	}
	return out
}

type UpcomingNotifyResponse struct {
	Movies     int `json:"movies"`
	Recipients int `json:"recipients"`
}
