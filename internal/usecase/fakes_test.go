package usecase

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errStore = errors.New("connection reset")

// The fakes embed the repository interfaces so a test only implements what
// the code under test calls; anything else panics.

type fakeMovieRepo struct {
	repository.MovieRepository
	movies     map[uuid.UUID]*entity.Movie
	statsErr   error
	lastOffset int
	lastLimit  int
}

func newFakeMovieRepo(movies ...*entity.Movie) *fakeMovieRepo {
	f := &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
	for _, m := range movies {
		f.movies[m.ID] = m
	}
	return f
}

func clone(m *entity.Movie) *entity.Movie {
	c := *m
	return &c
}

func (f *fakeMovieRepo) sorted(less func(a, b *entity.Movie) bool) []*entity.Movie {
	out := make([]*entity.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, clone(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if less(out[i], out[j]) {
			return true
		}
		if less(out[j], out[i]) {
			return false
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// errNegativeOffset mirrors PostgreSQL rejecting a negative OFFSET.
var errNegativeOffset = errors.New("OFFSET must not be negative")

func page(movies []*entity.Movie, offset, limit int) []*entity.Movie {
	if offset >= len(movies) {
		return []*entity.Movie{}
	}
	end := min(offset+limit, len(movies))
	return movies[offset:end]
}

func (f *fakeMovieRepo) Create(_ context.Context, m *entity.Movie) error {
	f.movies[m.ID] = clone(m)
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	return clone(m), nil
}

func (f *fakeMovieRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeMovieRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Movie, error) {
	out := []*entity.Movie{}
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			out = append(out, clone(m))
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) UpdateRatingStats(_ context.Context, id uuid.UUID, average float64, count int) error {
	if f.statsErr != nil {
		return f.statsErr
	}
	m, ok := f.movies[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.AverageRating = average
	m.RatingCount = count
	return nil
}

func (f *fakeMovieRepo) UpdateBoxOffice(_ context.Context, id uuid.UUID, bo entity.BoxOffice) error {
	m, ok := f.movies[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.BoxOffice = bo
	return nil
}

func (f *fakeMovieRepo) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	if m, ok := f.movies[id]; ok {
		m.ViewCount++
	}
	return nil
}

func (f *fakeMovieRepo) FindByGenresOrCast(_ context.Context, genres []string, castIDs []uuid.UUID, limit int) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range f.sorted(func(a, b *entity.Movie) bool { return a.CreatedAt.Before(b.CreatedAt) }) {
		match := slices.ContainsFunc(m.Genres, func(g string) bool { return slices.Contains(genres, g) }) ||
			slices.ContainsFunc(m.CastIDs, func(id uuid.UUID) bool { return slices.Contains(castIDs, id) })
		if match {
			out = append(out, m)
		}
	}
	return page(out, 0, limit), nil
}

// FindSimilar does not exclude the reference movie.
func (f *fakeMovieRepo) FindSimilar(_ context.Context, ref *entity.Movie, limit int) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range f.sorted(func(a, b *entity.Movie) bool { return a.AverageRating > b.AverageRating }) {
		if m.DirectorID == ref.DirectorID ||
			slices.ContainsFunc(m.Genres, func(g string) bool { return slices.Contains(ref.Genres, g) }) {
			out = append(out, m)
		}
	}
	return page(out, 0, limit), nil
}

func (f *fakeMovieRepo) ListByViewCount(_ context.Context, offset, limit int) ([]*entity.Movie, error) {
	f.lastOffset, f.lastLimit = offset, limit
	if offset < 0 {
		return nil, errNegativeOffset
	}
	return page(f.sorted(func(a, b *entity.Movie) bool { return a.ViewCount > b.ViewCount }), offset, limit), nil
}

func (f *fakeMovieRepo) ListByRating(_ context.Context, offset, limit int) ([]*entity.Movie, error) {
	f.lastOffset, f.lastLimit = offset, limit
	if offset < 0 {
		return nil, errNegativeOffset
	}
	return page(f.sorted(func(a, b *entity.Movie) bool { return a.AverageRating > b.AverageRating }), offset, limit), nil
}

func (f *fakeMovieRepo) TopRatedByGenre(_ context.Context, genre string, limit int) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range f.sorted(func(a, b *entity.Movie) bool { return a.AverageRating > b.AverageRating }) {
		if slices.Contains(m.Genres, genre) {
			out = append(out, m)
		}
	}
	return page(out, 0, limit), nil
}

func (f *fakeMovieRepo) ReleasingBetween(_ context.Context, from, to time.Time) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range f.sorted(func(a, b *entity.Movie) bool { return a.ReleaseDate.Before(b.ReleaseDate) }) {
		if !m.ReleaseDate.Before(from) && !m.ReleaseDate.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	repository.ReviewRepository
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	for _, existing := range f.reviews {
		if existing.UserID == r.UserID && existing.MovieID == r.MovieID {
			return repository.ErrDuplicate
		}
	}
	c := *r
	f.reviews[r.ID] = &c
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (f *fakeReviewRepo) FindByUserAndMovie(_ context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.UserID == userID && r.MovieID == movieID {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, r *entity.Review) error {
	if _, ok := f.reviews[r.ID]; !ok {
		return repository.ErrNotFound
	}
	c := *r
	f.reviews[r.ID] = &c
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) RatingsByMovie(_ context.Context, movieID uuid.UUID) ([]int, error) {
	var ratings []int
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

func (f *fakeReviewRepo) countFor(movieID uuid.UUID) int {
	n := 0
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			n++
		}
	}
	return n
}

type fakePersonRepo struct {
	repository.PersonRepository
	persons     []*entity.Person
	filmography map[uuid.UUID][]uuid.UUID
}

func newFakePersonRepo(persons ...*entity.Person) *fakePersonRepo {
	return &fakePersonRepo{persons: persons, filmography: make(map[uuid.UUID][]uuid.UUID)}
}

func (f *fakePersonRepo) Create(_ context.Context, p *entity.Person) error {
	f.persons = append(f.persons, p)
	return nil
}

func (f *fakePersonRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Person, error) {
	var out []*entity.Person
	for _, p := range f.persons {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonRepo) FindByNameAndRole(_ context.Context, name, role string) (*entity.Person, error) {
	for _, p := range f.persons {
		if p.Name == name && p.Role == role {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePersonRepo) FindIDsByNames(_ context.Context, names []string, role string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, p := range f.persons {
		if p.Role == role && slices.Contains(names, p.Name) {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (f *fakePersonRepo) AppendFilmography(_ context.Context, personIDs []uuid.UUID, movieID uuid.UUID) error {
	for _, id := range personIDs {
		f.filmography[id] = append(f.filmography[id], movieID)
	}
	return nil
}

type fakeUserRepo struct {
	repository.UserRepository
	users []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) FindEmailSubscribers(context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Notifications.Email {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeReminderRepo struct {
	repository.ReminderRepository
	due     []entity.DueReminder
	sentIDs []uuid.UUID
}

func (f *fakeReminderRepo) FindDue(context.Context, time.Time) ([]entity.DueReminder, error) {
	return f.due, nil
}

func (f *fakeReminderRepo) MarkSent(_ context.Context, ids []uuid.UUID, _ time.Time) error {
	f.sentIDs = append(f.sentIDs, ids...)
	return nil
}

type sentEmail struct {
	to       string
	template string
	data     any
}

type fakeMailer struct {
	mu     sync.Mutex
	sent   []sentEmail
	failTo map[string]bool
}

func (f *fakeMailer) Send(recipient, tmplName string, tmplData any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTo[recipient] {
		return errors.New("smtp: 554 rejected")
	}
	f.sent = append(f.sent, sentEmail{to: recipient, template: tmplName, data: tmplData})
	return nil
}

// inlineQueue runs tasks on submit.
type inlineQueue struct{}

func (inlineQueue) Submit(_ string, task func(ctx context.Context) error) error {
	return task(context.Background())
}

func newMovie(title string, genres ...string) *entity.Movie {
	return &entity.Movie{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Title:  title,
		Genres: genres,
	}
}

var nopLog = zap.NewNop()
