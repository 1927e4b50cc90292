package service_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/mocks"
	"github.com/tdw-edu/questions-api/internal/platform/sqlstore"
	"github.com/tdw-edu/questions-api/internal/service"
	"github.com/tdw-edu/questions-api/internal/service/auth"
	"github.com/tdw-edu/questions-api/internal/testdb"
)

var (
	admin = auth.Principal{UserID: 1, IsAdmin: true}
	quiet = slog.New(slog.DiscardHandler)
)

type fixture struct {
	stores     *sqlstore.Stores
	users      service.UserService
	questions  service.QuestionService
	categories service.CategoryService
	solutions  service.SolutionService
	rationales service.RationaleService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s := sqlstore.New(testdb.GetTestDBWithT(t), testdb.Dialect(), quiet)
	return &fixture{
		stores:     s,
		users:      service.NewUserService(s.Users, &mocks.MockPasswordHasher{}, quiet),
		questions:  service.NewQuestionService(s.Questions, s.Users, quiet),
		categories: service.NewCategoryService(s.Categories, s.Questions, quiet),
		solutions:  service.NewSolutionService(s.Solutions, s.Questions, quiet),
		rationales: service.NewRationaleService(s.Rationales, s.Solutions, quiet),
	}
}

func (f *fixture) user(t *testing.T, name string, teacher bool) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), admin, service.UserPayload{
		Username:  ptr(name),
		Email:     ptr(name + "@example.com"),
		Password:  ptr("secret"),
		Enabled:   ptr(true),
		IsTeacher: ptr(teacher),
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) question(t *testing.T, creator *domain.User, available bool) *domain.Question {
	t.Helper()
	q, err := f.questions.Create(context.Background(), admin, service.QuestionPayload{
		Description: ptr("What is 2+2?"),
		Available:   ptr(available),
		Creator:     ptr(creator.ID),
	})
	require.NoError(t, err)
	return q
}

func (f *fixture) solution(t *testing.T, questionID int64, student string) *domain.Solution {
	t.Helper()
	sol, err := f.solutions.Create(context.Background(), admin, service.SolutionPayload{
		QuestionID:       ptr(questionID),
		Student:          ptr(student),
		QuestionTitle:    ptr("title " + student),
		ProposedSolution: ptr("answer " + student),
	})
	require.NoError(t, err)
	return sol
}

// requireOutcome asserts err is an OutcomeError with the given status and
// returns it.
func requireOutcome(t *testing.T, err error, status int) *service.OutcomeError {
	t.Helper()
	require.Error(t, err)
	oe, ok := service.AsOutcome(err)
	require.True(t, ok, "expected an outcome error, got %v", err)
	require.Equal(t, status, oe.Status, "unexpected status for %v", err)
	return oe
}

func ptr[T any](v T) *T { return &v }

const (
	statusBadRequest    = http.StatusBadRequest
	statusForbidden     = http.StatusForbidden
	statusNotFound      = http.StatusNotFound
	statusUnprocessable = http.StatusUnprocessableEntity
)
