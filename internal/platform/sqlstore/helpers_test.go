package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdw-edu/questions-api/internal/domain"
	"github.com/tdw-edu/questions-api/internal/platform/sqlstore"
	"github.com/tdw-edu/questions-api/internal/testdb"
)

func newStores(t *testing.T) *sqlstore.Stores {
	t.Helper()
	return sqlstore.New(testdb.GetTestDBWithT(t), testdb.Dialect(), nil)
}

func mustCreateUser(t *testing.T, s *sqlstore.Stores, username string, teacher bool) *domain.User {
	t.Helper()
	u := &domain.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: "hash-" + username,
		Enabled:        true,
		IsTeacher:      teacher,
	}
	require.NoError(t, s.Users.Create(context.Background(), u))
	return u
}

func mustCreateQuestion(t *testing.T, s *sqlstore.Stores, creator *domain.User, description string) *domain.Question {
	t.Helper()
	q, err := domain.NewQuestion(description, creator, true)
	require.NoError(t, err)
	q.Open()
	require.NoError(t, s.Questions.Create(context.Background(), q))
	return q
}

func mustCreateSolution(t *testing.T, s *sqlstore.Stores, questionID int64, student string) *domain.Solution {
	t.Helper()
	sol, err := domain.NewSolution(questionID, student, "title-"+student, "answer-"+student)
	require.NoError(t, err)
	require.NoError(t, s.Solutions.Create(context.Background(), sol))
	return sol
}
