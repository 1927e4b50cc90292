package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	t.Parallel()

	teacher := &User{ID: 7, Username: "t", IsTeacher: true}

	t.Run("starts closed regardless of availability", func(t *testing.T) {
		q, err := NewQuestion("Q?", teacher, true)
		require.NoError(t, err)
		assert.Equal(t, QuestionClosed, q.State)
		assert.True(t, q.Available)
		require.NotNil(t, q.CreatorID)
		assert.Equal(t, int64(7), *q.CreatorID)
		assert.NotNil(t, q.Categories)
	})

	t.Run("without creator", func(t *testing.T) {
		q, err := NewQuestion("Q?", nil, false)
		require.NoError(t, err)
		assert.Nil(t, q.CreatorID)
	})

	t.Run("non-teacher creator fails", func(t *testing.T) {
		q, err := NewQuestion("Q?", &User{ID: 8}, true)
		assert.ErrorIs(t, err, ErrCreatorNotTeacher)
		assert.Nil(t, q)
	})
}

func TestQuestionSetCreator(t *testing.T) {
	t.Parallel()

	first := int64(1)
	q := &Question{CreatorID: &first, State: QuestionClosed}

	err := q.SetCreator(&User{ID: 2, IsTeacher: false})
	assert.ErrorIs(t, err, ErrCreatorNotTeacher)
	assert.Equal(t, int64(1), *q.CreatorID, "failed assignment must leave the creator untouched")

	assert.ErrorIs(t, q.SetCreator(nil), ErrNilCreator)

	require.NoError(t, q.SetCreator(&User{ID: 3, IsTeacher: true}))
	assert.Equal(t, int64(3), *q.CreatorID)
}

func TestQuestionState(t *testing.T) {
	t.Parallel()

	q := &Question{State: QuestionClosed}
	assert.False(t, q.IsOpen())

	q.Open()
	assert.True(t, q.IsOpen())

	q.Close()
	assert.Equal(t, QuestionClosed, q.State)

	q.SetState(true)
	assert.Equal(t, QuestionOpen, q.State)
	q.SetState(false)
	assert.Equal(t, QuestionClosed, q.State)

	// availability is not touched by state changes
	assert.False(t, q.Available)
}

func TestQuestionValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Question{State: QuestionOpen}).Validate())
	assert.NoError(t, (&Question{State: QuestionClosed}).Validate())

	err := (&Question{State: "abierta"}).Validate()
	assert.ErrorIs(t, err, ErrInvalidQuestionState)
	assert.ErrorIs(t, err, ErrValidation)
}
