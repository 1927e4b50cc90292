package sqlstore

import (
	"log/slog"

	"github.com/tdw-edu/questions-api/internal/store"
)

// Stores groups one store per entity over the same connection.
type Stores struct {
	Users      *UserStore
	Questions  *QuestionStore
	Categories *CategoryStore
	Solutions  *SolutionStore
	Rationales *RationaleStore
}

// New creates every store over db.
func New(db store.DBTX, dialect Dialect, logger *slog.Logger) *Stores {
	return &Stores{
		Users:      NewUserStore(db, dialect, logger),
		Questions:  NewQuestionStore(db, dialect, logger),
		Categories: NewCategoryStore(db, dialect, logger),
		Solutions:  NewSolutionStore(db, dialect, logger),
		Rationales: NewRationaleStore(db, dialect, logger),
	}
}
