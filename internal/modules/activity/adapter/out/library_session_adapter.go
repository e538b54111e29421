package out

import (
	"context"

	activityout "readlog/internal/modules/activity/port/out"

	"readlog/internal/modules/activity/domain"
	libraryin "readlog/internal/modules/library/port/in"
)

// LibrarySessionAdapter flattens the loaded library into finished sessions.
// Unfinished and invalid sessions never cross this boundary, so every
// consumer of the activity module agrees on what counts.
type LibrarySessionAdapter struct {
	library libraryin.Usecase
}

func NewLibrarySessionAdapter(library libraryin.Usecase) activityout.LibrarySource {
	return &LibrarySessionAdapter{library: library}
}

func (a *LibrarySessionAdapter) FinishedSessions(ctx context.Context) ([]domain.Session, error) {
	loaded, err := a.library.Load(ctx)
	if err != nil {
		return nil, err
	}
	var sessions []domain.Session
	for _, book := range loaded.Books {
		for _, session := range book.Sessions {
			if session.Finish.IsZero() || session.Invalid {
				continue
			}
			sessions = append(sessions, domain.Session{
				BookID:  book.ID,
				Title:   book.Title,
				Author:  book.Author,
				Row:     book.Row,
				Segment: session.Segment,
				Start:   session.Start,
				Finish:  session.Finish,
			})
		}
	}
	return sessions, nil
}

func (a *LibrarySessionAdapter) BookGenres(ctx context.Context) ([]domain.BookGenres, error) {
	loaded, err := a.library.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.BookGenres
	for _, book := range loaded.Books {
		if len(book.Genres) == 0 {
			continue
		}
		out = append(out, domain.BookGenres{BookID: book.ID, Genres: book.Genres})
	}
	return out, nil
}
