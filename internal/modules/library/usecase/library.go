package usecase

import (
	"context"

	"readlog/internal/modules/library/domain"
	"readlog/internal/modules/library/dto"
	libraryin "readlog/internal/modules/library/port/in"
	"readlog/internal/modules/library/service"
	apperrors "readlog/internal/platform/errors"
)

type Interactor struct {
	svc *service.LibraryService
}

func NewInteractor(svc *service.LibraryService) libraryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (dto.LoadOutput, error) {
	books, diagnostics, err := i.svc.Load(ctx)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	out := dto.LoadOutput{
		Books:       make([]dto.BookOutput, 0, len(books)),
		Diagnostics: make([]dto.DiagnosticOutput, 0, len(diagnostics)),
	}
	for _, book := range books {
		out.Books = append(out.Books, toBookOutput(book))
	}
	for _, diag := range diagnostics {
		out.Diagnostics = append(out.Diagnostics, dto.DiagnosticOutput{
			Row:     diag.Row,
			BookID:  diag.BookID,
			Title:   diag.Title,
			Segment: diag.Segment,
			Kind:    string(diag.Kind),
			Detail:  diag.Detail,
		})
	}
	return out, nil
}

func (i *Interactor) GetBook(ctx context.Context, id string) (dto.BookOutput, error) {
	book, found, err := i.svc.FindBook(ctx, id)
	if err != nil {
		return dto.BookOutput{}, err
	}
	if !found {
		return dto.BookOutput{}, apperrors.ErrNotFound
	}
	return toBookOutput(book), nil
}

func (i *Interactor) Reindex(ctx context.Context) (dto.ReindexOutput, error) {
	count, err := i.svc.Reindex(ctx)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	return dto.ReindexOutput{Books: count}, nil
}

func toBookOutput(book domain.Book) dto.BookOutput {
	sessions := make([]dto.SessionOutput, 0, len(book.Sessions))
	for _, session := range book.Sessions {
		sessions = append(sessions, dto.SessionOutput{
			Segment: session.Segment,
			Start:   session.Start,
			Finish:  session.Finish,
			Invalid: session.Invalid,
		})
	}
	return dto.BookOutput{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Row:      book.Row,
		Sessions: sessions,
		Genres:   book.Genres,
	}
}
