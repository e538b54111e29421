package out

import (
	"context"

	activityin "readlog/internal/modules/activity/port/in"
	coversout "readlog/internal/modules/covers/port/out"
)

// ActivityTimelineAdapter sources qualifying events from the activity
// module so the covers report agrees with every other year view.
type ActivityTimelineAdapter struct {
	activity activityin.Usecase
}

func NewActivityTimelineAdapter(activity activityin.Usecase) coversout.Timeline {
	return &ActivityTimelineAdapter{activity: activity}
}

func (a *ActivityTimelineAdapter) FinishedBooks(ctx context.Context, year int) ([]coversout.FinishedBook, error) {
	out, err := a.activity.Year(ctx, year)
	if err != nil {
		return nil, err
	}
	books := make([]coversout.FinishedBook, 0, len(out.Entries))
	for _, entry := range out.Entries {
		books = append(books, coversout.FinishedBook{
			BookID: entry.BookID,
			Title:  entry.Title,
			Author: entry.Author,
			Finish: entry.Finish,
		})
	}
	return books, nil
}
