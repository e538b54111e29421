package out

import (
	"context"
	"fmt"

	activityin "readlog/internal/modules/activity/port/in"
	coversin "readlog/internal/modules/covers/port/in"
	"readlog/internal/modules/render/domain"
	renderout "readlog/internal/modules/render/port/out"
)

// ActivityFrameAdapter turns a year of finished sessions into renderer
// frames, resolving each book's cover once.
type ActivityFrameAdapter struct {
	activity activityin.Usecase
	covers   coversin.Usecase
}

func NewActivityFrameAdapter(activity activityin.Usecase, covers coversin.Usecase) renderout.FrameSource {
	return &ActivityFrameAdapter{activity: activity, covers: covers}
}

func (a *ActivityFrameAdapter) Frames(ctx context.Context, year int) ([]domain.Frame, error) {
	output, err := a.activity.Year(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("load year %d: %w", year, err)
	}
	type cover struct {
		path    string
		missing bool
	}
	resolved := map[string]cover{}
	frames := make([]domain.Frame, 0, len(output.Entries))
	for _, entry := range output.Entries {
		c, ok := resolved[entry.BookID]
		if !ok {
			status, err := a.covers.Status(ctx, entry.BookID)
			if err != nil {
				return nil, fmt.Errorf("resolve cover for %s: %w", entry.BookID, err)
			}
			c = cover{path: status.Path, missing: !status.Present}
			if c.missing {
				c.path = ""
			}
			resolved[entry.BookID] = c
		}
		frames = append(frames, domain.Frame{
			BookID:       entry.BookID,
			Title:        entry.Title,
			Author:       entry.Author,
			FinishLabel:  entry.Finish.Format("2006-01-02"),
			ReadNumber:   entry.ReadNumber,
			TotalReads:   entry.TotalReads,
			CoverPath:    c.path,
			CoverMissing: c.missing,
		})
	}
	return frames, nil
}
