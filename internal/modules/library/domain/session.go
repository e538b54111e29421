package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the only calendar format the export uses.
const DateFormat = "2006-01-02"

// ReadingSession is one read-through of a book. Start or Finish may be the
// zero time, meaning the export did not record that side of the range.
// Invalid sessions (start after finish) are kept for diagnostics but must be
// skipped by every finish-date view.
type ReadingSession struct {
	Segment int
	Start   time.Time
	Finish  time.Time
	Invalid bool
}

func (s ReadingSession) HasStart() bool  { return !s.Start.IsZero() }
func (s ReadingSession) HasFinish() bool { return !s.Finish.IsZero() }

// Counts reports whether the session may contribute to finish-date views.
func (s ReadingSession) Counts() bool {
	return s.HasFinish() && !s.Invalid
}

type IssueKind string

const (
	IssueParse      IssueKind = "parse"
	IssueValidation IssueKind = "validation"
	IssueIdentity   IssueKind = "identity"
)

// SessionIssue is a non-fatal problem found while parsing one segment of the
// read_dates field. Segment is the zero-based position in the raw field.
type SessionIssue struct {
	Segment int
	Kind    IssueKind
	Detail  string
}

func (i SessionIssue) String() string {
	return fmt.Sprintf("segment %d: %s: %s", i.Segment, i.Kind, i.Detail)
}

// ParseSessions decodes the read_dates field: sessions separated by ";",
// start and finish inside a session separated by ",". A session with a single
// field is finish-only. Empty tokens mean the date was never recorded.
// Parsing is best-effort: a bad segment is reported and skipped, the rest of
// the field still parses.
func ParseSessions(raw string) ([]ReadingSession, []SessionIssue) {
	raw = strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	if raw == "" {
		return nil, nil
	}

	var sessions []ReadingSession
	var issues []SessionIssue
	for seg, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		session, issue := parseSegment(seg, part)
		if issue != nil {
			issues = append(issues, *issue)
			if issue.Kind == IssueParse {
				continue
			}
		}
		sessions = append(sessions, session)
	}
	return sessions, issues
}

func parseSegment(seg int, part string) (ReadingSession, *SessionIssue) {
	fields := strings.Split(part, ",")
	if len(fields) > 2 {
		return ReadingSession{}, &SessionIssue{Segment: seg, Kind: IssueParse, Detail: fmt.Sprintf("expected at most one %q in %q", ",", part)}
	}

	session := ReadingSession{Segment: seg}
	if len(fields) == 1 {
		// A lone date is a finish with no recorded start.
		finish, err := parseToken(fields[0])
		if err != nil {
			return ReadingSession{}, &SessionIssue{Segment: seg, Kind: IssueParse, Detail: err.Error()}
		}
		session.Finish = finish
	} else {
		start, err := parseToken(fields[0])
		if err != nil {
			return ReadingSession{}, &SessionIssue{Segment: seg, Kind: IssueParse, Detail: err.Error()}
		}
		finish, err := parseToken(fields[1])
		if err != nil {
			return ReadingSession{}, &SessionIssue{Segment: seg, Kind: IssueParse, Detail: err.Error()}
		}
		session.Start = start
		session.Finish = finish
	}

	if !session.HasStart() && !session.HasFinish() {
		return ReadingSession{}, &SessionIssue{Segment: seg, Kind: IssueParse, Detail: "segment has no dates"}
	}
	if session.HasStart() && session.HasFinish() && session.Start.After(session.Finish) {
		session.Invalid = true
		return session, &SessionIssue{
			Segment: seg,
			Kind:    IssueValidation,
			Detail:  fmt.Sprintf("start %s is after finish %s", session.Start.Format(DateFormat), session.Finish.Format(DateFormat)),
		}
	}
	return session, nil
}

func parseToken(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(DateFormat, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q", token)
	}
	return date, nil
}
