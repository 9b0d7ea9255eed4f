package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "sift.dev/pkg/sift/internal/model"
)

// DefaultMinMatches is the number of matching lines a file needs before its
// group is reported. Files with a single match are dropped at this setting;
// pass 1 to report every file with at least one match.
const DefaultMinMatches = 2

// ScheduleArgs configures one Dispatch call.
type ScheduleArgs struct {
	Query      string
	IgnoreCase bool
	// MinMatches is the emission threshold. Values below 1 are treated as 1,
	// so files without matches are never reported.
	MinMatches int
	// Threads caps the number of concurrently running scans. 0 runs one
	// goroutine per file with no cap.
	Threads int
}

// Scheduler runs the Matcher over many files concurrently.
type Scheduler interface {
	// Dispatch starts one scan per record and returns the channel the
	// resulting groups arrive on. The channel is closed once every scan has
	// finished. Groups arrive in completion order. Records are owned by the scans
	// after the call and must not be modified by the caller.
	Dispatch(ctx context.Context, args ScheduleArgs, records []m.FileRecord) <-chan m.FileMatchGroup
}

type scheduler struct {
	matcher Matcher
}

// NewScheduler constructs a Scheduler using the provided Matcher.
func NewScheduler(matcher Matcher) Scheduler {
	return &scheduler{matcher: matcher}
}

func (s *scheduler) Dispatch(ctx context.Context, args ScheduleArgs, records []m.FileRecord) <-chan m.FileMatchGroup {
	// Every scan sends at most once, so a buffer of len(records) never blocks a sender.
	results := make(chan m.FileMatchGroup, len(records))
	threshold := normalizeMinMatches(args.MinMatches)

	slog.DebugContext(ctx, "Dispatching scans", "files", len(records), "threads", args.Threads, "minMatches", threshold)

	var group errgroup.Group
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	go func() {
		defer close(results)

		for _, record := range records {
			group.Go(func() error {
				s.scan(ctx, args.Query, args.IgnoreCase, threshold, record, results)
				return nil
			})
		}

		_ = group.Wait()
	}()

	return results
}

// scan matches one file and reports its group when it meets the threshold.
func (s *scheduler) scan(ctx context.Context, query string, ignoreCase bool, threshold int, record m.FileRecord, results chan<- m.FileMatchGroup) {
	matches := s.matcher.Match(query, record.Contents, ignoreCase)
	if len(matches) < threshold {
		slog.DebugContext(ctx, "Dropping file below threshold", "path", record.FileName, "matches", len(matches))
		return
	}

	results <- m.FileMatchGroup{
		FileName: record.FileName,
		Matches:  matches,
	}
}

// Collect drains ch until it is closed and returns the groups in arrival order.
func Collect(ch <-chan m.FileMatchGroup) []m.FileMatchGroup {
	var groups []m.FileMatchGroup

	for group := range ch {
		groups = append(groups, group)
	}

	return groups
}

func normalizeMinMatches(minMatches int) int {
	if minMatches < 1 {
		return 1
	}

	return minMatches
}
