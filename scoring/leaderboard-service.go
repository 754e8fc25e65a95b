package scoring

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

type Difftype string

const (
	Added     Difftype = "Added"
	Removed   Difftype = "Removed"
	Changed   Difftype = "Changed"
	Unchanged Difftype = "Unchanged"
)

type BoardDiff struct {
	Entry     *RankedStudent `json:"entry"`
	FieldDiff []string       `json:"field_diff,omitempty"`
	DiffType  Difftype       `json:"diff_type"`
}

// BoardMap is a leaderboard snapshot keyed by student id.
type BoardMap map[int]*BoardDiff

// LeaderboardService recomputes group leaderboards and remembers the last
// broadcast state per group so websocket subscribers only receive changes.
type LeaderboardService struct {
	LatestBoards map[int]BoardMap
	mu           sync.Mutex
	db           *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{
		db:           db,
		LatestBoards: make(map[int]BoardMap),
	}
}

func getBoardDifference(prevDiff *BoardDiff, entry *RankedStudent) *BoardDiff {
	if prevDiff == nil {
		return &BoardDiff{Entry: entry, DiffType: Added}
	}
	previous := prevDiff.Entry
	fieldDiff := make([]string, 0)
	if previous.Total != entry.Total {
		fieldDiff = append(fieldDiff, "Total")
	}
	if previous.Rank != entry.Rank {
		fieldDiff = append(fieldDiff, "Rank")
	}
	if previous.FullName != entry.FullName {
		fieldDiff = append(fieldDiff, "FullName")
	}
	if len(fieldDiff) == 0 {
		return &BoardDiff{Entry: entry, DiffType: Unchanged}
	}
	return &BoardDiff{Entry: entry, FieldDiff: fieldDiff, DiffType: Changed}
}

// Diff compares a fresh leaderboard against the previous snapshot and returns
// the new snapshot plus the entries that changed.
func Diff(boardMap BoardMap, entries []*RankedStudent) (BoardMap, BoardMap) {
	newMap := make(BoardMap)
	diffMap := make(BoardMap)
	for _, entry := range entries {
		diff := getBoardDifference(boardMap[entry.StudentId], entry)
		newMap[entry.StudentId] = diff
		if diff.DiffType != Unchanged {
			diffMap[entry.StudentId] = diff
		}
	}
	for studentId, oldDiff := range boardMap {
		if _, ok := newMap[studentId]; !ok {
			diffMap[studentId] = &BoardDiff{Entry: oldDiff.Entry, DiffType: Removed}
		}
	}
	return newMap, diffMap
}

// GetNewDiff recomputes the group's leaderboard for the month containing now
// and returns the changes since the last call for that group.
func (s *LeaderboardService) GetNewDiff(groupId int, now time.Time) (BoardMap, error) {
	start, end := MonthWindow(now)
	entries, err := RankStudents(s.db, groupId, &start, &end)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	newMap, diff := Diff(s.LatestBoards[groupId], entries)
	s.LatestBoards[groupId] = newMap
	if len(diff) == 0 {
		return nil, fmt.Errorf("no changes in leaderboard")
	}
	return diff, nil
}

// Snapshot recomputes the group's full board, updates the stored state and
// returns it. Used to seed fresh websocket subscribers.
func (s *LeaderboardService) Snapshot(groupId int, now time.Time) (BoardMap, error) {
	start, end := MonthWindow(now)
	entries, err := RankStudents(s.db, groupId, &start, &end)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	newMap, _ := Diff(s.LatestBoards[groupId], entries)
	s.LatestBoards[groupId] = newMap
	return newMap, nil
}
