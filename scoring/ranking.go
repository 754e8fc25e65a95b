package scoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// RankedStudent is one leaderboard row. Rank is the 1-based position in the
// ordering; tied totals share the ordering by full name, not a shared rank.
type RankedStudent struct {
	StudentId int    `json:"student_id"`
	FullName  string `json:"full_name"`
	Total     int    `json:"total"`
	Rank      int    `json:"rank"`
}

// RankStudents orders a group's students by summed score over [start, end),
// highest first, ties broken by full name ascending. Students without events
// in the window are included with a total of zero.
func RankStudents(db *gorm.DB, groupId int, start *time.Time, end *time.Time) ([]*RankedStudent, error) {
	timer := prometheus.NewTimer(scoreQueryDuration.WithLabelValues("RankStudents"))
	defer timer.ObserveDuration()

	query := `
	SELECT
		students.id AS student_id,
		students.full_name,
		COALESCE(SUM(point_events.score), 0) AS total
	FROM
		students
	LEFT JOIN
		point_events ON point_events.student_id = students.id
		AND (@start::timestamptz IS NULL OR point_events.timestamp >= @start)
		AND (@end::timestamptz IS NULL OR point_events.timestamp < @end)
	WHERE
		students.group_id = @groupId
	GROUP BY
		students.id, students.full_name
	ORDER BY
		total DESC, students.full_name ASC
	`
	ranked := make([]*RankedStudent, 0)
	err := db.Raw(query, map[string]interface{}{"groupId": groupId, "start": start, "end": end}).Scan(&ranked).Error
	if err != nil {
		return nil, err
	}
	for i, entry := range ranked {
		entry.Rank = i + 1
	}
	return ranked, nil
}
