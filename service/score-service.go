package service

import (
	"time"

	"geeksboard/config"
	"geeksboard/repository"
	"geeksboard/scoring"

	"gorm.io/gorm"
)

// ScoreService bridges the http layer and the scoring engine. Every call
// checks that the student or group belongs to the requesting mentor before
// touching the ledger.
type ScoreService struct {
	db                *gorm.DB
	studentRepository *repository.StudentRepository
	groupRepository   *repository.GroupRepository
}

func NewScoreService() *ScoreService {
	return &ScoreService{
		db:                config.DatabaseConnection(),
		studentRepository: repository.NewStudentRepository(),
		groupRepository:   repository.NewGroupRepository(),
	}
}

type ScoreSummary struct {
	Total     int                      `json:"total"`
	Breakdown []*scoring.CategoryScore `json:"breakdown"`
}

func (e *ScoreService) GetScoreSummary(studentId int, mentorId int, start *time.Time, end *time.Time) (*ScoreSummary, error) {
	if _, err := e.studentRepository.GetStudentForMentor(studentId, mentorId); err != nil {
		return nil, err
	}
	total, err := scoring.TotalScore(e.db, studentId, start, end)
	if err != nil {
		return nil, err
	}
	breakdown, err := scoring.Breakdown(e.db, studentId, start, end)
	if err != nil {
		return nil, err
	}
	return &ScoreSummary{Total: total, Breakdown: breakdown}, nil
}

func (e *ScoreService) GetTrend(studentId int, mentorId int, now time.Time, days int) (*scoring.Trend, error) {
	if _, err := e.studentRepository.GetStudentForMentor(studentId, mentorId); err != nil {
		return nil, err
	}
	return scoring.ComputeTrend(e.db, studentId, now, days)
}

func (e *ScoreService) GetLevel(studentId int, mentorId int) (*scoring.Level, error) {
	if _, err := e.studentRepository.GetStudentForMentor(studentId, mentorId); err != nil {
		return nil, err
	}
	total, err := scoring.TotalScore(e.db, studentId, nil, nil)
	if err != nil {
		return nil, err
	}
	return scoring.LevelInfo(total), nil
}

func (e *ScoreService) EvaluateBadges(studentId int, mentorId int) ([]*repository.Badge, error) {
	if _, err := e.studentRepository.GetStudentForMentor(studentId, mentorId); err != nil {
		return nil, err
	}
	return scoring.EvaluateBadges(e.db, studentId)
}

func (e *ScoreService) GetLeaderboard(groupId int, mentorId int, start *time.Time, end *time.Time) ([]*scoring.RankedStudent, error) {
	if _, err := e.groupRepository.GetGroupForMentor(groupId, mentorId); err != nil {
		return nil, err
	}
	return scoring.RankStudents(e.db, groupId, start, end)
}

func (e *ScoreService) RunMonthlyRewards(month time.Time) (*scoring.RewardStats, error) {
	return scoring.RunMonthlyRewards(e.db, month)
}
