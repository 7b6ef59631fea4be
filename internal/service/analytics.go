package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/cache"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/model"
)

// Overview is the admin dashboard's headline counters.
type Overview struct {
	TotalStudents    int64 `json:"total_students"`
	TotalAlumni      int64 `json:"total_alumni"`
	PendingApprovals int64 `json:"pending_approvals"`
	OpenTickets      int64 `json:"open_tickets"`
	ActiveJobs       int64 `json:"active_jobs"`
	TotalMessages    int64 `json:"total_messages"`
}

// SkillCount is one entry of the top-skills ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// NameCount is a generic label/count pair for distributions.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Analytics is the computed platform statistics snapshot.
type Analytics struct {
	TotalUsers           int64        `json:"total_users"`
	TotalStudents        int64        `json:"total_students"`
	TotalAlumni          int64        `json:"total_alumni"`
	StudentPercentage    float64      `json:"student_percentage"`
	AlumniPercentage     float64      `json:"alumni_percentage"`
	DeptDistribution     []NameCount  `json:"dept_distribution"`
	MonthlyRegistrations []NameCount  `json:"monthly_registrations"`
	TopSkills            []SkillCount `json:"top_skills"`
	AvgCGPA              float64      `json:"avg_cgpa"`
	AvgExperienceYears   float64      `json:"avg_experience_years"`
	ComputedAt           time.Time    `json:"computed_at"`
}

// AnalyticsService computes dashboard statistics, optionally fronted
// by a Redis snapshot cache.
type AnalyticsService struct {
	db        *gorm.DB
	cache     *cache.AnalyticsCache // nil when caching is disabled
	topSkills int
}

// NewAnalyticsService creates an analytics service. c may be nil.
func NewAnalyticsService(db *gorm.DB, c *cache.AnalyticsCache, topSkills int) *AnalyticsService {
	if topSkills <= 0 {
		topSkills = 10
	}
	return &AnalyticsService{db: db, cache: c, topSkills: topSkills}
}

// GetOverview returns the headline counters, always computed live.
func (s *AnalyticsService) GetOverview() (*Overview, error) {
	var o Overview

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&o.TotalStudents, s.db.Model(&model.User{}).Where("role = ?", model.RoleStudent)},
		{&o.TotalAlumni, s.db.Model(&model.User{}).Where("role = ?", model.RoleAlumni)},
		{&o.PendingApprovals, s.db.Model(&model.ProfileApprovalRequest{}).Where("status = ?", model.ApprovalPending)},
		{&o.OpenTickets, s.db.Model(&model.SupportTicket{}).Where("status = ?", model.TicketOpen)},
		{&o.ActiveJobs, s.db.Model(&model.JobPosting{}).Where("is_active = ?", true)},
		{&o.TotalMessages, s.db.Model(&model.Message{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}
	return &o, nil
}

// GetAnalytics returns the full statistics snapshot, from cache when
// fresh, otherwise computed and re-cached. A cache failure only logs;
// the database result still flows.
func (s *AnalyticsService) GetAnalytics(ctx context.Context) (*Analytics, error) {
	if s.cache != nil {
		var cached Analytics
		hit, err := s.cache.Get(ctx, &cached)
		if err != nil {
			zap.L().Warn("analytics cache read failed", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	a, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, a); err != nil {
			zap.L().Warn("analytics cache write failed", zap.Error(err))
		}
	}

	if err := s.recordSnapshot(a); err != nil {
		zap.L().Warn("analytics snapshot persist failed", zap.Error(err))
	}

	return a, nil
}

// compute runs the aggregation queries.
func (s *AnalyticsService) compute() (*Analytics, error) {
	a := &Analytics{ComputedAt: time.Now()}

	var users []model.User
	if err := s.db.Select("role", "department", "created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	a.TotalUsers = int64(len(users))
	depts := map[string]int{}
	months := map[string]int{}
	for _, u := range users {
		switch u.Role {
		case model.RoleStudent:
			a.TotalStudents++
		case model.RoleAlumni:
			a.TotalAlumni++
		}

		dept := u.Department
		if dept == "" {
			dept = "Unknown"
		}
		depts[dept]++

		// Registration trend over the last six months.
		if u.CreatedAt.After(time.Now().AddDate(0, -6, 0)) {
			months[u.CreatedAt.Format("Jan 2006")]++
		}
	}
	if a.TotalUsers > 0 {
		a.StudentPercentage = float64(a.TotalStudents) / float64(a.TotalUsers) * 100
		a.AlumniPercentage = float64(a.TotalAlumni) / float64(a.TotalUsers) * 100
	}
	a.DeptDistribution = toNameCounts(depts)
	a.MonthlyRegistrations = toNameCounts(months)

	var students []model.StudentProfile
	if err := s.db.Select("cgpa", "skills").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	var alumni []model.AlumniProfile
	if err := s.db.Select("experience_years", "skills").Find(&alumni).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	skills := map[string]int{}
	var cgpaSum float64
	for _, p := range students {
		cgpaSum += p.CGPA
		for _, sk := range p.Skills {
			skills[sk]++
		}
	}
	var expSum int
	for _, p := range alumni {
		expSum += p.ExperienceYears
		for _, sk := range p.Skills {
			skills[sk]++
		}
	}
	if len(students) > 0 {
		a.AvgCGPA = cgpaSum / float64(len(students))
	}
	if len(alumni) > 0 {
		a.AvgExperienceYears = float64(expSum) / float64(len(alumni))
	}
	a.TopSkills = topSkillCounts(skills, s.topSkills)

	return a, nil
}

// recordSnapshot persists the headline metrics to the analytics table.
func (s *AnalyticsService) recordSnapshot(a *Analytics) error {
	now := time.Now()
	metrics := []model.AdminMetric{
		{MetricName: "total_users", MetricValue: float64(a.TotalUsers), DateRecorded: now},
		{MetricName: "total_students", MetricValue: float64(a.TotalStudents), DateRecorded: now},
		{MetricName: "total_alumni", MetricValue: float64(a.TotalAlumni), DateRecorded: now},
		{MetricName: "avg_cgpa", MetricValue: a.AvgCGPA, DateRecorded: now},
		{MetricName: "avg_experience_years", MetricValue: a.AvgExperienceYears, DateRecorded: now},
	}
	return s.db.Create(&metrics).Error
}

// toNameCounts flattens a counter map into a sorted slice, largest
// count first, name ascending on ties.
func toNameCounts(m map[string]int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, count := range m {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// topSkillCounts ranks skills and keeps the top n.
func topSkillCounts(m map[string]int, n int) []SkillCount {
	out := make([]SkillCount, 0, len(m))
	for skill, count := range m {
		out = append(out, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
