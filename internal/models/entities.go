package models

import "time"

type Role string

const (
	RoleCoach Role = "coach"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleCoach || r == RoleAdmin }

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) Valid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
	StudentAtRisk   StudentStatus = "at_risk"
)

func (s StudentStatus) Valid() bool {
	return s == StudentActive || s == StudentInactive || s == StudentAtRisk
}

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

func (s SessionStatus) Valid() bool {
	return s == SessionScheduled || s == SessionActive || s == SessionCompleted
}

// Rank orders session statuses along their lifecycle.
func (s SessionStatus) Rank() int {
	switch s {
	case SessionScheduled:
		return 0
	case SessionActive:
		return 1
	case SessionCompleted:
		return 2
	}
	return -1
}

type PlanStatus string

const (
	PlanGenerated PlanStatus = "generated"
	PlanApproved  PlanStatus = "approved"
	PlanModified  PlanStatus = "modified"
)

func (s PlanStatus) Valid() bool {
	return s == PlanGenerated || s == PlanApproved || s == PlanModified
}

// GeneratedByAI is the default author tag of generated records.
const GeneratedByAI = "ai"

// User is a coach or administrator account.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	Role        Role      `json:"role" gorm:"not null;default:coach"`
	AcademyName string    `json:"academyName" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Batch is a cohort of students coached together.
type Batch struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	AgeGroup  string    `json:"ageGroup" gorm:"not null"`
	Level     Level     `json:"level" gorm:"not null"`
	CoachID   *uint     `json:"coachId" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
}

type Student struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Name            string        `json:"name" gorm:"not null"`
	Age             int           `json:"age" gorm:"not null"`
	Email           *string       `json:"email"`
	Phone           *string       `json:"phone"`
	ParentName      *string       `json:"parentName"`
	ParentPhone     *string       `json:"parentPhone"`
	BatchID         *uint         `json:"batchId" gorm:"index"`
	ProfileImageURL *string       `json:"profileImageUrl"`
	Status          StudentStatus `json:"status" gorm:"not null;default:active;index"`
	JoinDate        time.Time     `json:"joinDate"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type SkillAssessment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"studentId" gorm:"not null;index"`
	SessionID   *uint     `json:"sessionId"`
	Serve       int       `json:"serve" gorm:"not null"`
	Footwork    int       `json:"footwork" gorm:"not null"`
	Stamina     int       `json:"stamina" gorm:"not null"`
	MentalFocus int       `json:"mentalFocus" gorm:"not null"`
	Overall     int       `json:"overall" gorm:"not null"`
	Notes       *string   `json:"notes"`
	AssessedBy  *uint     `json:"assessedBy"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

// Skills returns the four sub-scores.
func (a *SkillAssessment) Skills() SkillScores {
	return SkillScores{Serve: a.Serve, Footwork: a.Footwork, Stamina: a.Stamina, MentalFocus: a.MentalFocus}
}

// Session is one coaching occurrence of a batch.
type Session struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	BatchID   uint          `json:"batchId" gorm:"not null;index"`
	Date      time.Time     `json:"date" gorm:"not null;index"`
	Duration  *int          `json:"duration"`
	Court     *string       `json:"court"`
	Status    SessionStatus `json:"status" gorm:"not null;default:scheduled"`
	Notes     *string       `json:"notes"`
	CoachID   uint          `json:"coachId" gorm:"not null"`
	CreatedAt time.Time     `json:"createdAt"`
}

type Attendance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID uint      `json:"sessionId" gorm:"not null;uniqueIndex:idx_attendance_session_student"`
	StudentID uint      `json:"studentId" gorm:"not null;uniqueIndex:idx_attendance_session_student;index"`
	Present   bool      `json:"present" gorm:"not null;default:false"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Attendance) TableName() string { return "attendance" }

type TrainingPlan struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	StudentID   *uint             `json:"studentId" gorm:"index"`
	BatchID     *uint             `json:"batchId" gorm:"index"`
	Week        int               `json:"week" gorm:"not null"`
	FocusAreas  StringSlice       `json:"focusAreas"`
	Drills      *GeneratedContent `json:"drills"`
	Notes       *string           `json:"notes"`
	Status      PlanStatus        `json:"status" gorm:"not null;default:generated"`
	GeneratedBy string            `json:"generatedBy" gorm:"not null;default:ai"`
	CreatedBy   *uint             `json:"createdBy"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type ProgressSummary struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	StudentID       uint        `json:"studentId" gorm:"not null;index"`
	Week            int         `json:"week" gorm:"not null"`
	Summary         string      `json:"summary" gorm:"not null"`
	Improvements    StringSlice `json:"improvements"`
	Concerns        StringSlice `json:"concerns"`
	Recommendations StringSlice `json:"recommendations"`
	GeneratedBy     string      `json:"generatedBy" gorm:"not null;default:ai"`
	CreatedAt       time.Time   `json:"createdAt" gorm:"index"`
}

// DrillRecommendation records one drill query and its answer.
type DrillRecommendation struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	Query           string            `json:"query" gorm:"not null"`
	Recommendations *GeneratedContent `json:"recommendations"`
	AgeGroup        *string           `json:"ageGroup"`
	SkillLevel      *string           `json:"skillLevel"`
	CreatedBy       *uint             `json:"createdBy"`
	CreatedAt       time.Time         `json:"createdAt" gorm:"index"`
}

// SkillScores are the four assessed sub-skills on a 1-10 scale.
type SkillScores struct {
	Serve       int `json:"serve"`
	Footwork    int `json:"footwork"`
	Stamina     int `json:"stamina"`
	MentalFocus int `json:"mentalFocus"`
}
