package models

import "time"

// Insert shapes. Server-assigned fields (id, createdAt, defaults) are absent.

type NewUser struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	AcademyName string `json:"academyName"`
}

type NewBatch struct {
	Name     string `json:"name"`
	AgeGroup string `json:"ageGroup"`
	Level    Level  `json:"level"`
	CoachID  *uint  `json:"coachId"`
}

type NewStudent struct {
	Name            string        `json:"name"`
	Age             int           `json:"age"`
	Email           *string       `json:"email"`
	Phone           *string       `json:"phone"`
	ParentName      *string       `json:"parentName"`
	ParentPhone     *string       `json:"parentPhone"`
	BatchID         *uint         `json:"batchId"`
	ProfileImageURL *string       `json:"profileImageUrl"`
	Status          StudentStatus `json:"status"`
}

type NewSkillAssessment struct {
	StudentID   uint    `json:"studentId"`
	SessionID   *uint   `json:"sessionId"`
	Serve       int     `json:"serve"`
	Footwork    int     `json:"footwork"`
	Stamina     int     `json:"stamina"`
	MentalFocus int     `json:"mentalFocus"`
	Notes       *string `json:"notes"`
	AssessedBy  *uint   `json:"assessedBy"`
}

type NewSession struct {
	BatchID  uint      `json:"batchId"`
	CoachID  uint      `json:"coachId"`
	Date     time.Time `json:"date"`
	Duration *int      `json:"duration"`
	Court    *string   `json:"court"`
	Notes    *string   `json:"notes"`
}

type NewAttendance struct {
	SessionID uint    `json:"sessionId"`
	StudentID uint    `json:"studentId"`
	Present   *bool   `json:"present"`
	Notes     *string `json:"notes"`
}

type NewTrainingPlan struct {
	StudentID   *uint             `json:"studentId"`
	BatchID     *uint             `json:"batchId"`
	Week        int               `json:"week"`
	FocusAreas  []string          `json:"focusAreas"`
	Drills      *GeneratedContent `json:"drills"`
	Notes       *string           `json:"notes"`
	Status      PlanStatus        `json:"status"`
	GeneratedBy string            `json:"generatedBy"`
	CreatedBy   *uint             `json:"createdBy"`
}

type NewProgressSummary struct {
	StudentID       uint     `json:"studentId"`
	Week            int      `json:"week"`
	Summary         string   `json:"summary"`
	Improvements    []string `json:"improvements"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
	GeneratedBy     string   `json:"generatedBy"`
}

type NewDrillRecommendation struct {
	Query           string            `json:"query"`
	Recommendations *GeneratedContent `json:"recommendations"`
	AgeGroup        *string           `json:"ageGroup"`
	SkillLevel      *string           `json:"skillLevel"`
	CreatedBy       *uint             `json:"createdBy"`
}

// Partial updates. A nil pointer leaves the field untouched; Nullable fields
// can also be cleared with an explicit null.

type UserPatch struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	Role        *Role   `json:"role"`
	AcademyName *string `json:"academyName"`
}

type BatchPatch struct {
	Name     *string        `json:"name"`
	AgeGroup *string        `json:"ageGroup"`
	Level    *Level         `json:"level"`
	CoachID  Nullable[uint] `json:"coachId"`
}

type StudentPatch struct {
	Name            *string          `json:"name"`
	Age             *int             `json:"age"`
	Email           Nullable[string] `json:"email"`
	Phone           Nullable[string] `json:"phone"`
	ParentName      Nullable[string] `json:"parentName"`
	ParentPhone     Nullable[string] `json:"parentPhone"`
	BatchID         Nullable[uint]   `json:"batchId"`
	ProfileImageURL Nullable[string] `json:"profileImageUrl"`
	Status          *StudentStatus   `json:"status"`
}

type SkillAssessmentPatch struct {
	Serve       *int             `json:"serve"`
	Footwork    *int             `json:"footwork"`
	Stamina     *int             `json:"stamina"`
	MentalFocus *int             `json:"mentalFocus"`
	Notes       Nullable[string] `json:"notes"`
}

type SessionPatch struct {
	BatchID  *uint            `json:"batchId"`
	CoachID  *uint            `json:"coachId"`
	Date     *time.Time       `json:"date"`
	Duration Nullable[int]    `json:"duration"`
	Court    Nullable[string] `json:"court"`
	Status   *SessionStatus   `json:"status"`
	Notes    Nullable[string] `json:"notes"`
}

type TrainingPlanPatch struct {
	StudentID  Nullable[uint]    `json:"studentId"`
	BatchID    Nullable[uint]    `json:"batchId"`
	Week       *int              `json:"week"`
	FocusAreas *[]string         `json:"focusAreas"`
	Drills     *GeneratedContent `json:"drills"`
	Notes      Nullable[string]  `json:"notes"`
	Status     *PlanStatus       `json:"status"`
}

// List filters. Nil fields do not filter.

type BatchFilter struct {
	CoachID *uint
}

type StudentFilter struct {
	BatchID *uint
	Status  *StudentStatus
}

type SessionFilter struct {
	BatchID *uint
	// Date matches sessions on the same calendar day in the service location.
	Date *time.Time
}

type TrainingPlanFilter struct {
	StudentID *uint
	BatchID   *uint
}
