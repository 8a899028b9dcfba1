package models

// Read shapes composed by the storage service. Joined fields are nil when the
// reference is empty or points at a record that no longer exists.

type StudentWithBatch struct {
	Student
	Batch                 *Batch           `json:"batch,omitempty"`
	LatestSkillAssessment *SkillAssessment `json:"latestSkillAssessment,omitempty"`
}

type AttendanceWithStudent struct {
	Attendance
	Student *Student `json:"student"`
}

type SessionWithDetails struct {
	Session
	Batch      *Batch                  `json:"batch,omitempty"`
	Coach      *User                   `json:"coach,omitempty"`
	Attendance []AttendanceWithStudent `json:"attendance"`
}

type TrainingPlanWithDetails struct {
	TrainingPlan
	Student *Student `json:"student,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
	Creator *User    `json:"creator,omitempty"`
}

type DashboardStats struct {
	SessionsToday      int    `json:"sessionsToday"`
	ActiveStudents     int    `json:"activeStudents"`
	TotalStudents      int    `json:"totalStudents"`
	AtRiskStudents     int    `json:"atRiskStudents"`
	AverageImprovement string `json:"averageImprovement"`
}

// AttendanceSummary condenses a student's attendance history.
type AttendanceSummary struct {
	StudentID uint `json:"studentId"`
	Total     int  `json:"total"`
	Present   int  `json:"present"`
	// Rate is the present percentage, 0 when nothing was marked.
	Rate float64 `json:"rate"`
	// ConsecutiveMissed counts absences back from the most recent session.
	ConsecutiveMissed int `json:"consecutiveMissed"`
}
