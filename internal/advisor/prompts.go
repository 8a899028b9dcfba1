package advisor

import (
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

const (
	planSystemPrompt     = "You are an expert tennis coach AI with 20+ years of experience in tennis training and player development. Generate practical, age-appropriate training plans that focus on skill progression and player safety."
	progressSystemPrompt = "You are an expert tennis coach AI that provides detailed progress analysis for tennis students. Focus on specific, actionable insights and recommendations."
	drillSystemPrompt    = "You are an expert tennis coach AI. Provide practical, safe, and effective tennis drills that are appropriate for the specified age group and skill level. Focus on clear, step-by-step instructions."
	riskSystemPrompt     = "You are an expert tennis coach AI specializing in student retention and motivation. Provide practical, empathetic interventions that address both technical and motivational aspects of tennis training."
)

const drillJSONShape = `{
  "name": "Drill Name",
  "description": "Brief description",
  "duration": "15-20 mins",
  "difficulty": "beginner/intermediate/advanced",
  "equipment": ["racket", "balls"],
  "steps": ["step1", "step2", "step3"]
}`

func writeSkills(b *strings.Builder, title string, s models.SkillScores) {
	fmt.Fprintf(b, "%s (1-10 scale):\n", title)
	fmt.Fprintf(b, "- Serve: %d\n- Footwork: %d\n- Stamina: %d\n- Mental Focus: %d\n", s.Serve, s.Footwork, s.Stamina, s.MentalFocus)
}

func planPrompt(req PlanRequest) string {
	var b strings.Builder
	b.WriteString("Generate a comprehensive weekly training plan for a tennis student with the following details:\n\n")
	fmt.Fprintf(&b, "Student: %s\nAge: %d\nCurrent Skill Level: %s\n", req.StudentName, req.Age, req.SkillLevel)
	writeSkills(&b, "Current Skills", req.Skills)
	if len(req.FocusAreas) > 0 {
		fmt.Fprintf(&b, "\nPriority Focus Areas: %s\n", strings.Join(req.FocusAreas, ", "))
	}
	b.WriteString(`
Create a detailed training plan that includes:
1. Main focus areas for improvement
2. Daily drill recommendations (4-5 days)
3. Specific drills with steps, duration, and equipment needed
4. Progress goals for the week

Format the response as JSON with this structure:
{
  "week": 1,
  "focusAreas": ["area1", "area2"],
  "days": [{"day": "Day 1-2", "drills": [` + drillJSONShape + `], "notes": "Additional coaching notes"}],
  "progressGoals": ["goal1", "goal2"]
}`)
	return b.String()
}

func progressPrompt(req ProgressRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the weekly progress for tennis student %s and provide insights:\n\n", req.StudentName)
	writeSkills(&b, "Previous Week Skills", req.Previous)
	b.WriteString("\n")
	writeSkills(&b, "Current Week Skills", req.Current)
	fmt.Fprintf(&b, "\nSession Notes: %s\nAttendance Rate: %.1f%%\n", strings.Join(req.SessionNotes, ". "), req.AttendanceRate)
	b.WriteString(`
Provide a comprehensive progress analysis in JSON format:
{
  "summary": "Overall progress summary in 2-3 sentences",
  "improvements": ["specific improvement 1", "specific improvement 2"],
  "concerns": ["concern 1", "concern 2"],
  "recommendations": ["recommendation 1", "recommendation 2"],
  "nextWeekFocus": ["focus area 1", "focus area 2"]
}`)
	return b.String()
}

func drillPrompt(req DrillRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide tennis drill recommendations for the following request:\n\nQuery: %q\n", req.Query)
	if req.AgeGroup != "" {
		fmt.Fprintf(&b, "Age Group: %s\n", req.AgeGroup)
	}
	if req.SkillLevel != "" {
		fmt.Fprintf(&b, "Skill Level: %s\n", req.SkillLevel)
	}
	b.WriteString("\nGenerate 3-5 specific tennis drills that address this request. Format as JSON:\n{\n  \"drills\": [" + drillJSONShape + "]\n}")
	return b.String()
}

func riskPrompt(req RiskRequest) string {
	scores := make([]string, len(req.SkillProgression))
	for i, s := range req.SkillProgression {
		scores[i] = fmt.Sprint(s)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze dropout risk for tennis student %s and create a retention plan:\n\n", req.StudentName)
	fmt.Fprintf(&b, "Student Details:\n- Attendance Rate: %.1f%%\n- Skill Progression: %s (recent scores)\n", req.AttendanceRate, strings.Join(scores, " -> "))
	fmt.Fprintf(&b, "- Consecutive Missed Sessions: %d\n- Recent Session Notes: %s\n", req.MissedSessions, strings.Join(req.SessionNotes, ". "))
	b.WriteString(`
Analyze the risk factors and create an action plan in JSON format:
{
  "riskFactors": ["factor1", "factor2"],
  "interventions": ["intervention1", "intervention2"],
  "timeline": "2-4 weeks",
  "successMetrics": ["metric1", "metric2"]
}`)
	return b.String()
}
