package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Drill is a single coached exercise.
type Drill struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Equipment   []string `json:"equipment"`
	Steps       []string `json:"steps"`
}

// PlanDay groups the drills scheduled for one or more days of a week.
type PlanDay struct {
	Day    string  `json:"day"`
	Drills []Drill `json:"drills"`
	Notes  string  `json:"notes,omitempty"`
}

// WeeklyPlan is a generated week of training.
type WeeklyPlan struct {
	Week          int       `json:"week"`
	FocusAreas    []string  `json:"focusAreas"`
	Days          []PlanDay `json:"days"`
	ProgressGoals []string  `json:"progressGoals"`
}

type ContentKind string

const (
	ContentWeeklyPlan ContentKind = "weekly_plan"
	ContentDrillList  ContentKind = "drill_list"
)

// CurrentContentVersion is the schema version written by this build.
const CurrentContentVersion = 1

// GeneratedContent is AI-shaped content persisted on training plans and
// drill recommendations. Exactly one of Plan or Drills is set, matching Kind.
type GeneratedContent struct {
	Kind    ContentKind `json:"kind"`
	Version int         `json:"version"`
	Plan    *WeeklyPlan `json:"plan,omitempty"`
	Drills  []Drill     `json:"drills,omitempty"`
}

func NewPlanContent(p WeeklyPlan) *GeneratedContent {
	return &GeneratedContent{Kind: ContentWeeklyPlan, Version: CurrentContentVersion, Plan: &p}
}

func NewDrillContent(d []Drill) *GeneratedContent {
	if d == nil {
		d = []Drill{}
	}
	return &GeneratedContent{Kind: ContentDrillList, Version: CurrentContentVersion, Drills: d}
}

// Validate checks that the variant tag matches the payload.
func (g *GeneratedContent) Validate() error {
	if g.Version < 1 || g.Version > CurrentContentVersion {
		return fmt.Errorf("generated content: unsupported version %d", g.Version)
	}
	switch g.Kind {
	case ContentWeeklyPlan:
		if g.Plan == nil || g.Drills != nil {
			return fmt.Errorf("generated content: %s must carry only a plan", g.Kind)
		}
	case ContentDrillList:
		if g.Plan != nil {
			return fmt.Errorf("generated content: %s must not carry a plan", g.Kind)
		}
	default:
		return fmt.Errorf("generated content: unknown kind %q", g.Kind)
	}
	return nil
}

// Clone deep-copies the content.
func (g *GeneratedContent) Clone() *GeneratedContent {
	if g == nil {
		return nil
	}
	out := &GeneratedContent{Kind: g.Kind, Version: g.Version, Drills: cloneDrills(g.Drills)}
	if g.Plan != nil {
		p := *g.Plan
		p.FocusAreas = cloneStrings(g.Plan.FocusAreas)
		p.ProgressGoals = cloneStrings(g.Plan.ProgressGoals)
		if g.Plan.Days != nil {
			p.Days = make([]PlanDay, len(g.Plan.Days))
			for i, d := range g.Plan.Days {
				d.Drills = cloneDrills(d.Drills)
				p.Days[i] = d
			}
		}
		out.Plan = &p
	}
	return out
}

func (g GeneratedContent) Value() (driver.Value, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes and validates a stored payload.
func (g *GeneratedContent) Scan(src interface{}) error {
	b, err := columnBytes("GeneratedContent", src)
	if err != nil {
		return err
	}
	if b == nil {
		*g = GeneratedContent{}
		return nil
	}
	var decoded GeneratedContent
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*g = decoded
	return nil
}

func (GeneratedContent) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return jsonColumnType(db)
}

func cloneDrills(in []Drill) []Drill {
	if in == nil {
		return nil
	}
	out := make([]Drill, len(in))
	for i, d := range in {
		d.Equipment = cloneStrings(d.Equipment)
		d.Steps = cloneStrings(d.Steps)
		out[i] = d
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
