package domain

import (
	"strings"

	"github.com/volatiletech/null/v8"
)

// Subject identifies one of the four assessed subject areas in the
// National Achievement Survey.
type Subject string

const (
	SubjectMathematics   Subject = "mathematics"
	SubjectScience       Subject = "science"
	SubjectSocialScience Subject = "social_science"
	SubjectLanguage      Subject = "language"
)

// Subjects returns the four subject areas in canonical display order.
func Subjects() []Subject {
	return []Subject{
		SubjectMathematics,
		SubjectScience,
		SubjectSocialScience,
		SubjectLanguage,
	}
}

// ParseSubject converts an API-facing string into a Subject.
func ParseSubject(s string) (Subject, bool) {
	switch Subject(strings.ToLower(strings.TrimSpace(s))) {
	case SubjectMathematics:
		return SubjectMathematics, true
	case SubjectScience:
		return SubjectScience, true
	case SubjectSocialScience:
		return SubjectSocialScience, true
	case SubjectLanguage:
		return SubjectLanguage, true
	}
	return "", false
}

// SurveyRecord is one district-year observation from the NAS dataset.
// Scores maps learning-outcome codes (e.g. "M601", "Sci703") to the
// percentage of students who achieved that outcome. Codes with no value
// in the source row are simply absent from the map; they are never
// zero-filled.
type SurveyRecord struct {
	Country          string             `json:"country"`
	State            string             `json:"state"`
	District         string             `json:"district"`
	Year             null.Int           `json:"year"`
	Class            int                `json:"class"`
	SchoolsSurveyed  int64              `json:"schools_surveyed"`
	StudentsSurveyed int64              `json:"students_surveyed"`
	Scores           map[string]float64 `json:"scores"`
}

// PerformanceScores holds the derived subject averages and the overall
// average for a record or a group. Each field is absent (not zero) when
// no backing values exist, so a missing subject never drags an average
// toward zero.
type PerformanceScores struct {
	Mathematics   null.Float64 `json:"mathematics"`
	Science       null.Float64 `json:"science"`
	SocialScience null.Float64 `json:"social_science"`
	Language      null.Float64 `json:"language"`
	Overall       null.Float64 `json:"overall"`
}

// Subject returns the average for the given subject area.
func (p PerformanceScores) Subject(s Subject) null.Float64 {
	switch s {
	case SubjectMathematics:
		return p.Mathematics
	case SubjectScience:
		return p.Science
	case SubjectSocialScience:
		return p.SocialScience
	case SubjectLanguage:
		return p.Language
	}
	return null.Float64{}
}

// SetSubject stores the average for the given subject area.
func (p *PerformanceScores) SetSubject(s Subject, v null.Float64) {
	switch s {
	case SubjectMathematics:
		p.Mathematics = v
	case SubjectScience:
		p.Science = v
	case SubjectSocialScience:
		p.SocialScience = v
	case SubjectLanguage:
		p.Language = v
	}
}

// GroupSummary aggregates record-level averages across all records that
// share a grouping key (state, district or region).
type GroupSummary struct {
	Key              string            `json:"key"`
	Records          int               `json:"records"`
	SchoolsSurveyed  int64             `json:"schools_surveyed"`
	StudentsSurveyed int64             `json:"students_surveyed"`
	Scores           PerformanceScores `json:"scores"`
}

// LearningOutcome describes one assessed skill for display purposes.
type LearningOutcome struct {
	Code         string  `json:"code"`
	Subject      Subject `json:"subject"`
	Description  string  `json:"description"`
	Significance string  `json:"significance,omitempty"`
}
