package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nascli/pkg/contracts/domain"
)

func TestOutcomeDescription(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		wantFound   bool
		wantSubject domain.Subject
	}{
		{name: "math outcome", code: "M601", wantFound: true, wantSubject: domain.SubjectMathematics},
		{name: "science outcome", code: "Sci703", wantFound: true, wantSubject: domain.SubjectScience},
		{name: "social science outcome", code: "Sst605", wantFound: true, wantSubject: domain.SubjectSocialScience},
		{name: "language outcome", code: "L813", wantFound: true, wantSubject: domain.SubjectLanguage},
		{name: "unknown code", code: "X999", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, ok := OutcomeDescription(tt.code)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.code, lo.Code)
				assert.Equal(t, tt.wantSubject, lo.Subject)
				assert.NotEmpty(t, lo.Description)
			}
		})
	}
}

func TestOutcomesSortedByCode(t *testing.T) {
	outcomes := Outcomes()
	require.NotEmpty(t, outcomes)

	for i := 1; i < len(outcomes); i++ {
		assert.Less(t, outcomes[i-1].Code, outcomes[i].Code)
	}
}

func TestOutcomesBySubject(t *testing.T) {
	total := 0
	for _, s := range domain.Subjects() {
		subset := OutcomesBySubject(s)
		require.NotEmpty(t, subset, "subject %s has no outcomes", s)
		for _, lo := range subset {
			assert.Equal(t, s, lo.Subject)
		}
		total += len(subset)
	}
	assert.Equal(t, len(Outcomes()), total, "subject partitions must cover the glossary")
}

func TestRegionForState(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{"Kerala", "South"},
		{"Punjab", "North"},
		{"Bihar", "East"},
		{"Goa", "West"},
		{"Uttar Pradesh", "Central"},
		{"Sikkim", "Northeast"},
		{"Lakshadweep", "Islands"},
		{"Puducherry", RegionOther}, // unmapped states fall into Other
		{"", RegionOther},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, RegionForState(tt.state))
		})
	}
}

func TestRegionsIncludesOther(t *testing.T) {
	regions := Regions()
	assert.Contains(t, regions, RegionOther)
	assert.Contains(t, regions, "North")
	for i := 1; i < len(regions); i++ {
		assert.Less(t, regions[i-1], regions[i])
	}
}
