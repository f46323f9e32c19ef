package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeeklyGoal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  weeklyGoal
	}{
		{
			name:  "string encoded numbers",
			input: `{"Weekly Goal": {"target_water_intake_ml": "1000", "target_steps": "7000", "description": "Drink more water."}}`,
			want:  weeklyGoal{TargetWaterIntakeML: 1000, TargetSteps: 7000, Description: "Drink more water."},
		},
		{
			name:  "bare numbers",
			input: `{"Weekly Goal": {"target_water_intake_ml": 2000, "target_steps": 8500.0, "description": "Walk after lunch."}}`,
			want:  weeklyGoal{TargetWaterIntakeML: 2000, TargetSteps: 8500, Description: "Walk after lunch."},
		},
		{
			name:  "grouped digits in a fenced block",
			input: "```json\n{\"Weekly Goal\": {\"target_water_intake_ml\": \"1,500\", \"target_steps\": \"10,000\", \"description\": \" Keep going. \"}}\n```",
			want:  weeklyGoal{TargetWaterIntakeML: 1500, TargetSteps: 10000, Description: "Keep going."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal, err := parseWeeklyGoal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *goal)
		})
	}
}

func TestParseWeeklyGoal_Rejects(t *testing.T) {
	inputs := map[string]string{
		"not json":          "Drink more water!",
		"missing envelope":  `{"target_steps": "7000"}`,
		"non numeric":       `{"Weekly Goal": {"target_water_intake_ml": "lots", "target_steps": "7000"}}`,
		"zero target":       `{"Weekly Goal": {"target_water_intake_ml": "0", "target_steps": "7000", "description": "Rest."}}`,
		"nan target":        `{"Weekly Goal": {"target_water_intake_ml": "NaN", "target_steps": "7000", "description": "Rest."}}`,
		"infinite target":   `{"Weekly Goal": {"target_water_intake_ml": "1000", "target_steps": "Inf", "description": "Rest."}}`,
		"huge target":       `{"Weekly Goal": {"target_water_intake_ml": "1e30", "target_steps": "7000", "description": "Rest."}}`,
		"fractional":        `{"Weekly Goal": {"target_water_intake_ml": 1500.5, "target_steps": "7000", "description": "Rest."}}`,
		"empty description": `{"Weekly Goal": {"target_water_intake_ml": "1000", "target_steps": "7000", "description": "  "}}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			goal, err := parseWeeklyGoal(input)
			assert.Nil(t, goal)
			assert.Error(t, err)
		})
	}
}
