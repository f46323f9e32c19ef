package impl

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type weeklyGoal struct {
	TargetWaterIntakeML int
	TargetSteps         int
	Description         string
}

type weeklyGoalEnvelope struct {
	WeeklyGoal *struct {
		TargetWaterIntakeML flexibleInt `json:"target_water_intake_ml"`
		TargetSteps         flexibleInt `json:"target_steps"`
		Description         string      `json:"description"`
	} `json:"Weekly Goal"`
}

// flexibleInt accepts 7000, 7000.0, "7000" and "7,000".
type flexibleInt int

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.ReplaceAll(strings.TrimSpace(unquoted), ",", "")
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Errorf("%s is not a number", data)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return errors.Errorf("%s is not a whole number", data)
	}
	if n < 0 || n > math.MaxInt32 {
		return errors.Errorf("%s is out of range", data)
	}

	*f = flexibleInt(n)

	return nil
}

// parseWeeklyGoal decodes the model's JSON answer.
func parseWeeklyGoal(text string) (*weeklyGoal, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	var envelope weeklyGoalEnvelope
	decoder := json.NewDecoder(strings.NewReader(text))
	if err := decoder.Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "invalid weekly goal json")
	}

	if envelope.WeeklyGoal == nil {
		return nil, errors.New(`weekly goal json has no "Weekly Goal" object`)
	}

	goal := &weeklyGoal{
		TargetWaterIntakeML: int(envelope.WeeklyGoal.TargetWaterIntakeML),
		TargetSteps:         int(envelope.WeeklyGoal.TargetSteps),
		Description:         strings.TrimSpace(envelope.WeeklyGoal.Description),
	}

	if goal.TargetSteps <= 0 || goal.TargetWaterIntakeML <= 0 {
		return nil, errors.Errorf("weekly goal targets must be positive, got steps=%d water=%d",
			goal.TargetSteps, goal.TargetWaterIntakeML)
	}
	if goal.Description == "" {
		return nil, errors.New("weekly goal has no description")
	}

	return goal, nil
}
