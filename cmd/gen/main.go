// Command gen writes the typed gorm query helpers for the Livewell tables.
package main

import (
	"livewell/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MedicationModel{},
		model.VaccinationModel{},
		model.ProfileModel{},
		model.TrackingModel{},
		model.DeviceTokenModel{},
		model.GoalRecommendationModel{},
		model.RecommendationStagingModel{},
		model.AuthUserModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
