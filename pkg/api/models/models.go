package models

// All lists models in dependency order for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Organization{},
		&Installation{},
		&Repository{},
		&Analysis{},
		&AnalysisResult{},
	}
}
