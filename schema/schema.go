package schema

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// InitializeSchema sets up the database schema and indexes for the
// complexity metrics history.
func InitializeSchema(db *surrealdb.DB) error {
	schemas := []string{
		// One record per analysis run
		`DEFINE TABLE runs SCHEMAFULL;
		 DEFINE FIELD directory ON runs TYPE string;
		 DEFINE FIELD total_functions ON runs TYPE int;
		 DEFINE FIELD average ON runs TYPE float;
		 DEFINE FIELD median ON runs TYPE int;
		 DEFINE FIELD max ON runs TYPE int;
		 DEFINE FIELD min ON runs TYPE int;
		 DEFINE FIELD high_complexity ON runs TYPE int;
		 DEFINE FIELD medium_complexity ON runs TYPE int;
		 DEFINE FIELD low_complexity ON runs TYPE int;
		 DEFINE FIELD cognitive_complexity ON runs TYPE int;
		 DEFINE FIELD halstead_metrics ON runs FLEXIBLE TYPE object;
		 DEFINE FIELD created_at ON runs TYPE datetime DEFAULT time::now();
		 DEFINE INDEX run_directory ON runs FIELDS directory;`,

		// Per-file complexity
		`DEFINE TABLE file_metrics SCHEMAFULL;
		 DEFINE FIELD directory ON file_metrics TYPE string;
		 DEFINE FIELD path ON file_metrics TYPE string;
		 DEFINE FIELD complexity ON file_metrics TYPE int;
		 DEFINE FIELD max_complexity ON file_metrics TYPE int;
		 DEFINE FIELD cognitive_complexity ON file_metrics TYPE int;
		 DEFINE FIELD created_at ON file_metrics TYPE datetime DEFAULT time::now();
		 DEFINE INDEX file_path ON file_metrics FIELDS path;
		 DEFINE INDEX file_max ON file_metrics FIELDS max_complexity;`,

		// Per-function complexity
		`DEFINE TABLE function_metrics SCHEMAFULL;
		 DEFINE FIELD directory ON function_metrics TYPE string;
		 DEFINE FIELD path ON function_metrics TYPE string;
		 DEFINE FIELD name ON function_metrics TYPE string;
		 DEFINE FIELD complexity ON function_metrics TYPE int;
		 DEFINE FIELD line ON function_metrics TYPE int;
		 DEFINE FIELD column ON function_metrics TYPE int;
		 DEFINE FIELD created_at ON function_metrics TYPE datetime DEFAULT time::now();
		 DEFINE INDEX function_name ON function_metrics FIELDS name;
		 DEFINE INDEX function_path ON function_metrics FIELDS path;
		 DEFINE INDEX function_complexity ON function_metrics FIELDS complexity;`,
	}

	// Execute each schema definition
	for _, schema := range schemas {
		if _, err := surrealdb.Query[any](db, schema, map[string]interface{}{}); err != nil {
			return fmt.Errorf("schema initialization error: %w", err)
		}
	}

	return nil
}
