package db

import (
	"context"
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/TFMV/codegauge/schema"
	"github.com/TFMV/codegauge/types"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

func NewSurrealDB(config Config) (*SurrealDB, error) {
	db, err := surrealdb.New(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SurrealDB{
		db:     db,
		config: config,
	}, nil
}

func (s *SurrealDB) Initialize(ctx context.Context) error {
	if err := s.db.Use(s.config.Namespace, s.config.Database); err != nil {
		return fmt.Errorf("failed to set namespace/database: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: s.config.Username,
		Password: s.config.Password,
	}
	token, err := s.db.SignIn(authData)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	if err := s.db.Authenticate(token); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	return schema.InitializeSchema(s.db)
}

// StoreMetrics persists one run: a summary record plus one record per
// file and per function.
func (s *SurrealDB) StoreMetrics(ctx context.Context, dir string, m types.ComplexityMetrics) error {
	run := types.RunRecord{
		Directory:           dir,
		TotalFunctions:      m.TotalFunctions(),
		Average:             m.Average,
		Median:              m.Median,
		Max:                 m.Max,
		Min:                 m.Min,
		HighComplexity:      m.HighComplexity,
		MediumComplexity:    m.MediumComplexity,
		LowComplexity:       m.LowComplexity,
		CognitiveComplexity: m.CognitiveComplexity,
		Halstead:            m.Halstead,
	}
	if _, err := surrealdb.Create[types.RunRecord](s.db, models.Table("runs"), run); err != nil {
		return fmt.Errorf("error storing run summary: %w", err)
	}

	for _, file := range m.Files {
		rec := types.FileMetricsRecord{
			Directory:           dir,
			Path:                file.Path,
			Complexity:          file.Complexity,
			MaxComplexity:       file.MaxFunctionComplexity(),
			CognitiveComplexity: file.CognitiveComplexity,
		}
		if _, err := surrealdb.Create[types.FileMetricsRecord](s.db, models.Table("file_metrics"), rec); err != nil {
			return fmt.Errorf("error storing file %s: %w", file.Path, err)
		}

		for _, fn := range file.Functions {
			rec := types.FunctionMetricsRecord{
				Directory:  dir,
				Path:       file.Path,
				Name:       fn.Name,
				Complexity: fn.Complexity,
				Line:       fn.Line,
				Column:     fn.Column,
			}
			if _, err := surrealdb.Create[types.FunctionMetricsRecord](s.db, models.Table("function_metrics"), rec); err != nil {
				return fmt.Errorf("error storing function %s: %w", fn.Name, err)
			}
		}
	}

	return nil
}
