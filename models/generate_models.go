package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GenerateModels regenerates typed query helpers for the document tables.
// Run with GENERATE_MODELS=true; output lands in ./generated and is checked
// against the live schema, so the database must be reachable.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:          "./generated",
		Mode:             gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:    true,
		FieldCoverable:   true,
		FieldWithTypeTag: true,
	})

	g.UseDB(db)
	g.ApplyBasic(g.GenerateModel("project_documents"))
	g.Execute()

	fmt.Println("Model generation complete")
}
