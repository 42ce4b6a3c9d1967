package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Migrate creates or updates the backing table for every document collection.
func (d Database) Migrate() error {
	return d.projectRepo.db.AutoMigrate(&ProjectDocument{})
}
