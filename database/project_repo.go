package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
)

// ProjectDocument is one row of the "projects" document collection: a stable
// document id plus a schemaless field map. The id lives in the key column
// only; it is stripped from the stored field map and re-attached on read.
type ProjectDocument struct {
	ID   string            `gorm:"type:text;primaryKey"`
	Data datatypes.JSONMap `gorm:"type:jsonb;not null"`
}

func (ProjectDocument) TableName() string { return "project_documents" }

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project document with its store-assigned identity
// mapped onto the project's id field.
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	var docs []ProjectDocument
	if err := r.db.WithContext(ctx).Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(docs))
	for _, doc := range docs {
		project, err := fromFieldMap(doc.ID, doc.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding document %s: %w", doc.ID, err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// Add persists a new document and returns the store-assigned identity.
func (r *ProjectRepo) Add(ctx context.Context, project models.Project) (string, error) {
	fields, err := toFieldMap(project)
	if err != nil {
		return "", err
	}

	doc := ProjectDocument{ID: uuid.NewString(), Data: fields}
	if err := r.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", err
	}
	return doc.ID, nil
}

// Update overwrites the full field set of the document keyed by id.
func (r *ProjectRepo) Update(ctx context.Context, id string, project models.Project) error {
	fields, err := toFieldMap(project)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProjectDocument{}).
		Where("id = ?", id).
		Update("data", fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewDocumentNotFoundError(id)
	}
	return nil
}

// Delete removes the document keyed by id.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&ProjectDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewDocumentNotFoundError(id)
	}
	return nil
}

// Put writes a document under a caller-specified identity, creating or
// replacing it.
func (r *ProjectRepo) Put(ctx context.Context, id string, project models.Project) error {
	return put(r.db.WithContext(ctx), id, project)
}

func put(db *gorm.DB, id string, project models.Project) error {
	fields, err := toFieldMap(project)
	if err != nil {
		return err
	}

	doc := ProjectDocument{ID: id, Data: fields}
	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&doc).Error
}

// ReplaceAll atomically deletes every document in the collection and writes
// the given projects back under their own ids, through the same upsert path
// as Put. A failure anywhere rolls the whole replacement back.
func (r *ProjectRepo) ReplaceAll(ctx context.Context, projects []models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ProjectDocument{}).Error; err != nil {
			return err
		}
		for _, project := range projects {
			if project.ID == "" {
				return errors.New("replace all: project without id")
			}
			if err := put(tx, project.ID, project); err != nil {
				return err
			}
		}
		return nil
	})
}

// toFieldMap flattens a project into a schemaless field map. The id is
// dropped; document identity is the row key.
func toFieldMap(project models.Project) (datatypes.JSONMap, error) {
	raw, err := json.Marshal(project)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return fields, nil
}

func fromFieldMap(id string, fields datatypes.JSONMap) (models.Project, error) {
	raw, err := json.Marshal(map[string]any(fields))
	if err != nil {
		return models.Project{}, err
	}
	var project models.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return models.Project{}, err
	}
	project.ID = id
	return project, nil
}
