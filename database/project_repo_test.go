package database

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
)

func newTestRepo(t *testing.T) *ProjectRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ProjectDocument{}))
	return NewProjectRepo(db)
}

func storedProject(title string) models.Project {
	return models.Project{
		Title:       title,
		Description: "A stored project",
		ImageURL:    "https://cdn/" + title + ".png",
		Category:    models.CategoryApplications,
	}
}

func TestAddAssignsDocumentIdentity(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Add(ctx, storedProject("fresh"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, id, projects[0].ID)
	assert.Equal(t, "fresh", projects[0].Title)
}

func TestPutCreatesThenReplaces(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "p-keep", storedProject("first")))

	replacement := storedProject("second")
	replacement.Gallery = []string{"/g/1.png"}
	require.NoError(t, repo.Put(ctx, "p-keep", replacement))

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1, "writing the same identity twice must not create a second document")
	assert.Equal(t, "p-keep", projects[0].ID)
	assert.Equal(t, "second", projects[0].Title)
	assert.Equal(t, []string{"/g/1.png"}, projects[0].Gallery)
}

func TestUpdateUnknownDocument(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Update(context.Background(), "ghost", storedProject("ghost"))
	require.Error(t, err)
	assert.True(t, errs.IsDocumentNotFound(err))
}

func TestDeleteDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "p-gone", storedProject("going")))
	require.NoError(t, repo.Delete(ctx, "p-gone"))

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	err = repo.Delete(ctx, "p-gone")
	require.Error(t, err)
	assert.True(t, errs.IsDocumentNotFound(err))
}

func TestReplaceAllReseedsUnderGivenIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, storedProject("stray one"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, storedProject("stray two"))
	require.NoError(t, err)

	seedA := storedProject("alpha")
	seedA.ID = "p-alpha"
	seedB := storedProject("beta")
	seedB.ID = "p-beta"
	require.NoError(t, repo.ReplaceAll(ctx, []models.Project{seedA, seedB}))

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "p-alpha", projects[0].ID)
	assert.Equal(t, "p-beta", projects[1].ID)
}

func TestReplaceAllFailureRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := storedProject("survivor")
	seed.ID = "p-survivor"
	require.NoError(t, repo.ReplaceAll(ctx, []models.Project{seed}))

	next := storedProject("replacement")
	next.ID = "p-replacement"
	broken := storedProject("no identity")
	require.Error(t, repo.ReplaceAll(ctx, []models.Project{next, broken}))

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1, "a failed replacement must leave the previous collection intact")
	assert.Equal(t, "p-survivor", projects[0].ID)
}

func TestFieldMapStripsAndRestoresID(t *testing.T) {
	project := models.Project{
		ID:           "p-librowse",
		Title:        "Librowse",
		Description:  "A browser-based library manager",
		Technologies: []string{"React", "TypeScript"},
		ImageURL:     "https://cdn/librowse.png",
		Category:     models.CategoryApplications,
		AIToolsUsed:  []string{"Gemini"},
		Gallery:      []string{"/g/1.png", "/g/2.png"},
		CustomSlides: []models.CustomSlide{{ID: "s1", Title: "Pitch", Content: "Why it matters"}},
	}

	fields, err := toFieldMap(project)
	require.NoError(t, err)
	assert.NotContains(t, fields, "id", "document identity lives in the row key, not the field map")
	assert.Equal(t, "Librowse", fields["title"])

	restored, err := fromFieldMap("row-key-wins", fields)
	require.NoError(t, err)
	assert.Equal(t, "row-key-wins", restored.ID)

	expected := project
	expected.ID = "row-key-wins"
	assert.Equal(t, expected, restored)
}

func TestFieldMapOmitsEmptyOptionalFields(t *testing.T) {
	fields, err := toFieldMap(models.Project{ID: "p", Title: "Minimal", Description: "d", ImageURL: "u"})
	require.NoError(t, err)

	assert.NotContains(t, fields, "demoUrl")
	assert.NotContains(t, fields, "aiToolsUsed")
	assert.NotContains(t, fields, "gallery")
	assert.Contains(t, fields, "technologies", "technologies is always present, even when empty")
}
