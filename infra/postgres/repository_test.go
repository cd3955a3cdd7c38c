package postgres

import (
	"catalog/domain"
	"catalog/internal/testdb"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

type clock struct{ at time.Time }

func (c *clock) now() time.Time { return c.at }

func newTestRepository(t *testing.T) (*PgRepository, *clock) {
	t.Helper()
	c := &clock{at: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)}
	repo := NewPgRepository(testdb.New(t))
	repo.now = c.now
	return repo, c
}

func mustSave(t *testing.T, repo *PgRepository, item domain.Item) domain.Item {
	t.Helper()
	saved, err := repo.Save(context.Background(), item)
	require.NoError(t, err)
	return saved
}

func names(items []domain.Item) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

func insertLegacy(t *testing.T, repo *PgRepository, name string) {
	t.Helper()
	_, err := repo.db.Exec(
		`INSERT INTO items (name, is_active, created_at, updated_at) VALUES (?, NULL, ?, ?)`,
		name, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
}

func TestSave_InsertAssignsIDAndTimestamps(t *testing.T) {
	repo, c := newTestRepository(t)
	ctx := context.Background()

	saved := mustSave(t, repo, domain.Item{Name: "Widget", Description: strPtr("blue"), IsActive: boolPtr(true)})

	assert.NotZero(t, saved.ID)
	assert.WithinDuration(t, c.at, saved.CreatedAt, 0)
	assert.WithinDuration(t, saved.CreatedAt, saved.UpdatedAt, 0)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, strPtr("blue"), got.Description)
	assert.Equal(t, domain.ActivityActive, got.Activity())
	assert.WithinDuration(t, c.at, got.CreatedAt, 0)
}

func TestSave_InsertGivesDistinctIDs(t *testing.T) {
	repo, _ := newTestRepository(t)

	a := mustSave(t, repo, domain.Item{Name: "a"})
	b := mustSave(t, repo, domain.Item{Name: "b"})

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSave_UpdateKeepsCreatedAtAndAdvancesUpdatedAt(t *testing.T) {
	repo, c := newTestRepository(t)
	ctx := context.Background()

	saved := mustSave(t, repo, domain.Item{Name: "Old", IsActive: boolPtr(false)})
	c.at = c.at.Add(time.Hour)

	updated := mustSave(t, repo, saved.WithDetails("New", strPtr("now described")))

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, strPtr("now described"), got.Description)
	assert.Equal(t, domain.ActivityInactive, got.Activity())
	assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, 0)
	assert.WithinDuration(t, c.at, got.UpdatedAt, 0)
	assert.WithinDuration(t, updated.UpdatedAt, got.UpdatedAt, 0)
}

func TestSave_UpdateNeverMovesUpdatedAtBackwards(t *testing.T) {
	repo, c := newTestRepository(t)

	saved := mustSave(t, repo, domain.Item{Name: "a"})
	c.at = c.at.Add(-time.Hour)

	updated := mustSave(t, repo, saved.WithDetails("b", nil))

	assert.False(t, updated.UpdatedAt.Before(saved.UpdatedAt))
}

func TestSave_UpdateMissingRow(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Save(context.Background(), domain.Item{ID: 404, Name: "ghost"})

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFindByID_Missing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.FindByID(context.Background(), 99999999)

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	saved := mustSave(t, repo, domain.Item{Name: "Gone"})

	require.NoError(t, repo.Delete(ctx, saved))

	_, err := repo.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListAll(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	empty, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	mustSave(t, repo, domain.Item{Name: "a"})
	mustSave(t, repo, domain.Item{Name: "b"})

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(all))
}

func TestFindByNameContains_IgnoresCase(t *testing.T) {
	repo, _ := newTestRepository(t)
	mustSave(t, repo, domain.Item{Name: "Blue Widget"})
	mustSave(t, repo, domain.Item{Name: "Gadget", Description: strPtr("widget-like")})

	got, err := repo.FindByNameContains(context.Background(), "WIDG")

	require.NoError(t, err)
	assert.Equal(t, []string{"Blue Widget"}, names(got))
}

func TestActiveVariants_DisagreeOnLegacyRows(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	mustSave(t, repo, domain.Item{Name: "on", IsActive: boolPtr(true)})
	mustSave(t, repo, domain.Item{Name: "off", IsActive: boolPtr(false)})
	insertLegacy(t, repo, "legacy")

	strict, err := repo.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"on"}, names(strict))

	lenient, err := repo.FindActiveOrLegacy(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"on", "legacy"}, names(lenient))

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	for _, i := range lenient {
		if i.Name == "legacy" {
			assert.Equal(t, domain.ActivityUnset, i.Activity())
		}
	}
}

func TestFindByNameContainsAndActive(t *testing.T) {
	repo, _ := newTestRepository(t)
	mustSave(t, repo, domain.Item{Name: "Widget A", IsActive: boolPtr(true)})
	mustSave(t, repo, domain.Item{Name: "Widget B", IsActive: boolPtr(false)})
	mustSave(t, repo, domain.Item{Name: "Gadget", IsActive: boolPtr(true)})
	insertLegacy(t, repo, "Widget C")

	got, err := repo.FindByNameContainsAndActive(context.Background(), "widget")

	require.NoError(t, err)
	assert.Equal(t, []string{"Widget A"}, names(got))
}

func TestSearchText_MatchesNameOrDescription(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	mustSave(t, repo, domain.Item{Name: "Widget"})
	mustSave(t, repo, domain.Item{Name: "Gadget", Description: strPtr("Works with any WIDGET")})
	mustSave(t, repo, domain.Item{Name: "Sprocket"})

	first, err := repo.SearchText(ctx, "widg")
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget", "Gadget"}, names(first))

	again, err := repo.SearchText(ctx, "widg")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestSearchText_WildcardsMatchLiterally(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	mustSave(t, repo, domain.Item{Name: "100% cotton"})
	mustSave(t, repo, domain.Item{Name: "1000 cotton"})
	mustSave(t, repo, domain.Item{Name: "snake_case"})
	mustSave(t, repo, domain.Item{Name: "snakeXcase"})

	pct, err := repo.SearchText(ctx, "0%")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% cotton"}, names(pct))

	underscore, err := repo.SearchText(ctx, "e_c")
	require.NoError(t, err)
	assert.Equal(t, []string{"snake_case"}, names(underscore))
}

func TestSearch_NonASCIITermMatchesItsOwnName(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	mustSave(t, repo, domain.Item{Name: "CAFÉ"})
	mustSave(t, repo, domain.Item{Name: "Tea", Description: strPtr("Crème brûlée")})

	byText, err := repo.SearchText(ctx, "CAFÉ")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAFÉ"}, names(byText))

	mixedCase, err := repo.SearchText(ctx, "caFÉ")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAFÉ"}, names(mixedCase))

	byDescription, err := repo.SearchText(ctx, "Crème")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tea"}, names(byDescription))

	byName, err := repo.FindByNameContains(ctx, "CAFÉ")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAFÉ"}, names(byName))

	active, err := repo.FindByNameContainsAndActive(ctx, "FÉ")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAFÉ"}, names(active))
}

func TestRecent_NewestFirstAndBounded(t *testing.T) {
	repo, c := newTestRepository(t)
	for _, name := range []string{"first", "second", "third"} {
		mustSave(t, repo, domain.Item{Name: name})
		c.at = c.at.Add(time.Minute)
	}

	got, err := repo.Recent(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second"}, names(got))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%WIDG%`, containsPattern("WIDG"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}

func TestGetPoolStats(t *testing.T) {
	repo, _ := newTestRepository(t)

	stats := repo.GetPoolStats()

	assert.Equal(t, 1, stats["max_open_connections"])
	assert.NoError(t, repo.Ping(context.Background()))
}
