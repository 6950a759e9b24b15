package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebulahq/chainpulse/internal/domain"
)

func catalogFixture(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	projects := []domain.Project{
		{ID: "nebula-swap", Name: "NebulaSwap", Symbol: "NBS", Category: domain.ProjectCategoryDeFi, Description: "Automated market maker"},
		{ID: "glacier-vault", Name: "GlacierVault", Symbol: "GLV", Category: domain.ProjectCategoryDeFi, Description: "Cold storage yield"},
		{ID: "pixel-harbor", Name: "PixelHarbor", Symbol: "PXH", Category: domain.ProjectCategoryNFT, Description: "NFT marketplace"},
	}
	require.NoError(t, c.Load(context.Background(), projects))
	return c
}

func TestCatalogListAll(t *testing.T) {
	c := catalogFixture(t)

	projects, err := c.List(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, projects, 3)

	// Ordered by name, case-insensitive.
	assert.Equal(t, "glacier-vault", projects[0].ID)
	assert.Equal(t, "nebula-swap", projects[1].ID)
	assert.Equal(t, "pixel-harbor", projects[2].ID)
}

func TestCatalogListByCategory(t *testing.T) {
	c := catalogFixture(t)

	projects, err := c.List(context.Background(), domain.ProjectCategoryDeFi, "")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, domain.ProjectCategoryDeFi, p.Category)
	}
}

func TestCatalogListSearch(t *testing.T) {
	c := catalogFixture(t)

	projects, err := c.List(context.Background(), "", "market")
	require.NoError(t, err)
	require.Len(t, projects, 2)

	// Category and search combine.
	projects, err = c.List(context.Background(), domain.ProjectCategoryNFT, "market")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "pixel-harbor", projects[0].ID)
}

func TestCatalogGet(t *testing.T) {
	c := catalogFixture(t)

	p, err := c.Get(context.Background(), "glacier-vault")
	require.NoError(t, err)
	assert.Equal(t, "GlacierVault", p.Name)
	assert.Equal(t, domain.ProjectCategoryDeFi, p.Category)

	_, err = c.Get(context.Background(), "ghost-chain")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCatalogLoadIsIdempotent(t *testing.T) {
	c := catalogFixture(t)

	require.NoError(t, c.Load(context.Background(), []domain.Project{
		{ID: "nebula-swap", Name: "NebulaSwap v2", Symbol: "NBS", Category: domain.ProjectCategoryDeFi},
	}))

	count, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	p, err := c.Get(context.Background(), "nebula-swap")
	require.NoError(t, err)
	assert.Equal(t, "NebulaSwap v2", p.Name)
}

func TestCatalogLoadRejectsInvalidProject(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	err = c.Load(context.Background(), []domain.Project{
		{ID: "", Name: "Nameless", Category: domain.ProjectCategoryDeFi},
	})
	assert.Error(t, err)

	count, err := c.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
