package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyantic/sojourn/pkg/catalog"
	"github.com/voyantic/sojourn/pkg/domain"
)

func TestDefault_OrderAndContent(t *testing.T) {
	c := catalog.Default()

	plans := c.Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, []string{"basic", "pro", "nomad"}, []string{plans[0].ID, plans[1].ID, plans[2].ID})

	basic, ok := c.Plan("basic")
	require.True(t, ok)
	assert.Equal(t, "Basic Explorer", basic.Name)
	assert.Equal(t, 30.0, basic.BasePrice)
	assert.Equal(t, 500.0, basic.Deductible)

	nomad, ok := c.Plan("nomad")
	require.True(t, ok)
	assert.Equal(t, 0.0, nomad.Deductible)
	assert.Equal(t, 100000.0, nomad.Coverage)

	_, ok = c.Plan("gold")
	assert.False(t, ok)
}

func TestDefault_PlansAreCopies(t *testing.T) {
	c := catalog.Default()

	plans := c.Plans()
	plans[0].Name = "Mutated"
	plans[0].Features[0] = "Mutated"

	again := c.Plans()
	assert.Equal(t, "Basic Explorer", again[0].Name)
	assert.Equal(t, "Medical Emergencies", again[0].Features[0])
}

func TestBasePriced(t *testing.T) {
	c := catalog.Default()

	priced := c.BasePriced()
	require.Len(t, priced, c.Len())
	for _, p := range priced {
		assert.Equal(t, p.BasePrice, p.FinalPrice)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := catalog.New(nil)
		assert.Error(t, err)
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		_, err := catalog.New([]domain.PlanTemplate{
			{ID: "a", Name: "A", BasePrice: 1},
			{ID: "a", Name: "B", BasePrice: 2},
		})
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("Negative Amount", func(t *testing.T) {
		_, err := catalog.New([]domain.PlanTemplate{
			{ID: "a", Name: "A", BasePrice: -1},
		})
		assert.ErrorContains(t, err, "negative")
	})
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plans.yaml")

	content := `plans:
  - id: basic
    name: Basic Explorer
    base_price: 30
    coverage: 15000
    deductible: 500
    features: [Medical Emergencies, Lost Luggage ($500), 24/7 Support]
  - id: pro
    name: Pro Voyager
    base_price: 60
    coverage: 50000
    deductible: 100
    features: [Medical Emergencies, Trip Cancellation]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	pro, ok := c.Plan("pro")
	require.True(t, ok)
	assert.Equal(t, 60.0, pro.BasePrice)
	assert.Equal(t, 50000.0, pro.Coverage)
}

func TestLoad_Missing(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
