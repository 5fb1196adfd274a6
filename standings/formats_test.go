package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diamondsched/tournament-server/models"
)

// TestAvailableFormats_FiltersByTeamCount checks that only formats the field
// can fill are offered.
func TestAvailableFormats_FiltersByTeamCount(t *testing.T) {
	formats := AvailableFormats(models.TypePoolPlayPlayoffs, 6)
	assert.Equal(t, []models.PlayoffFormat{models.FormatTop4, models.FormatTop6}, formats)

	formats = AvailableFormats(models.TypePoolPlayPlayoffs, 16)
	assert.Equal(t, []models.PlayoffFormat{models.FormatTop4, models.FormatTop6, models.FormatTop8}, formats)

	formats = AvailableFormats(models.TypePoolPlayPlayoffs, 3)
	assert.Empty(t, formats)
}

// TestAvailableFormats_SingleElimination checks that single-elimination
// tournaments get no pool-based formats at all.
func TestAvailableFormats_SingleElimination(t *testing.T) {
	assert.Nil(t, AvailableFormats(models.TypeSingleElimination, 16))
}

// TestValidateFormat_NotEnoughTeams checks that a six-team bracket cannot be
// configured for a four-team tournament.
func TestValidateFormat_NotEnoughTeams(t *testing.T) {
	err := ValidateFormat(models.FormatTop6, 4, 1)
	assert.ErrorIs(t, err, ErrNotEnoughTeams)
}

func TestValidateFormat_UnknownFormat(t *testing.T) {
	err := ValidateFormat(models.PlayoffFormat("top_12"), 16, 4)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestValidateFormat_TooManyPools checks that every pool must be able to
// send at least one team into the bracket.
func TestValidateFormat_TooManyPools(t *testing.T) {
	err := ValidateFormat(models.FormatTop4, 20, 5)
	assert.ErrorIs(t, err, ErrPoolCountMismatch)
}

func TestValidateFormat_NoPools(t *testing.T) {
	err := ValidateFormat(models.FormatTop4, 8, 0)
	assert.ErrorIs(t, err, ErrPoolCountMismatch)
}

func TestValidateFormat_Valid(t *testing.T) {
	assert.NoError(t, ValidateFormat(models.FormatTop8, 16, 4))
	assert.NoError(t, ValidateFormat(models.FormatTop4, 4, 1))
}

// TestValidatePattern_CrossPoolRequiresFourPools checks the cross-pool
// pattern against a two-pool tournament.
func TestValidatePattern_CrossPoolRequiresFourPools(t *testing.T) {
	err := ValidatePattern(models.SeedingCrossPool4, models.FormatTop8, 2)
	assert.ErrorIs(t, err, ErrPoolCountMismatch)
}

// TestValidatePattern_CrossPoolRequiresTop8 checks that the cross-pool
// bracket skeleton only exists for an eight-team field.
func TestValidatePattern_CrossPoolRequiresTop8(t *testing.T) {
	err := ValidatePattern(models.SeedingCrossPool4, models.FormatTop4, 4)
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}

func TestValidatePattern_UnknownPattern(t *testing.T) {
	err := ValidatePattern(models.SeedingPattern("snake"), models.FormatTop8, 4)
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

// TestValidatePattern_StandardAlwaysFits checks that standard seeding works
// for any pool count a valid format allows.
func TestValidatePattern_StandardAlwaysFits(t *testing.T) {
	assert.NoError(t, ValidatePattern(models.SeedingStandard, models.FormatTop4, 1))
	assert.NoError(t, ValidatePattern(models.SeedingStandard, models.FormatTop8, 4))
}
