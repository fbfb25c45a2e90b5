package rrhh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukkan-backend/internal/models"
)

func fullYearPosition(year int, role string, annualGross float64) models.Position {
	p := models.Position{Year: year, Role: role, AnnualGross: annualGross}
	for i := range p.Need {
		p.Need[i] = 1
	}
	return p
}

func TestComputeCostsSinglePosition(t *testing.T) {
	positions := []models.Position{fullYearPosition(2025, "Garson", 24000)}

	plan := ComputeCosts(positions, 2025, 0.33)

	require.Len(t, plan.Positions, 1)
	pc := plan.Positions[0]
	assert.Equal(t, "Garson", pc.Role)
	assert.Equal(t, 2000.0, pc.Payroll[0])
	assert.Equal(t, 660.0, pc.Social[0])
	assert.Equal(t, 2660.0, pc.Employer[0])

	require.Len(t, plan.Totals, 12)
	assert.Equal(t, 1, plan.Totals[0].Month)
	assert.Equal(t, 2660.0, plan.Totals[0].Employer)
	assert.Equal(t, 31920.0, plan.AnnualEmployer)
}

func TestComputeCostsScalesWithNeed(t *testing.T) {
	p := models.Position{Year: 2025, Role: "Garson", AnnualGross: 24000}
	p.Need[5] = 2 // haziranda iki kişi
	positions := []models.Position{p}

	plan := ComputeCosts(positions, 2025, 0.33)

	pc := plan.Positions[0]
	assert.Zero(t, pc.Payroll[0]) // ihtiyaç olmayan ayda maliyet yok
	assert.Equal(t, 4000.0, pc.Payroll[5])
	assert.Equal(t, 1320.0, pc.Social[5])
	assert.Equal(t, 5320.0, pc.Employer[5])
	assert.Equal(t, 5320.0, plan.AnnualEmployer)
}

func TestComputeCostsIgnoresOtherYears(t *testing.T) {
	positions := []models.Position{
		fullYearPosition(2024, "Garson", 24000),
		fullYearPosition(2025, "Aşçı", 30000),
	}

	plan := ComputeCosts(positions, 2025, 0.33)

	require.Len(t, plan.Positions, 1)
	assert.Equal(t, "Aşçı", plan.Positions[0].Role)
}

func TestComputeCostsSumsPositions(t *testing.T) {
	positions := []models.Position{
		fullYearPosition(2025, "Garson", 24000),
		fullYearPosition(2025, "Aşçı", 36000),
	}

	plan := ComputeCosts(positions, 2025, 0.33)

	// 2000 + 3000 brüt, %33 prim
	assert.Equal(t, 5000.0, plan.Totals[0].Payroll)
	assert.Equal(t, 1650.0, plan.Totals[0].Social)
	assert.Equal(t, 6650.0, plan.Totals[0].Employer)
}

func TestComputeCostsRoundsToCents(t *testing.T) {
	positions := []models.Position{fullYearPosition(2025, "Garson", 10000)}

	plan := ComputeCosts(positions, 2025, 0.33)

	// 10000/12 = 833.333... -> 833.33
	assert.Equal(t, 833.33, plan.Positions[0].Payroll[0])
	assert.Equal(t, 275.0, plan.Positions[0].Social[0]) // 833.33*0.33 = 274.9989 -> 275.00
	assert.Equal(t, 1108.33, plan.Positions[0].Employer[0])
}

func TestEmployerCostFor(t *testing.T) {
	positions := []models.Position{fullYearPosition(2025, "Garson", 24000)}

	assert.Equal(t, 2660.0, EmployerCostFor(positions, 2025, 3, 0.33))
	assert.Equal(t, 31920.0, EmployerCostFor(positions, 2025, 0, 0.33))
	assert.Zero(t, EmployerCostFor(positions, 2024, 0, 0.33))
}
