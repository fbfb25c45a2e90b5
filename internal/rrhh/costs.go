package rrhh

import (
	"math"

	"dukkan-backend/internal/models"
)

// PositionCost: bir pozisyonun ay bazında türetilmiş maliyetleri.
// Hiçbiri saklanmaz; pozisyon tanımından her okumada hesaplanır.
type PositionCost struct {
	Role        string      `json:"role"`
	AnnualGross float64     `json:"annual_gross_eur"`
	Need        [12]int     `json:"need"`
	Payroll     [12]float64 `json:"payroll"`       // brüt maaş maliyeti
	Social      [12]float64 `json:"social_charge"` // işveren SGK primi
	Employer    [12]float64 `json:"employer_cost"` // maaş + prim
}

type MonthlyTotal struct {
	Month    int     `json:"month"`
	Payroll  float64 `json:"payroll"`
	Social   float64 `json:"social_charge"`
	Employer float64 `json:"employer_cost"`
}

type CostPlan struct {
	Year           int            `json:"year"`
	SocialRate     float64        `json:"social_rate"`
	Positions      []PositionCost `json:"positions"`
	Totals         []MonthlyTotal `json:"totals"` // 12 satır
	AnnualEmployer float64        `json:"annual_employer_cost"`
}

// ComputeCosts: yılın pozisyonlarından maliyet planı üretir.
// Ay maliyeti = yıllık brüt / 12 * o ayın kişi ihtiyacı; işveren primi
// sabit oranla bunun üzerine eklenir. Tutarlar iki ondalığa yuvarlanır.
func ComputeCosts(positions []models.Position, year int, socialRate float64) CostPlan {
	plan := CostPlan{
		Year:       year,
		SocialRate: socialRate,
		Totals:     make([]MonthlyTotal, 12),
	}
	for m := 1; m <= 12; m++ {
		plan.Totals[m-1].Month = m
	}

	for _, p := range positions {
		if p.Year != year {
			continue
		}
		pc := PositionCost{Role: p.Role, AnnualGross: p.AnnualGross, Need: p.Need}
		for m := 1; m <= 12; m++ {
			payroll := round2(p.MonthlyPayroll(m))
			social := round2(payroll * socialRate)
			employer := round2(payroll + social)

			pc.Payroll[m-1] = payroll
			pc.Social[m-1] = social
			pc.Employer[m-1] = employer

			plan.Totals[m-1].Payroll += payroll
			plan.Totals[m-1].Social += social
			plan.Totals[m-1].Employer += employer
		}
		plan.Positions = append(plan.Positions, pc)
	}

	for m := 0; m < 12; m++ {
		plan.Totals[m].Payroll = round2(plan.Totals[m].Payroll)
		plan.Totals[m].Social = round2(plan.Totals[m].Social)
		plan.Totals[m].Employer = round2(plan.Totals[m].Employer)
		plan.AnnualEmployer += plan.Totals[m].Employer
	}
	plan.AnnualEmployer = round2(plan.AnnualEmployer)
	return plan
}

// EmployerCostFor: seçili dönem için toplam işveren maliyeti.
// month 0 ise bütün yıl.
func EmployerCostFor(positions []models.Position, year, month int, socialRate float64) float64 {
	plan := ComputeCosts(positions, year, socialRate)
	if month >= 1 && month <= 12 {
		return plan.Totals[month-1].Employer
	}
	return plan.AnnualEmployer
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
