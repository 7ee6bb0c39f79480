// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package esg holds the ESG metric model and the score engine that turns raw
// environmental, social and governance metrics into pillar scores and an
// overall risk level.
package esg

// EnvironmentalMetrics are the raw environmental inputs for a reporting period.
type EnvironmentalMetrics struct {
	CarbonEmissionsTonnesCO2e float64 `json:"carbon_emissions_tonnes_co2e"`
	EnergyConsumptionMWh      float64 `json:"energy_consumption_mwh"`
	WaterUsageCubicMeters     float64 `json:"water_usage_cubic_meters"`
	WasteRecyclingPercent     float64 `json:"waste_recycling_percent"`
	RenewableEnergyPercent    float64 `json:"renewable_energy_percent"`
}

// SocialMetrics are the raw social inputs for a reporting period.
type SocialMetrics struct {
	EmployeeTurnoverPercent        float64 `json:"employee_turnover_percent"`
	GenderDiversityPercent         float64 `json:"gender_diversity_percent"`
	TrainingHoursPerEmployee       float64 `json:"training_hours_per_employee"`
	SafetyIncidentsPer100Employees float64 `json:"safety_incidents_per_100_employees"`
	CommunityInvestmentMillionUSD  float64 `json:"community_investment_million_usd"`
}

// GovernanceMetrics are the raw governance inputs for a reporting period.
type GovernanceMetrics struct {
	BoardIndependencePercent        float64 `json:"board_independence_percent"`
	EthicsTrainingCompletionPercent float64 `json:"ethics_training_completion_percent"`
	DataBreachesCount               int     `json:"data_breaches_count"`
	WhistleblowerCasesCount         int     `json:"whistleblower_cases_count"`
	ComplianceScorePercent          float64 `json:"compliance_score_percent"`
}

// RawMetrics groups the three metric families fed to the score engine.
// It is carried on every ScoreResult so panels can display the inputs.
type RawMetrics struct {
	Environmental EnvironmentalMetrics `json:"environmental"`
	Social        SocialMetrics        `json:"social"`
	Governance    GovernanceMetrics    `json:"governance"`
}

// BaselineMetrics returns the fixed reporting inputs. The values are
// constants and do not vary with the selected period.
func BaselineMetrics() RawMetrics {
	return RawMetrics{
		Environmental: EnvironmentalMetrics{
			CarbonEmissionsTonnesCO2e: 45000,
			EnergyConsumptionMWh:      125000,
			WaterUsageCubicMeters:     85000,
			WasteRecyclingPercent:     68,
			RenewableEnergyPercent:    42,
		},
		Social: SocialMetrics{
			EmployeeTurnoverPercent:        12,
			GenderDiversityPercent:         45,
			TrainingHoursPerEmployee:       32,
			SafetyIncidentsPer100Employees: 3,
			CommunityInvestmentMillionUSD:  2.5,
		},
		Governance: GovernanceMetrics{
			BoardIndependencePercent:        75,
			EthicsTrainingCompletionPercent: 98,
			DataBreachesCount:               0,
			WhistleblowerCasesCount:         2,
			ComplianceScorePercent:          92,
		},
	}
}
