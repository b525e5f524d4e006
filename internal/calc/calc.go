// Package calc holds the closed-form financial calculators: education-loan
// EMI and a multi-year education cost planner. Pure arithmetic, no I/O.
package calc

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidRate      = errors.New("annual interest rate must not be negative")
	ErrInvalidTenure    = errors.New("tenure must be at least one month")
	ErrInvalidYears     = errors.New("course duration must be at least one year")
)

// EMIResult is the summary of a reducing-balance loan.
type EMIResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// EMI computes the standard reducing-balance monthly installment for a loan
// of principal rupees at annualRate percent over tenureMonths.
func EMI(principal, annualRate float64, tenureMonths int) (EMIResult, error) {
	if principal <= 0 {
		return EMIResult{}, ErrInvalidPrincipal
	}
	if annualRate < 0 {
		return EMIResult{}, ErrInvalidRate
	}
	if tenureMonths < 1 {
		return EMIResult{}, ErrInvalidTenure
	}

	var monthly float64
	if annualRate == 0 {
		monthly = principal / float64(tenureMonths)
	} else {
		r := annualRate / 12 / 100
		factor := math.Pow(1+r, float64(tenureMonths))
		monthly = principal * r * factor / (factor - 1)
	}

	monthly = roundPaise(monthly)
	total := roundPaise(monthly * float64(tenureMonths))
	return EMIResult{
		MonthlyPayment: monthly,
		TotalPayment:   total,
		TotalInterest:  roundPaise(total - principal),
	}, nil
}

// CostInput describes yearly education expenses in today's rupees.
type CostInput struct {
	TuitionPerYear float64 `json:"tuitionPerYear"`
	HostelPerYear  float64 `json:"hostelPerYear"`
	MiscPerYear    float64 `json:"miscPerYear"`
	Years          int     `json:"years"`
	// InflationRate is the annual percentage applied from the second
	// year onward. Zero means flat costs.
	InflationRate float64 `json:"inflationRate"`
}

// CostResult breaks a course's projected cost down by year.
type CostResult struct {
	YearlyCosts []float64 `json:"yearlyCosts"`
	TotalCost   float64   `json:"totalCost"`
}

// EducationCost projects the total cost of a course, compounding inflation
// annually. Year 1 is charged at today's prices.
func EducationCost(in CostInput) (CostResult, error) {
	if in.Years < 1 {
		return CostResult{}, ErrInvalidYears
	}
	if in.InflationRate < 0 {
		return CostResult{}, ErrInvalidRate
	}
	base := in.TuitionPerYear + in.HostelPerYear + in.MiscPerYear
	if base <= 0 {
		return CostResult{}, ErrInvalidPrincipal
	}

	out := CostResult{YearlyCosts: make([]float64, in.Years)}
	growth := 1 + in.InflationRate/100
	yearCost := base
	for y := 0; y < in.Years; y++ {
		out.YearlyCosts[y] = roundPaise(yearCost)
		out.TotalCost += out.YearlyCosts[y]
		yearCost *= growth
	}
	out.TotalCost = roundPaise(out.TotalCost)
	return out, nil
}

func roundPaise(v float64) float64 {
	return math.Round(v*100) / 100
}
