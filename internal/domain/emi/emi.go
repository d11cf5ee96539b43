package emi

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")
	ErrInvalidTerm      = errors.New("term must be greater than zero")
	ErrNegativeRate     = errors.New("annual rate must not be negative")
)

// DefaultAnnualRate is the rate applied when an application does not specify one.
const DefaultAnnualRate = 12.0

// Schedule holds the derived amounts for a loan, each rounded to the
// nearest whole currency unit. They are computed once at application time
// and never recomputed afterwards.
type Schedule struct {
	MonthlyEMI    float64
	TotalInterest float64
	TotalAmount   float64
}

// Compute derives the equated monthly installment for principal p,
// annual rate (as a percentage, e.g. 12 for 12%/yr) and a term in years.
//
//	m = rate/12/100, n = years*12
//	EMI = p·m·(1+m)^n / ((1+m)^n − 1)
//
// A zero rate would divide by zero in the standard formula, so it is
// handled as simple division p/n. Negative rates are rejected.
func Compute(principal, annualRate float64, termYears int) (Schedule, error) {
	if principal <= 0 {
		return Schedule{}, ErrInvalidPrincipal
	}
	if termYears <= 0 {
		return Schedule{}, ErrInvalidTerm
	}
	if annualRate < 0 {
		return Schedule{}, ErrNegativeRate
	}

	n := float64(termYears * 12)

	var monthly float64
	if annualRate == 0 {
		monthly = principal / n
	} else {
		m := annualRate / 12 / 100
		pow := math.Pow(1+m, n)
		monthly = principal * m * pow / (pow - 1)
	}

	total := monthly * n
	return Schedule{
		MonthlyEMI:    math.Round(monthly),
		TotalInterest: math.Round(total - principal),
		TotalAmount:   math.Round(total),
	}, nil
}
