package main

import (
	"fmt"

	"github.com/meenmo/finmath/calendar"
	"github.com/meenmo/finmath/config"
	"github.com/meenmo/finmath/interp"
)

func main() {
	start, _ := config.ParseDate("2024-01-25")
	end, _ := config.ParseDate("2025-01-25")

	seq, err := calendar.GenerateSequence(start, calendar.M3, calendar.ACT365, true, true, end)
	if err != nil {
		panic(err)
	}
	fmt.Println("Quarterly schedule 2024-01-25 -> 2025-01-25:")
	for _, ts := range seq {
		d := ts.Civil()
		fmt.Printf("  %04d-%02d-%02d\n", d.Year, d.Month, d.Day)
	}

	frac, err := calendar.YearFraction(start, end, calendar.ACT365)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Year fraction (ACT/365): %.6f\n", frac)

	// Zero curve from a handful of tenor points.
	spline, err := interp.NewCubicSpline(
		[]float64{0.25, 0.5, 1, 2, 5, 10},
		[]float64{2.76, 2.72, 2.72, 2.81, 3.02, 3.16},
	)
	if err != nil {
		panic(err)
	}
	for _, x := range []float64{0.75, 3, 7} {
		y, err := spline.Evaluate(x)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Zero rate at %.2fy: %.4f\n", x, y)
	}
}
