package grind

// BuiltinSamples returns the laser-diffraction runs from the grinder audit:
// the incumbent Ditting, two Colombini MAC-3 trials, and the plastic-pod
// production reference. These are the shipped defaults; a SAMPLES_YAML file
// replaces them without a rebuild.
func BuiltinSamples() []Sample {
	return []Sample{
		mustSample("Ditting",
			[]float64{
				10, 20, 30, 40, 60, 70, 80, 90, 100, 120, 140, 160, 180, 200, 250, 300,
				350, 400, 500, 550, 600, 650, 700, 750, 800, 850, 900, 950, 1000, 1100,
				1200, 1300, 1400, 1500,
			},
			[]float64{
				0.19, 2.65, 6.04, 8.89, 12.73, 14.08, 15.19, 16.12, 16.88, 18.00, 18.74,
				19.27, 19.77, 20.40, 23.05, 27.64, 33.84, 41.23, 56.84, 64.00, 70.49,
				76.19, 80.97, 85.21, 88.41, 91.31, 93.36, 95.14, 96.51, 98.36, 99.23,
				99.75, 99.94, 100.00,
			}),
		mustSample("Colombini Test 1",
			[]float64{
				10, 20, 30, 40, 60, 70, 80, 90, 100, 120, 140, 160, 180, 200, 250, 300,
				350, 400, 500, 550, 600, 650, 700, 750, 800, 850, 900, 950, 1000, 1100,
				1200, 1300, 1400,
			},
			[]float64{
				0.10, 1.75, 4.01, 5.97, 8.87, 9.99, 10.96, 11.79, 12.49, 13.58, 14.36,
				14.99, 15.62, 16.41, 19.48, 24.39, 30.80, 38.29, 53.99, 61.21, 67.78,
				73.01, 78.56, 82.97, 86.38, 89.49, 91.76, 93.75, 95.32, 97.54, 99.43,
				99.77, 99.77,
			}),
		mustSample("Colombini Test 2",
			[]float64{
				10, 20, 30, 40, 60, 70, 80, 90, 100, 120, 140, 160, 180, 200, 250, 300,
				350, 400, 500, 550, 600, 650, 700, 750, 800, 850, 900, 950, 1000, 1100,
				1200, 1300, 1400,
			},
			[]float64{
				0.18, 2.31, 5.13, 7.61, 11.33, 12.73, 13.91, 14.89, 15.70, 16.90, 17.78,
				18.59, 19.53, 20.74, 25.22, 31.72, 39.53, 48.01, 64.21, 71.09, 77.10,
				82.16, 86.23, 89.75, 92.25, 94.48, 95.96, 97.21, 98.13, 99.26, 99.70,
				99.93, 99.98,
			}),
		mustSample("Plastic Pod Sample",
			[]float64{
				10, 20, 30, 40, 60, 70, 80, 90, 100, 120, 140, 160, 180, 200, 250, 300,
				350, 400, 500, 550, 600, 650, 700, 750, 800, 850, 900, 950, 1000, 1100,
				1200, 1500, 2900,
			},
			[]float64{
				0.25, 3.39, 7.22, 10.13, 13.54, 14.62, 15.52, 16.29, 16.96, 18.02,
				18.77, 19.28, 19.65, 20.00, 21.38, 24.15, 28.47, 34.22, 47.98, 54.92,
				61.49, 67.60, 73.01, 77.93, 81.94, 85.62, 88.44, 90.97, 93.01, 95.04,
				97.75, 99.52, 100.00,
			}),
	}
}

func mustSample(name string, sizes, undersize []float64) Sample {
	s, err := NewSample(name, sizes, undersize)
	if err != nil {
		panic(err)
	}
	return s
}
