package utils

// AddPercent returns value increased by percent: AddPercent(100, 10) = 110.
func AddPercent(value float64, percent float64) float64 {
	return value + value*(percent/100)
}

// SubPercent returns value decreased by percent: SubPercent(100, 10) = 90.
func SubPercent(value float64, percent float64) float64 {
	return value - value*(percent/100)
}

// HowMany returns percent of value: HowMany(100, 10) = 10.
func HowMany(value float64, percent float64) float64 {
	return percent * (value / 100)
}

// Change returns the percent change from old to new: Change(100, 110) = 10.
func Change(old float64, new float64) float64 {
	if old == 0 {
		return 0
	}

	return (new - old) / old * 100
}
