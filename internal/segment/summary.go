package segment

import "gonum.org/v1/gonum/stat"

// Summary aggregates the areas of a set of components.
type Summary struct {
	Components int
	Foreground int
	MinArea    int
	MaxArea    int
	MeanArea   float64
	StdDevArea float64
}

// Summarise computes area statistics over components. The standard deviation
// is the sample deviation and is zero for fewer than two components.
func Summarise(components []Component) Summary {
	if len(components) == 0 {
		return Summary{}
	}

	s := Summary{
		Components: len(components),
		MinArea:    components[0].Area,
		MaxArea:    components[0].Area,
	}
	areas := make([]float64, len(components))
	for i, c := range components {
		areas[i] = float64(c.Area)
		s.Foreground += c.Area
		s.MinArea = min(s.MinArea, c.Area)
		s.MaxArea = max(s.MaxArea, c.Area)
	}

	if len(areas) < 2 {
		s.MeanArea = areas[0]
		return s
	}
	s.MeanArea, s.StdDevArea = stat.MeanStdDev(areas, nil)
	return s
}
