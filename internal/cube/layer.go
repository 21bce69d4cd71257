package cube

// SectionOf classifies a coordinate along an axis into its layer section.
// The thresholds sit half a unit from the origin: below -unitSize/2 is
// section 0, above +unitSize/2 is section 2, the band between is section 1.
func SectionOf(coord, unitSize float32) Section {
	half := unitSize / 2
	switch {
	case coord < -half:
		return 0
	case coord > half:
		return 2
	default:
		return 1
	}
}

// SelectLayer returns the units whose coordinate along axis falls in the
// given section. Pure function over the current positions; an empty result
// is legal and callers must treat it as a no-op.
func SelectLayer(units []*Unit, axis Axis, section Section, unitSize float32) []*Unit {
	var layer []*Unit
	for _, u := range units {
		if SectionOf(axis.Component(u.Position), unitSize) == section {
			layer = append(layer, u)
		}
	}
	return layer
}
