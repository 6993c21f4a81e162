package latlngfmt

// Pair helpers apply the scalar operation to a [latitude, longitude] pair.

// ValidPair reports Valid for both positions.
func (f *Format) ValidPair(texts [2]string) [2]bool {
	return [2]bool{f.Valid(Latitude, texts[0]), f.Valid(Longitude, texts[1])}
}

// ParsePair parses both positions. ok is false when either one fails.
func (f *Format) ParsePair(texts [2]string) (latLng [2]float64, ok [2]bool) {
	latLng[0], ok[0] = f.Parse(Latitude, texts[0])
	latLng[1], ok[1] = f.Parse(Longitude, texts[1])
	return latLng, ok
}

// FormatPair formats both positions.
func (f *Format) FormatPair(latLng [2]float64, edit bool) [2]string {
	return [2]string{f.Format(Latitude, latLng[0], edit), f.Format(Longitude, latLng[1], edit)}
}

// ConvertPair converts both positions from src.
func (f *Format) ConvertPair(texts [2]string, src *Format) [2]string {
	return [2]string{f.Convert(Latitude, texts[0], src), f.Convert(Longitude, texts[1], src)}
}

// AsText formats v.
//
// Deprecated: use Format.
func (f *Format) AsText(axis Axis, v float64, edit bool) string { return f.Format(axis, v, edit) }

// AsTextPair formats both positions.
//
// Deprecated: use FormatPair.
func (f *Format) AsTextPair(latLng [2]float64, edit bool) [2]string {
	return f.FormatPair(latLng, edit)
}
