package syntax

// Abi is a named linkage marker such as extern "C". A nil *Abi means no marker.
type Abi struct {
	Name string
}

// IsC reports whether the marker is present and names exactly "C".
func (a *Abi) IsC() bool {
	return a != nil && a.Name == "C"
}

// String returns the marker as written in source, or "" when absent.
func (a *Abi) String() string {
	if a == nil {
		return ""
	}

	return `extern "` + a.Name + `"`
}
