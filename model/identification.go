package model

// Identification is the result of device identification for one document.
// The JSON field names are the consumer contract of the identify operation.
type Identification struct {
	File           string   `json:"file"`
	DeviceName     string   `json:"device_name,omitempty"`
	PartCandidates []string `json:"part_candidates"`
	Packages       []string `json:"packages"`
}

// Primary returns the primary device identifier, or "" when identification
// found no candidates.
func (id Identification) Primary() string {
	return id.DeviceName
}
