package model

type Theater struct {
	Id       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	Website  string   `json:"website,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Features []string `json:"features,omitempty"`
}

// FeatureOriginalLanguage is the tag theaters use to advertise original language screenings.
const FeatureOriginalLanguage = "Original Language"

// HasFeature reports whether the theater lists the given feature tag.
func (t Theater) HasFeature(feature string) bool {
	for _, f := range t.Features {
		if f == feature {
			return true
		}
	}
	return false
}
