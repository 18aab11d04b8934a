package domain

// Tag is a label attachable to reviews. Tag names are globally unique;
// creating a tag with an existing name resolves to the existing identity.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
