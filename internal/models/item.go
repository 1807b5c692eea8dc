package models

// ItemDoc es la copia persistida de un item del catálogo (colección items).
type ItemDoc struct {
	Name        string   `json:"name" bson:"name"`
	Category    string   `json:"category" bson:"category"`
	Tags        []string `json:"tags" bson:"tags"`
	Difficulty  string   `json:"difficulty" bson:"difficulty"`
	DurationMin int      `json:"durationMin" bson:"durationMin"`
	Views       int      `json:"views" bson:"views"`
	Likes       int      `json:"likes" bson:"likes"`
	Popularity  float64  `json:"popularity" bson:"popularity"`
}
