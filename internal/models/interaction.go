package models

import "time"

// InteractionDoc es un evento registrado (colección interactions).
// Se guarda best-effort: el motor en memoria es la fuente de verdad
// durante la sesión.
type InteractionDoc struct {
	UserID    string    `json:"userId" bson:"userId"`
	Item      string    `json:"item" bson:"item"`
	Category  string    `json:"category" bson:"category"`
	Action    string    `json:"action" bson:"action"`
	Duration  int       `json:"duration,omitempty" bson:"duration,omitempty"`
	Rating    int       `json:"rating,omitempty" bson:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
