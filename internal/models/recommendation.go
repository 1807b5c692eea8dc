package models

import "time"

// Recommendation es el historial de una lista servida (colección
// recommendations).
type Recommendation struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Algo      string    `json:"algo" bson:"algo"` // content | hybrid
	N         int       `json:"n" bson:"n"`
	Items     []string  `json:"items" bson:"items"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
