package recommender

import "strings"

// Event es un evento inmutable del historial de un usuario.
type Event struct {
	Item     string `json:"item" bson:"item"`
	Category string `json:"category" bson:"category"`
	Action   string `json:"action" bson:"action"`
	Duration int    `json:"duration,omitempty" bson:"duration,omitempty"` // segundos
	Rating   int    `json:"rating,omitempty" bson:"rating,omitempty"`
}

// umbral de duración para que una acción cuente como interés sostenido
const interestDurationThreshold = 30

// UserProfile acumula los eventos de un usuario y deriva su conjunto
// de intereses (solo crece, nunca se achica).
type UserProfile struct {
	UserID       string
	Username     string
	Events       []Event
	WatchHistory []string

	interests   []string // orden de descubrimiento
	interestSet map[string]struct{}
}

func NewUserProfile(userID, username string) *UserProfile {
	return &UserProfile{
		UserID:      userID,
		Username:    username,
		interestSet: make(map[string]struct{}),
	}
}

// AddEvent agrega el evento al historial. Si la acción es like/watch/share
// con duration > 30 la categoría pasa a ser un interés; si es watch el item
// entra al historial de reproducción. No valida nada (eso es del caller).
func (p *UserProfile) AddEvent(item, category, action string, duration, rating int) {
	p.Events = append(p.Events, Event{
		Item:     item,
		Category: category,
		Action:   action,
		Duration: duration,
		Rating:   rating,
	})

	if (action == ActionLike || action == ActionWatch || action == ActionShare) &&
		duration > interestDurationThreshold {
		if _, ok := p.interestSet[category]; !ok {
			p.interestSet[category] = struct{}{}
			p.interests = append(p.interests, category)
		}
	}

	if action == ActionWatch {
		p.WatchHistory = append(p.WatchHistory, item)
	}
}

// Interests devuelve los intereses en orden de descubrimiento.
func (p *UserProfile) Interests() []string {
	return append([]string(nil), p.interests...)
}

func (p *UserProfile) HasInterest(category string) bool {
	_, ok := p.interestSet[category]
	return ok
}

// InteractionScore suma el peso de los eventos de esa categoría:
// view 1, like 2, share 3, watch duration/60. Solo sirve para ranking
// relativo, no se persiste.
func (p *UserProfile) InteractionScore(category string) float64 {
	var score float64
	for _, ev := range p.Events {
		if ev.Category != category {
			continue
		}
		switch ev.Action {
		case ActionView:
			score++
		case ActionLike:
			score += 2
		case ActionShare:
			score += 3
		case ActionWatch:
			score += float64(ev.Duration) / 60
		}
	}
	return score
}

// IsRatingAction reconoce acciones tipo "rating_4".
func IsRatingAction(action string) bool {
	return strings.HasPrefix(action, "rating_")
}
