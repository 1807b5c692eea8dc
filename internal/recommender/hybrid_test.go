package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHybrid() *HybridRecommender {
	c := NewCatalog(SeedItems())
	return NewHybridRecommender(BuildFeatureIndex(c.Items()))
}

func TestActionWeights(t *testing.T) {
	cases := []struct {
		ev     Event
		weight float64
	}{
		{Event{Action: ActionView}, 1},
		{Event{Action: ActionLike}, 3},
		{Event{Action: ActionShare}, 5},
		{Event{Action: ActionWatch}, 4},
		{Event{Action: "rating_5", Rating: 5}, 5},
		{Event{Action: "rating_4", Rating: 4}, 5},
		{Event{Action: "rating_3", Rating: 3}, 1},
		{Event{Action: "rating_2", Rating: 2}, 0.5},
		{Event{Action: "rating_1", Rating: 1}, 0.5},
		{Event{Action: "otra"}, 1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.weight, actionWeight(tc.ev), 1e-9, tc.ev.Action)
	}
}

func TestUpdateUserProfileAcumulaAfinidad(t *testing.T) {
	h := newTestHybrid()

	h.UpdateUserProfile("u1", []Event{
		{Item: "Python Tutorial", Action: ActionLike},
		{Item: "Python Tutorial", Action: ActionWatch},
		{Item: "Pop Music Mix 2024", Action: ActionView},
	})

	assert.InDelta(t, 7, h.Affinity("u1", "Python Tutorial"), 1e-9)
	assert.InDelta(t, 1, h.Affinity("u1", "Pop Music Mix 2024"), 1e-9)
}

func TestUpdateUserProfileIgnoraItemsSinVector(t *testing.T) {
	h := newTestHybrid()

	h.UpdateUserProfile("u1", []Event{
		{Item: "Item Fantasma", Action: ActionShare},
	})

	// el item no indexado no suma, pero el usuario queda registrado
	assert.Zero(t, h.Affinity("u1", "Item Fantasma"))
	assert.Empty(t, h.CollaborativeFiltering("u2", 5))
	h.UpdateUserProfile("u2", nil)
	assert.Empty(t, h.CollaborativeFiltering("u2", 5))
}

func TestCollaborativeFilteringPrimerosKOtros(t *testing.T) {
	h := newTestHybrid()

	h.UpdateUserProfile("u1", []Event{{Item: "Python Tutorial", Action: ActionView}})
	h.UpdateUserProfile("u2", []Event{
		{Item: "Pop Music Mix 2024", Action: ActionShare},
		{Item: "Jazz Relaxation Playlist", Action: ActionView},
	})
	h.UpdateUserProfile("u3", []Event{{Item: "Jazz Relaxation Playlist", Action: ActionLike}})

	recs := h.CollaborativeFiltering("u1", 5)

	// u2 aporta su top (share pesa más), u3 no duplica Jazz
	require.Equal(t, []string{"Pop Music Mix 2024", "Jazz Relaxation Playlist"}, recs)
	assert.NotContains(t, recs[:1], "Jazz Relaxation Playlist")

	// k limita cuántos usuarios se miran
	soloU2 := h.CollaborativeFiltering("u1", 1)
	assert.Equal(t, []string{"Pop Music Mix 2024", "Jazz Relaxation Playlist"}, soloU2)
}

func TestCollaborativeFilteringExcluyeAlPropio(t *testing.T) {
	h := newTestHybrid()

	h.UpdateUserProfile("u1", []Event{{Item: "Python Tutorial", Action: ActionShare}})

	// no hay otros usuarios: nada que recomendar
	assert.Empty(t, h.CollaborativeFiltering("u1", 5))
}

func TestTopAffinityCorta5(t *testing.T) {
	h := newTestHybrid()

	var events []Event
	for _, item := range []string{
		"Python Tutorial", "Pop Music Mix 2024", "Jazz Relaxation Playlist",
		"Full Body Workout", "iPhone 15 Review", "Dessert Recipes", "Stock Market Basics",
	} {
		events = append(events, Event{Item: item, Action: ActionView})
	}
	h.UpdateUserProfile("u2", events)

	// cada usuario similar aporta a lo sumo sus 5 mejores
	recs := h.CollaborativeFiltering("u1", 5)
	assert.Len(t, recs, 5)
}

func TestHybridRecommendPrioridadContentBased(t *testing.T) {
	h := newTestHybrid()

	// colaborativo devolverá ["B", "C"] vía un policy de prueba
	h.UpdateUserProfile("other", []Event{
		{Item: "Pop Music Mix 2024", Action: ActionLike},  // B
		{Item: "Jazz Relaxation Playlist", Action: ActionView}, // C
	})

	content := []string{"Python Tutorial", "Pop Music Mix 2024"} // A, B
	out := h.HybridRecommend("u1", content, 3)

	// A, B del content + C del colaborativo, sin repetir B
	assert.Equal(t, []string{"Python Tutorial", "Pop Music Mix 2024", "Jazz Relaxation Playlist"}, out)
}

func TestHybridRecommendTrunca(t *testing.T) {
	h := newTestHybrid()
	out := h.HybridRecommend("u1", []string{"A", "B", "C", "D"}, 2)
	assert.Equal(t, []string{"A", "B"}, out)
}

func TestHybridRecommendNNoPositivoNoExplota(t *testing.T) {
	h := newTestHybrid()
	assert.NotPanics(t, func() {
		h.HybridRecommend("u1", []string{"A", "B"}, 0)
		h.HybridRecommend("u1", []string{"A", "B"}, -1)
	})
}

func TestSimilarUsersEsEnchufable(t *testing.T) {
	h := newTestHybrid()

	h.UpdateUserProfile("u2", []Event{{Item: "Pop Music Mix 2024", Action: ActionLike}})
	h.UpdateUserProfile("u3", []Event{{Item: "Python Tutorial", Action: ActionLike}})

	// política custom: solo u3
	h.SimilarUsers = func(userID string, k int) []string { return []string{"u3"} }

	assert.Equal(t, []string{"Python Tutorial"}, h.CollaborativeFiltering("u1", 5))
}
