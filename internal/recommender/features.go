package recommender

import (
	"math"
	"sort"
	"strings"
)

// FeatureIndex guarda un vector TF-IDF por item, construido sobre el
// texto "categoría + tags" de todo el catálogo. Se reconstruye completo
// cuando cambia el texto del catálogo (no hay update incremental).
type FeatureIndex struct {
	vocab   map[string]int
	vectors map[string]map[int]float64
}

// BuildFeatureIndex ajusta el vectorizador sobre el corpus completo.
// Un corpus vacío produce un índice vacío, no un error.
func BuildFeatureIndex(items []*Item) *FeatureIndex {
	ix := &FeatureIndex{
		vocab:   make(map[string]int),
		vectors: make(map[string]map[int]float64),
	}
	if len(items) == 0 {
		return ix
	}

	// un documento por item: categoría + tags concatenados
	docs := make([][]string, len(items))
	df := make(map[string]int)

	for i, it := range items {
		blob := it.Category + " " + strings.Join(it.Tags, " ")
		tokens := strings.Fields(strings.ToLower(blob))
		docs[i] = tokens

		inDoc := make(map[string]struct{})
		for _, tok := range tokens {
			if _, ok := ix.vocab[tok]; !ok {
				ix.vocab[tok] = len(ix.vocab)
			}
			inDoc[tok] = struct{}{}
		}
		for tok := range inDoc {
			df[tok]++
		}
	}

	n := float64(len(items))
	for i, it := range items {
		tf := make(map[string]int)
		for _, tok := range docs[i] {
			tf[tok]++
		}

		vec := make(map[int]float64, len(tf))
		for tok, count := range tf {
			// idf suavizado, mismo esquema que el vectorizador clásico
			idf := math.Log((1+n)/(1+float64(df[tok]))) + 1
			vec[ix.vocab[tok]] = (float64(count) / float64(len(docs[i]))) * idf
		}
		normalize(vec)
		ix.vectors[it.Name] = vec
	}
	return ix
}

func normalize(vec map[int]float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for k, v := range vec {
		vec[k] = v / norm
	}
}

// Has indica si el item tiene vector (esto decide si una interacción
// alimenta el mapa de afinidades del camino colaborativo).
func (ix *FeatureIndex) Has(name string) bool {
	_, ok := ix.vectors[name]
	return ok
}

// Vector devuelve el vector disperso del item (nil si no está indexado).
func (ix *FeatureIndex) Vector(name string) map[int]float64 {
	return ix.vectors[name]
}

func (ix *FeatureIndex) Len() int { return len(ix.vectors) }

// VocabSize devuelve el tamaño del vocabulario ajustado.
func (ix *FeatureIndex) VocabSize() int { return len(ix.vocab) }

// MostSimilarItems rankea el resto del índice por coseno contra el item
// dado. Item sin vector devuelve vacío.
func (ix *FeatureIndex) MostSimilarItems(name string, k int) []string {
	base, ok := ix.vectors[name]
	if !ok {
		return nil
	}

	type scored struct {
		name string
		sim  float64
	}
	sims := make([]scored, 0, len(ix.vectors)-1)
	for other, vec := range ix.vectors {
		if other == name {
			continue
		}
		sims = append(sims, scored{name: other, sim: Cosine(base, vec)})
	}

	sort.Slice(sims, func(i, j int) bool {
		if sims[i].sim != sims[j].sim {
			return sims[i].sim > sims[j].sim
		}
		return sims[i].name < sims[j].name
	})
	if len(sims) > k {
		sims = sims[:k]
	}

	out := make([]string, 0, len(sims))
	for _, s := range sims {
		out = append(out, s.name)
	}
	return out
}

// Cosine calcula la similitud coseno entre dos vectores dispersos.
func Cosine(a, b map[int]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// iterar sobre el más chico
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, na, nb float64
	for k, va := range a {
		na += va * va
		if vb, ok := b[k]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		nb += vb * vb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
