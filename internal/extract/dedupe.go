package extract

import "github.com/ppiankov/actornet/internal/model"

type recordKey struct {
	typ  string
	name string
}

// DedupeRecords keeps the first record per (type, name) in input order.
// Later duplicates are dropped, not merged.
func DedupeRecords(records []model.ExtractionRecord) []model.ExtractionRecord {
	seen := make(map[recordKey]bool)
	unique := []model.ExtractionRecord{}

	for _, rec := range records {
		key := recordKey{typ: rec.Type, name: rec.Name}
		if !seen[key] {
			seen[key] = true
			unique = append(unique, rec)
		}
	}

	return unique
}

type actorKey struct {
	name string
	typ  model.ActorType
}

// DedupeActors keeps the first actor per (name, classified type)
func DedupeActors(actors []model.Actor) []model.Actor {
	seen := make(map[actorKey]bool)
	unique := []model.Actor{}

	for _, a := range actors {
		key := actorKey{name: a.Name, typ: a.ClassifiedType}
		if !seen[key] {
			seen[key] = true
			unique = append(unique, a)
		}
	}

	return unique
}
