// Package stats computes training-volume aggregates over a snapshot of
// log records. Everything here is a pure function of its input.
package stats

import "github.com/meltforce/setlog/internal/models"

// TotalVolume returns the total mass moved across all records,
// Σ sets × reps × weight. An empty input yields 0.0.
func TotalVolume(records []models.Record) float64 {
	total := 0.0
	for _, r := range records {
		total += r.Volume()
	}
	return total
}

// Summary aggregates a full log snapshot.
type Summary struct {
	TotalVolume float64 `json:"total_volume"`
	TotalSets   int     `json:"total_sets"`
	TotalReps   int     `json:"total_reps"`
	Exercises   int     `json:"exercises"`
}

// Summarize computes the headline metrics for a log snapshot.
// TotalSets counts logged entries, matching the legacy
// "Total Sets Logged" readout, not the sum of the sets column.
func Summarize(records []models.Record) Summary {
	s := Summary{TotalSets: len(records)}
	seen := make(map[string]bool)
	for _, r := range records {
		s.TotalVolume += r.Volume()
		s.TotalReps += r.Sets * r.Reps
		if !seen[r.Exercise] {
			seen[r.Exercise] = true
			s.Exercises++
		}
	}
	return s
}

// VolumeBucket is an aggregate for one grouping key (exercise or date).
type VolumeBucket struct {
	Key    string  `json:"key"`
	Sets   int     `json:"sets"`
	Volume float64 `json:"volume"`
}

// VolumeByExercise groups volume per exercise name, keyed in
// first-logged order so output is stable for a given log.
func VolumeByExercise(records []models.Record) []VolumeBucket {
	return bucketBy(records, func(r models.Record) string { return r.Exercise })
}

// VolumeByDate groups volume per calendar date in first-logged order.
func VolumeByDate(records []models.Record) []VolumeBucket {
	return bucketBy(records, func(r models.Record) string { return r.Date })
}

func bucketBy(records []models.Record, key func(models.Record) string) []VolumeBucket {
	idx := make(map[string]int)
	var out []VolumeBucket
	for _, r := range records {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, VolumeBucket{Key: k})
		}
		out[i].Sets++
		out[i].Volume += r.Volume()
	}
	return out
}
