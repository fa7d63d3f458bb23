package datasplit

import (
	"math/rand"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
)

// SplitRandom shuffles records with the given seed and slices them into
// train/test/valid sets. Index arithmetic truncates, so the valid set
// absorbs any rounding remainder.
func SplitRandom(records []manifest.Record, trainRatio, testRatio float64, seed int64) (train, test, valid []manifest.Record) {
	shuffled := make([]manifest.Record, len(records))
	copy(shuffled, records)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	total := len(shuffled)
	trainEnd := int(float64(total) * trainRatio)
	testEnd := trainEnd + int(float64(total)*testRatio)

	return shuffled[:trainEnd], shuffled[trainEnd:testEnd], shuffled[testEnd:]
}

// SplitBySpeaker assigns whole speakers to one set each so no voice leaks
// across the train/test boundary. Speakers are shuffled with the given seed
// and sliced by ratio; records keep their manifest order within each set.
func SplitBySpeaker(records []manifest.Record, trainRatio, testRatio float64, seed int64) (train, test, valid []manifest.Record) {
	bySpeaker := map[string][]manifest.Record{}
	var speakers []string
	for _, rec := range records {
		if _, ok := bySpeaker[rec.Speaker]; !ok {
			speakers = append(speakers, rec.Speaker)
		}
		bySpeaker[rec.Speaker] = append(bySpeaker[rec.Speaker], rec)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(speakers), func(i, j int) {
		speakers[i], speakers[j] = speakers[j], speakers[i]
	})

	total := len(speakers)
	trainEnd := int(float64(total) * trainRatio)
	testEnd := trainEnd + int(float64(total)*testRatio)

	for i, speaker := range speakers {
		switch {
		case i < trainEnd:
			train = append(train, bySpeaker[speaker]...)
		case i < testEnd:
			test = append(test, bySpeaker[speaker]...)
		default:
			valid = append(valid, bySpeaker[speaker]...)
		}
	}
	return train, test, valid
}

// CountSpeakers returns the number of distinct speakers in a set.
func CountSpeakers(records []manifest.Record) int {
	seen := map[string]bool{}
	for _, rec := range records {
		seen[rec.Speaker] = true
	}
	return len(seen)
}
