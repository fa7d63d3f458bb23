// Package datasplit converts segment manifests into the train/test/valid
// JSON layout used for model training.
package datasplit

import (
	"path/filepath"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/config"
	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/manifest"
)

const defaultSamplingRate = 16000

// Convert maps one loosely-typed manifest entry onto a Record. Entries may
// come from the TextGrid splitter's CSV, its JSON manifest, or an already
// converted dataset; field names are probed in that order of likelihood.
func Convert(e manifest.Entry, cfg *config.SplitConfig) manifest.Record {
	audioPath := manifest.String(e, "audio_path")
	relativePath := manifest.String(e, "relative_path")

	var nestedAudio manifest.Entry
	if a, ok := e["audio"].(map[string]any); ok {
		nestedAudio = a
	}
	var nestedMeta manifest.Entry
	if m, ok := e["metadata"].(map[string]any); ok {
		nestedMeta = m
	}

	if audioPath == "" && relativePath == "" {
		if nestedAudio != nil {
			audioPath = manifest.String(nestedAudio, "path")
		}
		if cfg.IncludeMetadata && nestedMeta != nil {
			if audioPath == "" {
				audioPath = manifest.String(nestedMeta, "full_audio_path")
			}
			if relativePath == "" {
				relativePath = manifest.String(nestedMeta, "relative_path")
			}
		}
	}

	sentence := manifest.String(e, "transcription")
	if sentence == "" {
		sentence = manifest.String(e, "sentence")
	}
	speaker := manifest.String(e, "base_filename")
	if speaker == "" {
		speaker = manifest.String(e, "speaker")
	}

	rate, haveRate := manifest.Float(e, "sample_rate")
	duration, haveDuration := manifest.Float(e, "duration")
	if nestedAudio != nil {
		if !haveRate {
			rate, haveRate = manifest.Float(nestedAudio, "sampling_rate")
		}
		if !haveDuration {
			duration, haveDuration = manifest.Float(nestedAudio, "duration")
		}
	}

	chosen := audioPath
	if !cfg.UseAbsolutePath && relativePath != "" {
		chosen = relativePath
	}
	if cfg.AudioBasePath != "" {
		chosen = filepath.Join(cfg.AudioBasePath, chosen)
	}

	samplingRate := defaultSamplingRate
	if !cfg.DefaultRate && haveRate && rate > 0 {
		samplingRate = int(rate)
	}

	rec := manifest.Record{
		Audio: manifest.Audio{
			Path:         chosen,
			SamplingRate: samplingRate,
		},
		Sentence: sentence,
		Speaker:  speaker,
	}

	if cfg.IncludeMetadata {
		if haveDuration {
			rec.Audio.Duration = duration
		}
		meta := &manifest.Metadata{
			OriginalTextGrid: manifest.String(e, "original_textgrid"),
			OriginalWav:      manifest.String(e, "original_wav"),
			FullAudioPath:    audioPath,
			RelativePath:     relativePath,
		}
		if idx, ok := manifest.Float(e, "segment_index"); ok {
			meta.SegmentIndex = int(idx)
		} else if nestedMeta != nil {
			if idx, ok := manifest.Float(nestedMeta, "segment_index"); ok {
				meta.SegmentIndex = int(idx)
			}
		}
		if st, ok := manifest.Float(e, "start_time"); ok {
			meta.StartTime = st
		} else if nestedMeta != nil {
			if st, ok := manifest.Float(nestedMeta, "start_time"); ok {
				meta.StartTime = st
			}
		}
		if et, ok := manifest.Float(e, "end_time"); ok {
			meta.EndTime = et
		} else if nestedMeta != nil {
			if et, ok := manifest.Float(nestedMeta, "end_time"); ok {
				meta.EndTime = et
			}
		}
		if nestedMeta != nil {
			if meta.OriginalTextGrid == "" {
				meta.OriginalTextGrid = manifest.String(nestedMeta, "original_textgrid")
			}
			if meta.OriginalWav == "" {
				meta.OriginalWav = manifest.String(nestedMeta, "original_wav")
			}
		}
		rec.Metadata = meta
	}

	return rec
}
