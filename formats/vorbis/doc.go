// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with
// github.com/jfreymuth/oggvorbis.
//
// Samples are produced as float32 directly by the codec. The comment header
// is exposed through audio.Tagger with lower-cased field names, so TITLE,
// ARTIST, DATE, ALBUM, GENRE, LICENSE and TRACKNUMBER map to the audio.Tag
// constants unchanged.
//
//	src, _ := vorbis.Decoder{}.Decode(file)
//	title := src.(audio.Tagger).Tags()[audio.TagTitle]
package vorbis
