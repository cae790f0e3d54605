// SPDX-License-Identifier: EPL-2.0

package sndfile

import "github.com/ik5/ears/audio"

// Tags is the embedded metadata of a sound file. Absent fields are empty.
type Tags struct {
	Title       string
	Copyright   string
	Software    string
	Artist      string
	Comment     string
	Date        string
	Album       string
	License     string
	TrackNumber string
	Genre       string
}

// tagAliases maps per-format names onto the shared keys, in lookup order.
var tagAliases = []struct {
	alias string
	key   string
}{
	{"description", audio.TagComment},
	{"encoder", audio.TagSoftware},
	{"product", audio.TagAlbum},
	{"creationdate", audio.TagDate},
	{"year", audio.TagDate},
	{"track", audio.TagTrackNumber},
}

func tagsFromMap(m map[string]string) Tags {
	get := func(key string) string {
		if v, ok := m[key]; ok {
			return v
		}
		for _, a := range tagAliases {
			if a.key != key {
				continue
			}
			if v, ok := m[a.alias]; ok {
				return v
			}
		}
		return ""
	}

	return Tags{
		Title:       get(audio.TagTitle),
		Copyright:   get(audio.TagCopyright),
		Software:    get(audio.TagSoftware),
		Artist:      get(audio.TagArtist),
		Comment:     get(audio.TagComment),
		Date:        get(audio.TagDate),
		Album:       get(audio.TagAlbum),
		License:     get(audio.TagLicense),
		TrackNumber: get(audio.TagTrackNumber),
		Genre:       get(audio.TagGenre),
	}
}

// Map returns the non-empty tags keyed by the audio.Tag constants.
func (t Tags) Map() map[string]string {
	m := make(map[string]string)
	for k, v := range map[string]string{
		audio.TagTitle:       t.Title,
		audio.TagCopyright:   t.Copyright,
		audio.TagSoftware:    t.Software,
		audio.TagArtist:      t.Artist,
		audio.TagComment:     t.Comment,
		audio.TagDate:        t.Date,
		audio.TagAlbum:       t.Album,
		audio.TagLicense:     t.License,
		audio.TagTrackNumber: t.TrackNumber,
		audio.TagGenre:       t.Genre,
	} {
		if v != "" {
			m[k] = v
		}
	}
	return m
}
