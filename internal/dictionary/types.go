// Package dictionary talks to the public dictionary web service and models
// the entries it returns.
package dictionary

import (
	"strings"

	"github.com/k3a/html2text"
)

// WordEntry is one dictionary record returned for a queried term.
type WordEntry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics"`
	Origin     string     `json:"origin,omitempty"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is a pronunciation with an optional audio recording.
type Phonetic struct {
	Text      string `json:"text,omitempty"`
	Audio     string `json:"audio,omitempty"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense of a word.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// ErrorPayload is the object the service returns for unknown terms.
type ErrorPayload struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

// HasPhonetics reports whether the entry carries at least one phonetic.
func (e WordEntry) HasPhonetics() bool {
	return len(e.Phonetics) > 0
}

// PhoneticText returns the text of the first phonetic, if any.
func (e WordEntry) PhoneticText() string {
	if !e.HasPhonetics() {
		return ""
	}
	return e.Phonetics[0].Text
}

// AudioURL returns the recording of the first phonetic, if any.
func (e WordEntry) AudioURL() string {
	if !e.HasPhonetics() {
		return ""
	}
	return e.Phonetics[0].Audio
}

// Clone returns a deep copy so a saved favorite never shares slices with the
// lookup result it came from.
func (e WordEntry) Clone() WordEntry {
	out := e
	if e.Phonetics != nil {
		out.Phonetics = make([]Phonetic, len(e.Phonetics))
		copy(out.Phonetics, e.Phonetics)
	}
	out.SourceURLs = cloneStrings(e.SourceURLs)
	if e.Meanings != nil {
		out.Meanings = make([]Meaning, len(e.Meanings))
		for i, m := range e.Meanings {
			out.Meanings[i] = m.clone()
		}
	}
	return out
}

func (m Meaning) clone() Meaning {
	out := m
	out.Synonyms = cloneStrings(m.Synonyms)
	out.Antonyms = cloneStrings(m.Antonyms)
	if m.Definitions != nil {
		out.Definitions = make([]Definition, len(m.Definitions))
		for i, d := range m.Definitions {
			d.Synonyms = cloneStrings(d.Synonyms)
			d.Antonyms = cloneStrings(d.Antonyms)
			out.Definitions[i] = d
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// flatten strips markup and entities some upstream records carry.
func flatten(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return strings.TrimSpace(html2text.HTML2Text(s))
}

func (e *WordEntry) sanitize() {
	e.Origin = flatten(e.Origin)
	for i := range e.Meanings {
		for j := range e.Meanings[i].Definitions {
			d := &e.Meanings[i].Definitions[j]
			d.Definition = flatten(d.Definition)
			d.Example = flatten(d.Example)
		}
	}
}
