package entities

// Document keys of a persisted word entry.
const (
	KeyLanguage    = "language"
	KeyWordEnglish = "word_english"
	KeyWordAlt     = "word_alt"
	KeyDefinition  = "definition"
	KeyAudioURI    = "audio_uri"
)

// WordEntry is a single vocabulary record submitted by a user.
type WordEntry struct {
	Language    Language // language the word is being learned in
	WordEnglish string   // the word in English
	WordAlt     string   // the word in the target language (e.g. Cantonese in Jyutping)
	Definition  string   // definition of the word
	AudioURI    string   // link to a pronunciation recording
}

// Document returns the persisted layout of the entry.
// Keys are always in the same order so listings get a stable column order.
func (e WordEntry) Document() Document {
	return Document{
		{Key: KeyLanguage, Value: e.Language.String()},
		{Key: KeyWordEnglish, Value: e.WordEnglish},
		{Key: KeyWordAlt, Value: e.WordAlt},
		{Key: KeyDefinition, Value: e.Definition},
		{Key: KeyAudioURI, Value: e.AudioURI},
	}
}
