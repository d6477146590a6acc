package entities

// Part-of-speech tags of interest, as emitted by the annotation collaborator.
const (
	PosNoun       = "NOUN"
	PosProperNoun = "PROPN"
)

// Token is one annotated token of a sentence.
type Token struct {
	Text         string `json:"text"`
	PartOfSpeech string `json:"part_of_speech"`
}

// AnnotatedSentence is one sentence with token-level annotations and the
// multi-word noun phrases the annotator chunked out of it.
type AnnotatedSentence struct {
	Text        string   `json:"text"`
	Tokens      []Token  `json:"tokens"`
	NounPhrases []string `json:"noun_phrases"`
}

// NamedEntity is a labeled entity span found anywhere in the document.
type NamedEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// NounKeywords returns the NOUN/PROPN token texts in sentence order.
func (s AnnotatedSentence) NounKeywords() []string {
	keywords := make([]string, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		if tok.PartOfSpeech == PosNoun || tok.PartOfSpeech == PosProperNoun {
			keywords = append(keywords, tok.Text)
		}
	}
	return keywords
}
