package analysis

import "strings"

// NLTK English stopword corpus.
var englishStopwords = toSet(`i me my myself we our ours ourselves you you're you've you'll you'd
your yours yourself yourselves he him his himself she she's her hers herself it it's its itself
they them their theirs themselves what which who whom this that that'll these those am is are was
were be been being have has had having do does did doing a an the and but if or because as until
while of at by for with about against between into through during before after above below to
from up down in out on off over under again further then once here there when where why how all
any both each few more most other some such no nor not only own same so than too very s t can will
just don don't should should've now d ll m o re ve y ain aren aren't couldn couldn't didn didn't
doesn doesn't hadn hadn't hasn hasn't haven haven't isn isn't ma mightn mightn't mustn mustn't
needn needn't shan shan't shouldn shouldn't wasn wasn't weren weren't won won't wouldn wouldn't`)

// ASCII punctuation characters.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func toSet(words string) map[string]struct{} {
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}

func IsStopword(word string) bool {
	_, ok := englishStopwords[word]
	return ok
}

// IsPunctuation matches tokens that appear verbatim inside the punctuation
// table, which covers every single punctuation character.
func IsPunctuation(token string) bool {
	return token != "" && strings.Contains(punctuation, token)
}
