package assist

import "strings"

// '、' is the Japanese comma; the original frontend mixes it freely with
// ASCII commas and spaces.
var keywordSeparators = strings.NewReplacer("、", " ", ",", " ")

func keywordCount(text string) int {
	return len(strings.Fields(keywordSeparators.Replace(text)))
}
