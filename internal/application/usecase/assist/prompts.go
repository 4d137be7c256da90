package assist

import "fmt"

const defaultPlotPrompt = "You are a professional fiction writer. Using the given keywords, propose three short plot outlines. Keep each outline under 100 words and make them distinct in tone."

const proofreadPrompt = "You are a skilled editor. Proofread the following text: fix typos, correct grammar, adjust punctuation, and improve awkward phrasing.\n\n# Instructions:\n- Respect the intent and nuance of the original text as much as possible.\n- Output only the corrected text, with no commentary or preamble."

func surnamePrompt(keyword string) string {
	return fmt.Sprintf("You are a professional fiction writer. Propose five creative, memorable full character names whose SURNAME contains %q.\n\n# Constraints:\n- List the proposals as bullet points (-).\n- Next to each name, add a short note (about 20 words) on its mood or origin.\n- Favor names that feel distinctive and fit a story character, not common everyday names.", keyword)
}

func givenNamePrompt(keyword string) string {
	return fmt.Sprintf("You are a professional fiction writer. Propose five creative, memorable full character names whose GIVEN NAME contains %q.\n\n# Constraints:\n- List the proposals as bullet points (-).\n- Next to each name, add a short note (about 20 words) on its mood or origin.\n- Favor names that feel distinctive and fit a story character, not common everyday names.", keyword)
}

func thesaurusPrompt(keyword string) string {
	return fmt.Sprintf("You are a vocabulary expert. For the keyword %q, propose three synonyms or alternative phrasings and explain clearly how they differ.\n\n# Output format:\n- Give each proposed word its own heading.\n- For each word, describe its nuance and give a concrete usage example.\n- Keep the whole answer to about 300 words.", keyword)
}
