package quote

import "math/rand/v2"

// Quotes is the fixed list of motivational messages.
var Quotes = []string{
	"Your mental health is a priority. Take care of yourself!",
	"Small steps every day lead to big changes.",
	"You are stronger than you think!",
	"Breathe. Relax. Everything will be okay.",
	"Self-care is not selfish. Take time for yourself!",
}

// Pick returns a quote chosen uniformly at random using src.
func Pick(src rand.Source) string {
	return Quotes[rand.New(src).IntN(len(Quotes))]
}
