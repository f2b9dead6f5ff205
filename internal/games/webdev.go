package games

import "math/rand"

// WebDevGame covers front-end and back-end web development.
type WebDevGame struct{}

func (g *WebDevGame) Spec() GameSpec {
	return GameSpec{ID: "web-dev", Name: "Web Dev Challenge"}
}

func (g *WebDevGame) Generate(rng *rand.Rand, difficulty string) (Question, error) {
	return webDevPools.pick(rng, difficulty)
}

var webDevPools = pools{
	"easy": {
		{
			text:    "What does HTML stand for?",
			correct: "Hypertext Markup Language",
			wrongs:  []string{"Hyperlinks and Text Markup Language", "Home Tool Markup Language", "Hyper-Text-Markup-Language"},
		},
		{
			text:    "What does CSS stand for?",
			correct: "Cascading Style Sheets",
			wrongs:  []string{"Creative Style Sheets", "Computer Style Sheets", "Colorful Style Sheets"},
		},
	},
	"medium": {
		{
			text:    "What is the difference between '==' and '===' in JavaScript?",
			correct: "'==' compares the values of two variables, while '===' compares both the values and the types of two variables",
			wrongs:  []string{"'==' is used for assignment, while '===' is used for comparison", "'==' is a syntax error", "There is no difference between '==' and '==='. "},
		},
		{
			text:    "What is a responsive web design?",
			correct: "A web design that adjusts to the screen size of the device it is being viewed on",
			wrongs:  []string{"A web design that is very fast", "A web design that is very colorful", "A web design that is very simple"},
		},
	},
	"hard": {
		{
			text:    "What is a closure in JavaScript?",
			correct: "A function that has access to the variables in its outer (enclosing) function's scope chain",
			wrongs:  []string{"A function that is closed and cannot be called", "A function that has no access to variables outside of its own scope", "A function that can only be called once"},
		},
		{
			text:    "What is the event loop in JavaScript?",
			correct: "A mechanism that allows JavaScript to perform non-blocking operations",
			wrongs:  []string{"A loop that iterates through all the events on a web page", "A loop that is used to create animations", "A loop that is used to handle user input"},
		},
	},
}

func init() {
	RegisterGame(&WebDevGame{})
}
