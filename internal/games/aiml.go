package games

import "math/rand"

// AIMLGame covers artificial intelligence and machine learning concepts.
type AIMLGame struct{}

func (g *AIMLGame) Spec() GameSpec {
	return GameSpec{ID: "ai-ml", Name: "AI/ML Game"}
}

func (g *AIMLGame) Generate(rng *rand.Rand, difficulty string) (Question, error) {
	return aimlPools.pick(rng, difficulty)
}

var aimlPools = pools{
	"easy": {
		{
			text:    "What is the primary goal of unsupervised learning?",
			correct: "To find hidden patterns in unlabeled data",
			wrongs:  []string{"To make predictions based on labeled data", "To learn from a reward system", "To classify data into predefined categories"},
		},
		{
			text:    "Which of these is a common application of natural language processing (NLP)?",
			correct: "Sentiment analysis",
			wrongs:  []string{"Image recognition", "Stock price prediction", "Self-driving cars"},
		},
		{
			text:    "What does a CPU primarily do in a computer?",
			correct: "Execute instructions",
			wrongs:  []string{"Store data long-term", "Render graphics", "Manage network connections"},
		},
	},
	"medium": {
		{
			text:    "What is the main difference between a list and a tuple in Python?",
			correct: "Lists are mutable, while tuples are immutable",
			wrongs:  []string{"Tuples can only store integers", "Lists are faster than tuples", "There is no difference"},
		},
		{
			text:    "In machine learning, what is 'overfitting'?",
			correct: "A model that performs well on training data but poorly on new data",
			wrongs:  []string{"A model that is too simple", "A model that has not been trained enough", "A model that is perfect"},
		},
		{
			text:    "What is the purpose of a firewall in network security?",
			correct: "To monitor and control incoming and outgoing network traffic",
			wrongs:  []string{"To speed up internet connection", "To store passwords securely", "To create backups of data"},
		},
	},
	"hard": {
		{
			text:    "What is the difference between 'shallow copy' and 'deep copy' of an object in Python?",
			correct: "A shallow copy creates a new object but references the original nested objects, while a deep copy creates a fully independent copy.",
			wrongs:  []string{"A deep copy is faster than a shallow copy", "A shallow copy is only for lists", "There is no difference"},
		},
		{
			text:    "What is the halting problem in computer science?",
			correct: "The problem of determining, from a description of an arbitrary computer program and an input, whether the program will finish running or continue to run forever.",
			wrongs:  []string{"The problem of a computer program crashing", "The problem of a computer running out of memory", "The problem of a computer being too slow"},
		},
		{
			text:    "What is a quantum bit (qubit)?",
			correct: "A unit of quantum information that can exist in a superposition of both 0 and 1.",
			wrongs:  []string{"A very small classical bit", "A bit that is resistant to errors", "A bit that can store three values"},
		},
	},
}

func init() {
	RegisterGame(&AIMLGame{})
}
