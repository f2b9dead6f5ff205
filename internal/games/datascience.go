package games

import "math/rand"

// DataScienceGame covers statistics and analytics.
type DataScienceGame struct{}

func (g *DataScienceGame) Spec() GameSpec {
	return GameSpec{ID: "data-science", Name: "Data Science"}
}

func (g *DataScienceGame) Generate(rng *rand.Rand, difficulty string) (Question, error) {
	return dataSciencePools.pick(rng, difficulty)
}

var dataSciencePools = pools{
	"easy": {
		{
			text:    "What is the mean of the following numbers: 2, 4, 6, 8?",
			correct: "5",
			wrongs:  []string{"4", "6", "8"},
		},
		{
			text:    "What is the median of the following numbers: 1, 2, 3, 4, 5?",
			correct: "3",
			wrongs:  []string{"1", "2", "4"},
		},
	},
	"medium": {
		{
			text:    "What is the difference between supervised and unsupervised learning?",
			correct: "Supervised learning uses labeled data, while unsupervised learning uses unlabeled data",
			wrongs:  []string{"Supervised learning is used for classification, while unsupervised learning is used for regression", "Supervised learning is more accurate than unsupervised learning", "There is no difference between supervised and unsupervised learning"},
		},
		{
			text:    "What is a confusion matrix?",
			correct: "A table that is used to evaluate the performance of a classification model",
			wrongs:  []string{"A table that is used to visualize data", "A table that is used to store data", "A table that is used to clean data"},
		},
	},
	"hard": {
		{
			text:    "What is the bias-variance tradeoff?",
			correct: "The tradeoff between a model's ability to fit the training data and its ability to generalize to new data",
			wrongs:  []string{"The tradeoff between the speed and accuracy of a model", "The tradeoff between the size and complexity of a model", "The tradeoff between the number of features and the number of samples in a dataset"},
		},
		{
			text:    "What is a p-value?",
			correct: "The probability of obtaining a result at least as extreme as the one that was actually observed, assuming that the null hypothesis is true",
			wrongs:  []string{"The probability that the null hypothesis is true", "The probability that the alternative hypothesis is true", "The probability of making a Type I error"},
		},
	},
}

func init() {
	RegisterGame(&DataScienceGame{})
}
