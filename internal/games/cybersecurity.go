package games

import "math/rand"

// CyberSecurityGame covers security fundamentals.
type CyberSecurityGame struct{}

func (g *CyberSecurityGame) Spec() GameSpec {
	return GameSpec{ID: "cyber-security", Name: "Cyber Security"}
}

func (g *CyberSecurityGame) Generate(rng *rand.Rand, difficulty string) (Question, error) {
	return cyberSecurityPools.pick(rng, difficulty)
}

var cyberSecurityPools = pools{
	"easy": {
		{
			text:    "What is phishing?",
			correct: "A type of social engineering attack used to steal user data",
			wrongs:  []string{"A type of computer virus", "A method for securing a network", "A type of hardware"},
		},
		{
			text:    "What is a strong password?",
			correct: "A password that is long and contains a mix of uppercase and lowercase letters, numbers, and symbols",
			wrongs:  []string{"A password that is easy to remember, like 'password123'", "A password that is the name of your pet", "A password that is your birthday"},
		},
	},
	"medium": {
		{
			text:    "What is a DDoS attack?",
			correct: "An attack that attempts to make an online service unavailable by overwhelming it with traffic from multiple sources",
			wrongs:  []string{"An attack that steals a user's personal information", "An attack that encrypts a user's files and demands a ransom", "An attack that installs malware on a user's computer"},
		},
		{
			text:    "What is two-factor authentication (2FA)?",
			correct: "A security process where users provide two different authentication factors to verify themselves",
			wrongs:  []string{"A type of password that is twice as long as a normal password", "A security question that you have to answer in addition to your password", "A type of firewall"},
		},
	},
	"hard": {
		{
			text:    "What is a zero-day exploit?",
			correct: "An attack that targets a previously unknown vulnerability in a software application",
			wrongs:  []string{"An attack that occurs on the first day a new software is released", "An attack that uses a virus that has not been seen before", "An attack that is carried out by a government agency"},
		},
		{
			text:    "What is the principle of least privilege?",
			correct: "The principle that a user should only have the minimum level of access necessary to perform their job functions",
			wrongs:  []string{"The principle that a user should have access to all the files on a network", "The principle that a user should be able to install any software they want on their computer", "The principle that a user should be able to change their own password at any time"},
		},
	},
}

func init() {
	RegisterGame(&CyberSecurityGame{})
}
