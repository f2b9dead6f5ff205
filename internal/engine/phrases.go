package engine

import "math/rand"

// RandomPhrase picks a typing phrase for the given difficulty. Unknown
// difficulties fall back to the medium pool.
func RandomPhrase(rng *rand.Rand, difficulty string) string {
	pool, ok := phrasePools[difficulty]
	if !ok {
		pool = phrasePools["medium"]
	}
	return pool[rng.Intn(len(pool))]
}

var phrasePools = map[string][]string{
	"easy": {
		"The quick brown fox jumps over the lazy dog.",
		"Hello world! Welcome to programming.",
		"Python is fun and easy to learn.",
		"I love coding and building applications.",
		"Machine learning is amazing technology.",
		"Data science rocks and changes lives.",
		"Web development is cool and creative.",
		"Artificial intelligence is the future.",
		"Cloud computing is powerful and scalable.",
		"Big data analytics drives insights.",
		"Cybersecurity matters for protection.",
		"Blockchain technology offers security.",
		"Internet of Things connects devices.",
		"Virtual reality creates immersive worlds.",
		"Augmented reality enhances reality.",
		"Quantum computing solves complex problems.",
		"Neural networks mimic brain function.",
		"Deep learning discovers patterns.",
		"Natural language processing understands text.",
		"Computer vision sees and interprets.",
		"Reinforcement learning learns through interaction.",
		"Supervised learning uses labeled data.",
		"Unsupervised learning finds hidden patterns.",
		"Regression analysis predicts values.",
		"Classification models categorize data.",
		"Clustering algorithms group similar items.",
		"Dimensionality reduction simplifies data.",
		"Ensemble methods combine predictions.",
		"Gradient boosting improves accuracy.",
		"Random forests build decision trees.",
		"Support vector machines separate classes.",
		"K-nearest neighbors find similarities.",
		"Naive Bayes uses probability.",
		"Decision trees make choices.",
		"Linear regression finds relationships.",
		"Logistic regression predicts categories.",
		"K-means clustering finds centers.",
		"Principal component analysis reduces features.",
		"Autoencoders compress and reconstruct.",
		"Convolutional neural networks process images.",
		"Recurrent neural networks handle sequences.",
		"Long short-term memory remembers context.",
		"Transformers revolutionize language tasks.",
		"Attention mechanisms focus on relevance.",
		"Backpropagation trains neural networks.",
		"Activation functions add non-linearity.",
		"Loss functions measure errors.",
		"Dropout prevents overfitting.",
		"Transfer learning reuses knowledge.",
		"Data augmentation increases variety.",
		"Tokenization breaks text into pieces.",
		"Sentiment analysis detects emotions.",
		"Word embeddings represent meaning.",
		"Language models predict text.",
		"Machine translation converts languages.",
		"Text summarization condenses information.",
		"Speech recognition converts sound to text.",
		"Image classification identifies objects.",
		"Object detection locates items.",
		"Feature extraction finds characteristics.",
		"Q-learning learns optimal actions.",
		"Reward functions guide learning.",
		"Data preprocessing cleans information.",
		"Feature engineering creates useful variables.",
		"Data visualization shows patterns.",
		"Hypothesis testing validates claims.",
		"Time series analysis studies trends.",
		"Anomaly detection finds outliers.",
		"Predictive modeling forecasts outcomes.",
		"Data privacy protects information.",
		"TensorFlow builds machine learning models.",
		"PyTorch offers dynamic computation.",
		"Scikit-learn provides algorithms.",
		"Pandas manipulates data easily.",
		"NumPy supports numerical operations.",
		"Jupyter notebooks enable interactive work.",
		"Cross-validation assesses performance.",
		"Hyperparameter tuning optimizes settings.",
	},
	"medium": {
		"Machine learning algorithms can be broadly classified into supervised, unsupervised, and reinforcement learning categories, each with distinct approaches to data analysis and pattern recognition.",
		"Data science involves extracting insights from structured and unstructured data using statistical methods, programming languages, and domain expertise to drive informed decision-making processes.",
		"Web development encompasses front-end technologies like HTML, CSS, and JavaScript for user interfaces, as well as back-end frameworks such as Node.js, Django, or Flask for server-side logic and database interactions.",
		"Artificial intelligence systems are designed to perform tasks that typically require human intelligence, such as visual perception, speech recognition, decision-making, and language translation, often using complex algorithms and large datasets.",
		"Cloud computing provides scalable resources over the internet, enabling businesses to deploy applications without managing physical infrastructure, with services like Amazon Web Services, Microsoft Azure, and Google Cloud Platform offering various computing, storage, and networking capabilities.",
		"Big data analytics helps organizations process and analyze vast amounts of information to uncover patterns, trends, and insights, utilizing technologies like Hadoop, Spark, and NoSQL databases for distributed computing and storage solutions.",
		"Cybersecurity professionals work to protect digital systems from threats like malware, phishing, ransomware, and unauthorized access, employing techniques such as encryption, multi-factor authentication, and intrusion detection systems to maintain system integrity.",
		"Blockchain technology offers decentralized and secure ways to record transactions across multiple parties without intermediaries, using cryptographic methods and distributed consensus mechanisms like proof-of-work or proof-of-stake to ensure data immutability.",
	},
}
