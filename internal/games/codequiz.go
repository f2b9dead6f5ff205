package games

import "math/rand"

// CodeQuizGame asks code-reading questions across Python, JavaScript and Java.
type CodeQuizGame struct{}

func (g *CodeQuizGame) Spec() GameSpec {
	return GameSpec{ID: "code-quiz", Name: "Code Quiz"}
}

func (g *CodeQuizGame) Generate(rng *rand.Rand, difficulty string) (Question, error) {
	return codeQuizPools.pick(rng, difficulty)
}

var codeQuizPools = pools{
	"easy": {
		{
			text:    codeSnippet("What is the output of this Python code?", "python", "x = 5\ny = 10\nprint(x + y)"),
			correct: "15",
			wrongs:  []string{"5", "10", "Error"},
		},
		{
			text:    codeSnippet("What will be logged to the console?", "javascript", "let name = \"John\";\nconsole.log(`Hello, ${name}!`);"),
			correct: "Hello, John!",
			wrongs:  []string{"Hello, name!", "Hello, ${name}!", "Error"},
		},
		{
			text:    codeSnippet("What is the output of this Java code?", "java", "public class Main {\n  public static void main(String[] args) {\n    System.out.println(\"Hello, World!\");\n  }\n}"),
			correct: "Hello, World!",
			wrongs:  []string{"\"Hello, World!\"", "Error", "No output"},
		},
	},
	"medium": {
		{
			text:    codeSnippet("What is the output of this Python code?", "python", "def factorial(n):\n  if n == 0:\n    return 1\n  else:\n    return n * factorial(n-1)\nprint(factorial(5))"),
			correct: "120",
			wrongs:  []string{"24", "Error", "Infinite loop"},
		},
		{
			text:    codeSnippet("What will be logged to the console?", "javascript", "const numbers = [1, 2, 3, 4, 5];\nconst doubled = numbers.map(num => num * 2);\nconsole.log(doubled);"),
			correct: "[2, 4, 6, 8, 10]",
			wrongs:  []string{"[1, 2, 3, 4, 5]", "[1, 4, 9, 16, 25]", "Error"},
		},
		{
			text:    codeSnippet("What is the output of this Java code?", "java", "import java.util.ArrayList;\npublic class Main {\n  public static void main(String[] args) {\n    ArrayList<String> cars = new ArrayList<String>();\n    cars.add(\"Volvo\");\n    cars.add(\"BMW\");\n    cars.add(\"Ford\");\n    System.out.println(cars.get(1));\n  }\n}"),
			correct: "BMW",
			wrongs:  []string{"Volvo", "Ford", "Error"},
		},
	},
	"hard": {
		{
			text:    codeSnippet("What is the output of this Python code?", "python", "a = [1, 2, 3]\nb = a\nb.append(4)\nprint(a)"),
			correct: "[1, 2, 3, 4]",
			wrongs:  []string{"[1, 2, 3]", "[4]", "Error"},
		},
		{
			text:    codeSnippet("What will be logged to the console?", "javascript", "console.log(0.1 + 0.2 === 0.3);"),
			correct: "false",
			wrongs:  []string{"true", "Error", "undefined"},
		},
		{
			text:    codeSnippet("What is the output of this Java code?", "java", "try {\n  int[] myNumbers = {1, 2, 3};\n  System.out.println(myNumbers[10]);\n} catch (Exception e) {\n  System.out.println(\"Something went wrong.\");\n}"),
			correct: "Something went wrong.",
			wrongs:  []string{"10", "3", "Error"},
		},
	},
}

func init() {
	RegisterGame(&CodeQuizGame{})
}
