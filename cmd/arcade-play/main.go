// Command arcade-play runs a quiz round or a speed-typing challenge in
// the terminal against a running arcade server.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/engine"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/ledger"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/quizapi"
	"github.com/Divyansh-chaurasia786/vidyasetu-arcade/internal/report"
)

func main() {
	game := flag.String("game", "code-quiz", "game type (code-quiz, ai-ml, cyber-security, data-science, web-dev, speed-typing)")
	difficulty := flag.String("difficulty", "medium", "difficulty (easy, medium, hard)")
	name := flag.String("name", "", "player name")
	flag.Parse()

	logger := log.New(os.Stderr, "[PLAY] ", log.LstdFlags)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("dotenv_load_failed err=%v", err)
	}

	if *name == "" {
		fmt.Print("Your name: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		*name = strings.TrimSpace(line)
	}
	identity := engine.Identity{DisplayName: *name}
	if err := identity.Validate(); err != nil {
		logger.Fatalf("identity_invalid err=%v", err)
	}

	scoreboard := os.Getenv("SCOREBOARD_URL")
	if scoreboard == "" {
		scoreboard = "http://localhost:8080"
	}
	reporter := report.New(scoreboard, nil, logger)

	if *game == "speed-typing" {
		runTyping(identity, reporter, *difficulty, logger)
		return
	}
	runQuiz(identity, reporter, *game, *difficulty, logger)
}

func runQuiz(identity engine.Identity, reporter *report.Reporter, game, difficulty string, logger *log.Logger) {
	dataDir := os.Getenv("ARCADE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	led, err := ledger.Open(dataDir)
	if err != nil {
		logger.Fatalf("ledger_open_failed err=%v", err)
	}

	var remote engine.RemoteSource
	if url := os.Getenv("SCOREBOARD_URL"); url != "" {
		remote = quizapi.NewClient(quizapi.Config{BaseURL: url})
	}
	generator := engine.NewGenerator(remote, logger)

	session, err := engine.NewSession(identity, generator, led, reporter, logger)
	if err != nil {
		logger.Fatalf("session_create_failed err=%v", err)
	}
	if err := session.Start(context.Background(), game, difficulty); err != nil {
		logger.Fatalf("session_start_failed err=%v", err)
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		q, err := session.Current()
		if errors.Is(err, engine.ErrSessionNotActive) {
			break
		}
		if err != nil {
			logger.Fatalf("session_failed err=%v", err)
		}

		answered, total := session.Progress()
		fmt.Printf("\nQuestion %d/%d: %s\n", answered+1, total, q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		choice := -1
		for choice < 0 || choice >= len(q.Options) {
			fmt.Print("Answer: ")
			if !in.Scan() {
				return
			}
			n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
			if err == nil {
				choice = n - 1
			}
		}

		correct, done, err := session.SubmitAnswer(context.Background(), q.Options[choice])
		if err != nil {
			logger.Fatalf("submit_failed err=%v", err)
		}
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer was: %s\n", q.Options[q.CorrectIndex])
		}
		if done {
			break
		}
	}

	fmt.Printf("\nFinal score: %d\n", session.Score())
}

func runTyping(identity engine.Identity, reporter *report.Reporter, difficulty string, logger *log.Logger) {
	session, err := engine.NewTypingSession(identity, reporter, logger)
	if err != nil {
		logger.Fatalf("typing_create_failed err=%v", err)
	}
	session.Start(difficulty)

	fmt.Println("Type each phrase and press enter. You have 60 seconds.")
	in := bufio.NewScanner(os.Stdin)
	for {
		phrase, err := session.Phrase()
		if err != nil {
			break
		}
		fmt.Printf("\n> %s\n", phrase)
		if !in.Scan() {
			break
		}

		stats, err := session.OnInput(in.Text())
		if errors.Is(err, engine.ErrTimeUp) {
			fmt.Println("\nTime is up!")
			break
		}
		if err != nil {
			logger.Fatalf("typing_failed err=%v", err)
		}
		fmt.Printf("WPM %d | accuracy %d%% | %ds left\n", stats.WPM, stats.Accuracy, stats.SecondsLeft)
	}

	final, err := session.End()
	if err != nil {
		logger.Fatalf("typing_end_failed err=%v", err)
	}
	fmt.Printf("\nFinal: %d WPM, %d%% accuracy, %d phrases\n", final.WPM, final.Accuracy, final.PhrasesComplete)
}
