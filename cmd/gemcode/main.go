package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gemcode-cli/gemcode/internal/config"
	"github.com/gemcode-cli/gemcode/internal/core"
	"github.com/gemcode-cli/gemcode/internal/history"
	"github.com/gemcode-cli/gemcode/internal/llm"
	"github.com/gemcode-cli/gemcode/internal/render"
	"github.com/gemcode-cli/gemcode/internal/repl"
	"github.com/gemcode-cli/gemcode/internal/session"
	"github.com/gemcode-cli/gemcode/internal/skills"
)

var BUILD_VERSION = "dev"

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `gemcode - a lightweight CLI coding agent

USAGE:
  gemcode [options] [prompt...]

MODES:
  gemcode                   Start an interactive chat
  gemcode list the tests    Send a prompt, then stay interactive
  echo "prompt" | gemcode   Answer a piped prompt and exit

CONFIGURATION:
  OPENAI_API_KEY     API key for the completion endpoint (required)
  OPENAI_BASE_URL    OpenAI-compatible endpoint URL (required)
  OPENAI_MODEL       Model identifier
  WORKDIR            Directory tools run in (default: current directory)
  SKILLS_DIR         Directory of SKILL.md skill documents

  Defaults for everything except the API key can also be set in
  ~/.gemcode/config.yaml.

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gemcode: %v\n", err)
		os.Exit(1)
	}

	logger, err := initializeLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new gemcode session --------", zap.Any("args", os.Args))

	if err := run(cfg, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	provider := llm.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL)

	var loadedSkills []skills.Skill
	if cfg.SkillsDir != "" {
		loadedSkills = skills.Load(cfg.SkillsDir, logger)
	}

	sess := session.New(provider, cfg.Model, cfg.WorkDir, loadedSkills, logger)

	// Piped input: answer a single prompt with plain output and exit
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runPiped(ctx, sess)
	}

	renderer := render.New(os.Stdout, terminalWidth)
	sess.SetRenderer(renderer)

	historyManager, err := history.NewHistoryManager(core.HistoryFile())
	if err != nil {
		return fmt.Errorf("failed to initialize history manager: %w", err)
	}

	render.RenderWelcome(os.Stdout, render.WelcomeInfo{
		Endpoint:   cfg.BaseURL,
		Model:      cfg.Model,
		WorkDir:    cfg.WorkDir,
		SkillCount: len(loadedSkills),
		Version:    BUILD_VERSION,
	}, terminalWidth())

	r := repl.New(sess, historyManager, renderer, loadedSkills, cfg.WorkDir, logger)
	return r.Run(ctx, strings.Join(flag.Args(), " "))
}

// runPiped reads all of stdin as one prompt and echoes the response.
func runPiped(ctx context.Context, sess *session.Session) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	prompt := strings.TrimSpace(string(input))
	if prompt == "" {
		return nil
	}

	if err := sess.Chat(ctx, prompt, func(content string) { fmt.Print(content) }); err != nil {
		fmt.Fprintf(os.Stderr, "gemcode: %v\n", err)
		return err
	}
	fmt.Println()
	return nil
}

// terminalWidth returns the current stdout width, defaulting to 80.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func initializeLogger(level string) (*zap.Logger, error) {
	logLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if parsed, err := zap.ParseAtomicLevel(level); err == nil {
		logLevel = parsed
	}
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	// Logs go to a file so they never interleave with agent output.
	// Use `tail -f ~/.gemcode/gemcode.log` to watch a live session.
	return loggerConfig.Build()
}
