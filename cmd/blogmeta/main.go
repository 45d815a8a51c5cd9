package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogmeta"
	"github.com/fwojciec/blogmeta/frontmatter"
	"github.com/fwojciec/blogmeta/fs"
	"github.com/fwojciec/blogmeta/index"
	blogslog "github.com/fwojciec/blogmeta/slog"
	"github.com/fwojciec/blogmeta/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Index service for end-to-end testing.
	PostService blogmeta.PostService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogmeta"),
		kong.Description("Extract SEO metadata from Markdown blog posts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogmeta --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire file-backed services.
	fmParser := frontmatter.NewParser()
	posts := blogslog.NewLoggingPostSource(fs.NewCorpus(cli.PostsDir, fmParser, logger), logger)
	deps.Logger = logger
	deps.Parser = fmParser
	deps.Posts = posts
	deps.Vocabulary = blogslog.NewLoggingVocabularyService(fs.NewVocabularyService(posts, logger), logger)
	deps.Settings = fs.NewSettingsLoader(cli.SettingsDir, logger)

	// Only index commands need the database.
	switch commandName(kongCtx) {
	case "index", "posts", "show":
		if m.PostService == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set BLOGMETA_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.PostService = sqlite.NewPostService(m.DB)
		}
		deps.Index = m.PostService
		deps.Indexer = &index.Indexer{
			Source: posts,
			Posts:  m.PostService,
			Logger: logger,
		}
	}

	return kongCtx.Run(deps)
}

// commandName returns the first word of the selected command path.
func commandName(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func defaultDBPath() string {
	if path := os.Getenv("BLOGMETA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "blogmeta.db"
	}
	dir := filepath.Join(home, ".blogmeta")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "blogmeta.db")
}
