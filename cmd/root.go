package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/scholarhub/internal/auth"
	"github.com/theirongolddev/scholarhub/internal/cli"
	"github.com/theirongolddev/scholarhub/internal/config"
	"github.com/theirongolddev/scholarhub/internal/logging"
	"github.com/theirongolddev/scholarhub/internal/session"
	"github.com/theirongolddev/scholarhub/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagStatePath string
	flagQuiet     bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:          "scholarhub",
	Short:        "Student budget and campus organizer",
	Long:         "Track spending against your budget plan, savings goals and campus life from the terminal.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStatePath, "state", "s", "", "State database path (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// env is what every command works against: the loaded config, the open state
// database and the session over it.
type env struct {
	cfg  config.Config
	db   *store.DB
	sess *session.Session
	log  *zap.Logger
}

func (e *env) Close() {
	if err := e.db.Close(); err != nil {
		e.log.Warn("closing state database", zap.Error(err))
	}
	_ = e.log.Sync()
}

func (e *env) money(d decimal.Decimal) string {
	return cli.FormatMoney(d, e.cfg.Display.Currency)
}

// openEnv is the shared loading path used by all commands.
func openEnv() (*env, error) {
	return openEnvWithLogger(logging.New(flagVerbose))
}

func openEnvWithLogger(log *zap.Logger) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("config unreadable, using defaults", zap.String("path", config.ConfigPath()), zap.Error(err))
		cfg = config.DefaultConfig()
	}

	path := flagStatePath
	if path == "" {
		path = cfg.StatePath()
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	log.Debug("state database opened", zap.String("path", path))

	opts := []session.Option{session.WithLogger(log)}
	switch cfg.General.IDStyle {
	case "", config.IDStyleUUID:
	case config.IDStyleSequence:
		opts = append(opts, session.WithSequentialIDs())
	default:
		log.Warn("unknown id_style, using uuid", zap.String("id_style", cfg.General.IDStyle))
	}
	sess := session.Open(store.NewStateStore(db, log), opts...)
	if cfg.Profile.Email != "" {
		sess.SignIn(auth.Identity{Email: cfg.Profile.Email})
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Using %s\n", path)
	}

	return &env{cfg: cfg, db: db, sess: sess, log: log}, nil
}
