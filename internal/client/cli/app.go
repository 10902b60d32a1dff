package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/client/client"
	"github.com/dmitrijs2005/credkeeper/internal/client/config"
)

// ErrUsage is returned for unknown commands and bad flags.
var ErrUsage = errors.New("usage error")

const usage = `usage: credctl <command> [flags]

commands:
  hash             [-algo argon2id|bcrypt] [-cost N]
  register         [-d dsn] [-email address]
  login            [-a addr] [-email address]
  biometric-login  [-a addr]
  set-biometric    [-a addr] [-email address]
  users            [-a addr] [-email address] [-id user-id]
`

// newClient is a test seam for the gRPC client.
var newClient = func(addr string) (client.Client, error) {
	return client.NewGRPCClient(addr)
}

type App struct {
	config *config.Config
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{config: c, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Run executes the command named by args[0]. Config file flags must already
// be stripped from args (see flagx.StripConfig).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "hash":
		return a.hash(rest)
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "biometric-login":
		return a.biometricLogin(ctx, rest)
	case "set-biometric":
		return a.setBiometric(ctx, rest)
	case "users":
		return a.users(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}

// email returns flagValue or prompts for it.
func (a *App) email(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return getSimpleText(a.reader, "Enter email", a.out)
}

func (a *App) dial(addr string) (client.Client, error) {
	c, err := newClient(addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	return c, nil
}
