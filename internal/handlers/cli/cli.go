package cli

import (
	"context"
	"os"

	"github.com/gabapcia/chainscope/internal/explorer"
	"github.com/gabapcia/chainscope/internal/feed"

	"github.com/urfave/cli/v3"
)

type (
	FeedService interface {
		Start(ctx context.Context) error
		Close()
		Snapshot() feed.Window
		OnUpdate(fn func(feed.Window)) (unregister func())
		Notice() (feed.Notification, bool)
	}

	ExplorerService interface {
		Transaction(ctx context.Context, hash string) (explorer.TxDetail, error)
		Account(ctx context.Context, address string) (explorer.AccountDetail, error)
		Block(ctx context.Context, height int64) (explorer.BlockDetail, error)
		Proposals(ctx context.Context, page, perPage int) (explorer.ProposalsPage, error)
	}

	HTTPServer interface {
		Run(ctx context.Context, addr string) error
	}
)

// Dependencies are the services the commands drive.
type Dependencies struct {
	Feed        FeedService
	Explorer    ExplorerService
	Server      HTTPServer
	HTTPAddress string
}

// Run executes the chainscope CLI with os.Args.
//
// Commands:
//
//   - `serve`: runs the live feed and the HTTP API.
//   - `feed`: renders the live feed in the terminal.
//   - `tx`, `account`, `block`, `proposals`: print one explorer view.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainscope",
		Description:           "Live transaction feed and explorer for Tendermint/Cosmos chains.",
		Usage:                 "chainscope [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(deps.Feed, deps.Server, deps.HTTPAddress),
			feedCommand(deps.Feed),
			txCommand(deps.Explorer),
			accountCommand(deps.Explorer),
			blockCommand(deps.Explorer),
			proposalsCommand(deps.Explorer),
		},
	}
}
