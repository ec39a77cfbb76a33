package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

// txCommand prints a transaction.
//
//	chainscope tx --hash 5F2A...
func txCommand(views ExplorerService) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Shows a transaction with its transfer, fee and decoded messages.",
		Usage:       "Looks up a transaction by hash.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash, hexadecimal",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			detail, err := views.Transaction(ctx, c.String("hash"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, renderTx(detail, time.Now()))
			return err
		},
	}
}

// accountCommand prints an account.
//
//	chainscope account --address surge1...
func accountCommand(views ExplorerService) *cli.Command {
	return &cli.Command{
		Name:        "account",
		Description: "Shows an account's balances, staked balance and recent transactions.",
		Usage:       "Looks up an account by bech32 address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address (bech32)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			detail, err := views.Account(ctx, c.String("address"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, renderAccount(detail))
			return err
		},
	}
}

// blockCommand prints a block.
//
//	chainscope block --height 1200
func blockCommand(views ExplorerService) *cli.Command {
	return &cli.Command{
		Name:        "block",
		Description: "Shows a block's header and transaction hashes.",
		Usage:       "Looks up a block by height.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "height",
				Usage:    "Block height",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			detail, err := views.Block(ctx, c.Int64("height"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, renderBlock(detail, time.Now()))
			return err
		},
	}
}

// proposalsCommand prints one page of governance proposals.
//
//	chainscope proposals --page 2 --per-page 10
func proposalsCommand(views ExplorerService) *cli.Command {
	return &cli.Command{
		Name:        "proposals",
		Description: "Lists governance proposals, newest first.",
		Usage:       "Shows one page of proposals.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page number, starting at 1",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "per-page",
				Usage: "Proposals per page",
				Value: 10,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			page, err := views.Proposals(ctx, c.Int("page"), c.Int("per-page"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, renderProposals(page))
			return err
		},
	}
}
