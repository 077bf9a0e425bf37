package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ignite/emspanel/internal/domain"
	"github.com/ignite/emspanel/internal/service/suppression"
	"github.com/ignite/emspanel/internal/service/token"
	"github.com/ignite/emspanel/internal/service/userdomain"
)

func addPagingFlags(fs *flag.FlagSet) (page, perPage *int, orderBy, orderDir *string) {
	page = fs.Int("page", 1, "page number")
	perPage = fs.Int("per-page", 10, "items per page")
	orderBy = fs.String("order-by", "", "sort column")
	orderDir = fs.String("order-dir", "", "asc or desc")
	return page, perPage, orderBy, orderDir
}

func printPage(p domain.Page) {
	fmt.Printf("Page %d (%d of %d items)", p.Page, p.ItemsOnCurrentPage, p.TotalItems)
	if p.HasMore() {
		fmt.Print(", more available")
	}
	fmt.Println()
}

func handleTokens(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: emsctl tokens list|create|update|delete")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("tokens list", flag.ExitOnError)
		page, perPage, orderBy, orderDir := addPagingFlags(fs)
		fs.Parse(args[1:])

		tokens, pg, err := a.tokens.List(ctx, token.ListFilter{
			Page: *page, PerPage: *perPage, OrderBy: *orderBy, OrderDirection: *orderDir,
		})
		if err != nil {
			return err
		}
		for _, t := range tokens {
			fmt.Printf("%-20s %-36s %-8s created %s\n",
				t.Name, t.Value, t.State, t.CreatedAt.Format("2006-01-02"))
		}
		printPage(pg)
		return nil
	case "create":
		fs := flag.NewFlagSet("tokens create", flag.ExitOnError)
		name := fs.String("name", "", "token name")
		fs.Parse(args[1:])

		t, err := a.tokens.Create(ctx, *name)
		if err != nil {
			return err
		}
		fmt.Printf("Created token %s: %s\n", t.Name, t.Value)
		return nil
	case "update":
		fs := flag.NewFlagSet("tokens update", flag.ExitOnError)
		value := fs.String("token", "", "token value")
		name := fs.String("name", "", "new token name")
		state := fs.String("state", "active", "active or inactive")
		fs.Parse(args[1:])

		t, err := a.tokens.Update(ctx, *value, *name, domain.TokenStateFromString(*state))
		if err != nil {
			return err
		}
		fmt.Printf("Updated token %s (%s)\n", t.Name, t.State)
		return nil
	case "delete":
		fs := flag.NewFlagSet("tokens delete", flag.ExitOnError)
		value := fs.String("token", "", "token value")
		fs.Parse(args[1:])

		if err := a.tokens.Delete(ctx, *value); err != nil {
			return err
		}
		fmt.Println("Token deleted.")
		return nil
	default:
		return fmt.Errorf("unknown tokens subcommand: %s", args[0])
	}
}

func handleSuppressions(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return fmt.Errorf("usage: emsctl suppressions list [flags]")
	}
	fs := flag.NewFlagSet("suppressions list", flag.ExitOnError)
	from := fs.String("from", "", "start date (YYYY-MM-DD)")
	to := fs.String("to", "", "end date (YYYY-MM-DD)")
	page, perPage, orderBy, orderDir := addPagingFlags(fs)
	fs.Parse(args[1:])

	filter := suppression.ListFilter{
		Page: *page, PerPage: *perPage, OrderBy: *orderBy, OrderDirection: *orderDir,
	}
	if *from != "" {
		t, err := time.Parse("2006-01-02", *from)
		if err != nil {
			return fmt.Errorf("invalid --from date: %w", err)
		}
		filter.DateFrom = &t
	}
	if *to != "" {
		t, err := time.Parse("2006-01-02", *to)
		if err != nil {
			return fmt.Errorf("invalid --to date: %w", err)
		}
		filter.DateTo = &t
	}

	items, pg, err := a.suppressions.List(ctx, filter)
	if err != nil {
		return err
	}
	for _, s := range items {
		fmt.Printf("%-8d %-35s %-12s %-20s %s\n",
			s.ID, s.Email, s.Type, s.DomainName, s.CreatedAt.Format("2006-01-02"))
	}
	printPage(pg)
	return nil
}

func handleDomains(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: emsctl domains list|create|verify|delete")
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("domains list", flag.ExitOnError)
		page, perPage, orderBy, orderDir := addPagingFlags(fs)
		fs.Parse(args[1:])

		domains, pg, err := a.domains.List(ctx, userdomain.ListFilter{
			Page: *page, PerPage: *perPage, OrderBy: *orderBy, OrderDirection: *orderDir,
		})
		if err != nil {
			return err
		}
		for _, d := range domains {
			fmt.Printf("%-36s %-30s %-10s spf=%v dkim=%v owner=%v fbl=%v\n",
				d.UUID, d.DomainName, d.State, d.SPFValid, d.DKIMValid, d.OwnerValid, d.FBLValid)
		}
		printPage(pg)
		return nil
	case "create":
		fs := flag.NewFlagSet("domains create", flag.ExitOnError)
		name := fs.String("name", "", "domain name")
		fs.Parse(args[1:])

		d, err := a.domains.Create(ctx, *name)
		if err != nil {
			return err
		}
		fmt.Printf("Created domain %s (%s)\n", d.DomainName, d.UUID)
		fmt.Println("Add these DNS records, then run: emsctl domains verify --uuid", d.UUID)
		fmt.Printf("  DKIM     CNAME %-30s -> %s\n", d.DNS.DKIM.Hostname, d.DNS.DKIM.PointTo)
		fmt.Printf("  SPF      CNAME %-30s -> %s\n", d.DNS.SPF.Hostname, d.DNS.SPF.PointTo)
		fmt.Printf("  Tracking CNAME %-30s -> %s\n", d.DNS.Tracking.Hostname, d.DNS.Tracking.PointTo)
		return nil
	case "verify":
		fs := flag.NewFlagSet("domains verify", flag.ExitOnError)
		id := fs.String("uuid", "", "domain uuid")
		fs.Parse(args[1:])

		d, err := a.domains.Verify(ctx, *id)
		if err != nil {
			return err
		}
		if d.FullyValid() {
			fmt.Printf("Domain %s fully verified.\n", d.DomainName)
		} else {
			fmt.Printf("Domain %s still incomplete: spf=%v dkim=%v owner=%v fbl=%v\n",
				d.DomainName, d.SPFValid, d.DKIMValid, d.OwnerValid, d.FBLValid)
		}
		return nil
	case "delete":
		fs := flag.NewFlagSet("domains delete", flag.ExitOnError)
		id := fs.String("uuid", "", "domain uuid")
		fs.Parse(args[1:])

		if err := a.domains.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Println("Domain deleted.")
		return nil
	default:
		return fmt.Errorf("unknown domains subcommand: %s", args[0])
	}
}
