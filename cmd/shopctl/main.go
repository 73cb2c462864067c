// shopctl is a small admin CLI for the storefront API.  It drives the same
// client package the admin panel contracts describe: verified secrets are
// remembered in the local store, and every mutation is followed by a
// refetch of the canonical document.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/saavyshop/storefront/internal/client"
	"github.com/saavyshop/storefront/internal/client/localstore"
	"github.com/saavyshop/storefront/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shopctl <command> [flags]

commands:
  products list    [-category C] [-min N] [-max N]
  products create  -name N -price P -category C -description D [-image URL] [-featured]
  products delete  -id ID
  site-name        -name NAME
  content show
  checkout show
  license          [-revalidate]
  verify

environment: SHOP_URL (default http://localhost:5000), ADMIN_PASSWORD`)
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		usage()
	}

	baseURL := os.Getenv("SHOP_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	api := client.New(baseURL)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: local store unavailable: %v\n", err)
	} else {
		defer store.Close()
	}
	session := client.NewAdminSession(api, store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "products":
		runProducts(ctx, api, session, os.Args[2:])
	case "site-name":
		runSiteName(ctx, api, session, os.Args[2:])
	case "content":
		runContent(ctx, api, os.Args[2:])
	case "checkout":
		runCheckout(ctx, api, os.Args[2:])
	case "license":
		runLicense(ctx, api, session, os.Args[2:])
	case "verify":
		runVerify(ctx, session)
	default:
		usage()
	}
}

// openStore places the local slot next to the user's other config files.
func openStore() (*localstore.Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "shopctl")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return localstore.Open(filepath.Join(dir, "local.db"))
}

// secret resolves the admin secret: ADMIN_PASSWORD wins, otherwise the
// secret remembered from an earlier verify.
func secret(ctx context.Context, session *client.AdminSession) string {
	if s := os.Getenv("ADMIN_PASSWORD"); s != "" {
		return s
	}
	if ok, _ := session.Resume(ctx); ok {
		return session.Secret()
	}
	return ""
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		die(err)
	}
	fmt.Println(string(b))
}

func die(err error) {
	fmt.Fprintln(os.Stderr, "shopctl:", err)
	os.Exit(1)
}

func runProducts(ctx context.Context, api *client.Client, session *client.AdminSession, args []string) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("products list", flag.ExitOnError)
		category := fs.String("category", "", "filter by category")
		min := fs.Float64("min", -1, "minimum price (inclusive)")
		max := fs.Float64("max", -1, "maximum price (inclusive)")
		fs.Parse(args[1:])

		f := repository.ProductFilter{Category: *category}
		if *min >= 0 {
			f.MinPrice = min
		}
		if *max >= 0 {
			f.MaxPrice = max
		}
		products, err := api.ListProducts(ctx, f)
		if err != nil {
			die(err)
		}
		printJSON(products)
	case "create":
		fs := flag.NewFlagSet("products create", flag.ExitOnError)
		name := fs.String("name", "", "product name")
		price := fs.Float64("price", 0, "product price")
		category := fs.String("category", "", "product category")
		description := fs.String("description", "", "product description")
		image := fs.String("image", "", "image URL")
		featured := fs.Bool("featured", false, "feature on the homepage")
		fs.Parse(args[1:])

		cache := client.NewProductCache(api)
		created, err := cache.Create(ctx, client.ProductInput{
			Name:        *name,
			Price:       *price,
			Category:    *category,
			Description: *description,
			Image:       *image,
			Featured:    *featured,
		}, secret(ctx, session))
		if err != nil {
			die(err)
		}
		printJSON(created)
	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ExitOnError)
		id := fs.Uint64("id", 0, "product id")
		fs.Parse(args[1:])

		cache := client.NewProductCache(api)
		if err := cache.Delete(ctx, *id, secret(ctx, session)); err != nil {
			die(err)
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func runSiteName(ctx context.Context, api *client.Client, session *client.AdminSession, args []string) {
	fs := flag.NewFlagSet("site-name", flag.ExitOnError)
	name := fs.String("name", "", "new site name")
	fs.Parse(args)

	settings, err := api.UpdateSiteName(ctx, *name, secret(ctx, session))
	if err != nil {
		die(err)
	}
	printJSON(settings)
}

func runContent(ctx context.Context, api *client.Client, args []string) {
	if len(args) < 1 || args[0] != "show" {
		usage()
	}
	content, err := api.GetSiteContent(ctx)
	if err != nil {
		die(err)
	}
	printJSON(content)
}

func runCheckout(ctx context.Context, api *client.Client, args []string) {
	if len(args) < 1 || args[0] != "show" {
		usage()
	}
	cfg, err := api.GetCheckoutConfig(ctx)
	if err != nil {
		die(err)
	}
	printJSON(cfg)
}

func runLicense(ctx context.Context, api *client.Client, session *client.AdminSession, args []string) {
	fs := flag.NewFlagSet("license", flag.ExitOnError)
	revalidate := fs.Bool("revalidate", false, "force a recheck")
	fs.Parse(args)

	s := secret(ctx, session)
	var err error
	var status any
	if *revalidate {
		status, err = api.RevalidateLicense(ctx, s)
	} else {
		status, err = api.LicenseStatus(ctx, s)
	}
	if err != nil {
		die(err)
	}
	printJSON(status)
}

func runVerify(ctx context.Context, session *client.AdminSession) {
	candidate := os.Getenv("ADMIN_PASSWORD")
	if candidate == "" {
		die(fmt.Errorf("set ADMIN_PASSWORD to verify"))
	}
	ok, err := session.Verify(ctx, candidate)
	if err != nil {
		die(err)
	}
	if !ok {
		die(fmt.Errorf("invalid password"))
	}
	fmt.Println("ok")
}
