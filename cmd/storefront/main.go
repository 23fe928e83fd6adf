package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/internal/api"
	"github.com/brewclub/storefront/internal/cart"
	"github.com/brewclub/storefront/internal/checkout"
	"github.com/brewclub/storefront/internal/ordering"
	"github.com/brewclub/storefront/internal/session"
	"github.com/brewclub/storefront/internal/storage"
)

const (
	appNamespace = "STOREFRONT"
	appName      = "storefront"
	appVersion   = "0.1.0"
)

const usage = `usage: storefront <command> [args]

commands:
  shops                      list all shop locations
  menu [categoryId]          show the active shop's menu
  add <productId> [qty] [addonId,...]
                             add a configured product to the cart
  cart                       show cart contents and total
  dining <dine-in|takeout>   set the dining option
  switch <shopId>            switch the active shop
  deliver <address>          enter delivery mode with an address
  checkout                   submit the order
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := args[0]
	args = args[1:]

	config, err := apt.LoadConfig(appNamespace, nil)
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	app, err := newApp(ctx, config, logger)
	if err != nil {
		log.Fatalf("%s(%s) cannot start: %v", appName, appVersion, err)
	}

	if err := app.run(ctx, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}

type app struct {
	logger   apt.Logger
	client   *api.Client
	session  *session.Store
	cart     *cart.Store
	checkout *checkout.Service
}

func newApp(ctx context.Context, config *apt.Config, logger apt.Logger) (*app, error) {
	var store storage.Store
	if redisURL, _ := config.GetString("storage.redis.url"); redisURL != "" {
		store = storage.NewRedisStore(redisURL)
	} else {
		dir, _ := config.GetString("storage.dir")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("cannot resolve home dir: %w", err)
			}
			dir = filepath.Join(home, ".storefront")
		}
		store = storage.NewFileStore(dir)
	}

	sessionStore := session.NewStore(store, logger)
	if err := sessionStore.Load(ctx); err != nil {
		return nil, fmt.Errorf("cannot load session: %w", err)
	}

	cartStore := cart.NewStore(store, logger)
	if err := cartStore.Load(ctx); err != nil {
		return nil, fmt.Errorf("cannot load cart: %w", err)
	}
	// A cart persisted for another shop must be cleared before anything
	// reads it.
	if err := cartStore.ValidateSession(ctx, sessionStore.CurrentShopID()); err != nil {
		return nil, fmt.Errorf("cannot reconcile cart: %w", err)
	}

	client := api.NewClient(config.GetStringOrDef("api.url", "http://localhost:8080"), logger)

	return &app{
		logger:   logger,
		client:   client,
		session:  sessionStore,
		cart:     cartStore,
		checkout: checkout.NewService(client, cartStore, sessionStore, logger),
	}, nil
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "shops":
		return a.showShops(ctx)
	case "menu":
		categoryID := ""
		if len(args) > 0 {
			categoryID = args[0]
		}
		return a.showMenu(ctx, categoryID)
	case "add":
		return a.addToCart(ctx, args)
	case "cart":
		return a.showCart(ctx)
	case "dining":
		if len(args) != 1 {
			return fmt.Errorf("expected one of: dine-in, takeout")
		}
		return a.cart.SetDiningOption(ctx, cart.DiningOption(args[0]))
	case "switch":
		if len(args) != 1 {
			return fmt.Errorf("expected a shop id")
		}
		return a.session.SetShopID(ctx, args[0])
	case "deliver":
		if len(args) == 0 {
			return fmt.Errorf("expected a delivery address")
		}
		return a.session.SetDeliveryAddress(ctx, strings.Join(args, " "))
	case "checkout":
		return a.submitOrder(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) showShops(ctx context.Context) error {
	shops, err := a.client.Shops(ctx)
	if err != nil {
		return err
	}
	active := a.session.CurrentShopID()
	for _, shop := range shops {
		marker := " "
		if shop.ID == active {
			marker = "*"
		}
		state := "open"
		if shop.IsClosed {
			state = "closed"
		}
		fmt.Printf("%s %-14s %-24s %s (%s)\n", marker, shop.ID, shop.Name, shop.Address, state)
	}
	return nil
}

func (a *app) showMenu(ctx context.Context, categoryID string) error {
	shopID := a.session.CurrentShopID()
	list, err := a.client.Products(ctx, shopID, categoryID)
	if err != nil {
		return err
	}

	// A fresh catalog is the moment to drop ghost items.
	if _, err := a.cart.SyncWithCatalog(ctx, list.Items, false); err != nil {
		return err
	}

	fmt.Printf("menu of %s (%d items)\n", shopID, list.Total)
	for _, p := range list.Items {
		fmt.Printf("  %-18s %-24s %s\n", p.ID, p.Name, cart.FormatPrice(p.Price, ""))
		for _, addon := range p.Addons {
			fmt.Printf("      + %-12s %-20s %s\n", addon.ID, addon.Name, cart.FormatPrice(addon.Price, ""))
		}
	}
	return nil
}

func (a *app) addToCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected a product id")
	}
	productID := args[0]

	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		quantity = q
	}

	var selectedAddons []string
	if len(args) > 2 {
		selectedAddons = strings.Split(args[2], ",")
	}

	shopID := a.session.CurrentShopID()
	product, err := a.client.Product(ctx, shopID, productID)
	if err != nil {
		return err
	}

	if err := a.cart.AddItem(ctx, shopID, *product, quantity, selectedAddons); err != nil {
		return err
	}
	fmt.Printf("added %dx %s (%d items in cart)\n", quantity, product.Name, a.cart.TotalItems())
	return nil
}

func (a *app) showCart(ctx context.Context) error {
	shopID := a.session.CurrentShopID()
	list, err := a.client.Products(ctx, shopID, "")
	if err != nil {
		return err
	}
	if _, err := a.cart.SyncWithCatalog(ctx, list.Items, false); err != nil {
		return err
	}

	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}

	byID := make(map[string]int, len(list.Items))
	for i := range list.Items {
		byID[list.Items[i].ID] = i
	}
	for _, item := range items {
		idx, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		product := list.Items[idx]
		fmt.Printf("  %dx %-24s %s  [%s]\n", item.Quantity, product.Name,
			cart.FormatPrice(cart.LineTotal(product, item.SelectedAddons, item.Quantity), ""),
			item.CartID)
	}
	fmt.Printf("total: %s (%s, %s)\n",
		cart.FormatPrice(cart.CartTotal(items, list.Items), ""),
		a.cart.DiningOption(), shopID)
	return nil
}

func (a *app) submitOrder(ctx context.Context) error {
	order, err := a.checkout.Submit(ctx, checkout.Params{
		TimeSlot:      "ASAP",
		PaymentMethod: checkout.PayOnline,
		OnSuccess: func(o *ordering.Order) {
			fmt.Printf("order %s confirmed, total %s\n", o.ID, cart.FormatPrice(o.TotalAmount, ""))
		},
	})
	if err != nil {
		return err
	}
	a.logger.Info("checkout complete", "order_id", order.ID)
	return nil
}
