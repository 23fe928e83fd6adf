package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/brewclub/storefront/pkg"
	"github.com/brewclub/storefront/pkg/event"
)

const (
	appNamespace = "STOREFRONT_FEED"
	appName      = "storefront-feed"
	appVersion   = "0.1.0"
)

// Live feed of accepted orders. Several instances sharing the same queue name
// split the stream, so a kitchen can run one screen per station.
func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
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

	natsURL := config.GetStringOrDef("nats.url", "nats://127.0.0.1:4222")
	subscriber, err := pkg.NewNATSSubscriber(natsURL)
	if err != nil {
		log.Fatalf("Cannot connect to NATS %s(%s): %v", appName, appVersion, err)
	}
	defer subscriber.Close()

	handler := event.OrderFeedHandler(logger, func(evt event.OrderCreated) {
		fmt.Printf("%s  %-14s %-8s %8d  %s\n",
			evt.CreatedAt.Format(time.TimeOnly), evt.ShopID, evt.Type, evt.TotalAmount, evt.OrderID)
	})

	queue := config.GetStringOrDef("feed.queue", "storefront-feed")
	if err := subscriber.SubscribeQueue(ctx, event.TopicOrderCreated, queue, handler); err != nil {
		log.Fatalf("%s(%s) cannot subscribe: %v", appName, appVersion, err)
	}

	logger.Infof("Starting %s(%s), topic %s, queue %s", appName, appVersion, event.TopicOrderCreated, queue)
	<-ctx.Done()
	logger.Infof("%s(%s) stopped", appName, appVersion)
}
