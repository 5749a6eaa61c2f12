// dispatch-demo walks through the dispatcher's behavior: priority
// ordering, subscriber expansion and propagation stopping.
package main

import (
	"log"

	"github.com/eventwire/dispatch"
)

func main() {
	d := dispatch.New()

	// Priorities: higher fires earlier, equal priorities fire in
	// registration order.
	d.Subscribe(dispatch.NewFunc(func(event string, args dispatch.Args) error {
		log.Printf("[audit] %s", event)
		return nil
	}), 100, "order.placed", "order.cancelled")

	d.Subscribe(dispatch.NewFunc(func(event string, args dispatch.Args) error {
		total, _ := args.(*dispatch.EventArgs).IntValue("total")
		log.Printf("[billing] charging %d for %s", total, event)
		return nil
	}), 0, "order.placed")

	// A subscriber batches several event interests behind one identity.
	mailer := dispatch.NewSubscriberFuncs().
		On("order.placed", func(event string, args dispatch.Args) error {
			log.Printf("[mailer] confirmation for %s", event)
			return nil
		}).
		On("order.cancelled", func(event string, args dispatch.Args) error {
			log.Printf("[mailer] apology for %s", event)
			return nil
		})
	d.AddSubscriber(mailer, -10)

	args := dispatch.NewArgs().WithValue("total", 1499)
	if err := d.Dispatch("order.placed", args); err != nil {
		log.Fatalf("dispatch failed: %v", err)
	}

	// A fraud check that stops propagation starves the lower-priority
	// listeners, the mailer included.
	d.Subscribe(dispatch.NewFunc(func(event string, args dispatch.Args) error {
		log.Printf("[fraud] suspicious %s, stopping propagation", event)
		args.StopPropagation()
		return nil
	}), 50, "order.cancelled")

	if err := d.Dispatch("order.cancelled", nil); err != nil {
		log.Fatalf("dispatch failed: %v", err)
	}

	log.Printf("order.placed has %d listeners", d.ListenerCount("order.placed"))
}
