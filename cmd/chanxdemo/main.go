// Command chanxdemo exercises the chanx library end to end: it wires
// up a named Directory of channels, fans producers and consumers out
// over golang.org/x/sync/errgroup, and uses Select to drain two
// differently-shaped channels from a single goroutine.
//
// This mirrors the teacher's cmd/go convention of a small flag-driven
// CLI binary sitting alongside the library it drives; it is a
// demonstration, not a protocol surface, consistent with the channel
// core itself having no CLI of its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gopherlabs/chanx"
)

func main() {
	var (
		capacity  = flag.Int("capacity", 4, "capacity of each demo channel")
		producers = flag.Int("producers", 2, "number of concurrent producers per channel")
		perProd   = flag.Int("count", 5, "values sent by each producer")
	)
	flag.Parse()

	if err := run(*capacity, *producers, *perProd); err != nil {
		log.Fatal(err)
	}
}

func run(capacity, producers, perProd int) error {
	dir := chanx.NewDirectory()
	orders, err := dir.GetOrCreate("orders", capacity)
	if err != nil {
		return err
	}
	alerts, err := dir.GetOrCreate("alerts", capacity)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())

	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perProd; i++ {
				v := fmt.Sprintf("order[producer=%d,seq=%d]", p, i)
				if st, err := orders.Send(v, true); st != chanx.Success {
					return err
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		time.Sleep(10 * time.Millisecond)
		_, err := alerts.Send("low-stock", true)
		return err
	})

	total := producers*perProd + 1
	g.Go(func() error {
		for i := 0; i < total; i++ {
			var orderDest, alertDest any
			status, index, err := chanx.Select([]chanx.Case{
				{Channel: orders, Dir: chanx.RecvDir, Dest: &orderDest},
				{Channel: alerts, Dir: chanx.RecvDir, Dest: &alertDest},
			})
			if err != nil {
				return err
			}
			switch index {
			case 0:
				fmt.Printf("orders: %v (status=%s)\n", orderDest, status)
			case 1:
				fmt.Printf("alerts: %v (status=%s)\n", alertDest, status)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
	default:
	}
	orders.Close()
	alerts.Close()
	return nil
}
